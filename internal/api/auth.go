package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/erazemk/bloodbank/internal/auth"
	"github.com/erazemk/bloodbank/internal/clock"
	"github.com/erazemk/bloodbank/internal/model"
	"github.com/erazemk/bloodbank/internal/store"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	DB        *sql.DB
	JWTSecret string
	Clock     clock.Clock
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *AuthHandler) session(w http.ResponseWriter, status int, user *model.User) {
	token, err := auth.GenerateToken(h.JWTSecret, user.ID, user.Email, user.Role, h.Clock.Now())
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		jsonError(w, http.StatusInternalServerError, model.CodeInternal, "failed to generate token")
		return
	}
	jsonResponse(w, status, model.Session{
		Email: user.Email,
		ID:    model.UserIDFromInt(user.ID),
		Role:  user.Role,
		Token: token,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.Credentials
	if !decodeValid(w, r, &req) {
		return
	}

	user, err := store.GetUserByEmail(r.Context(), h.DB, strings.ToLower(req.Email))
	if err != nil {
		storeError(w, err, "look up user")
		return
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		slog.Warn("login failed", "email", req.Email, "remote", r.RemoteAddr)
		jsonError(w, http.StatusUnauthorized, model.CodeInvalidLogin, "Invalid email or password")
		return
	}

	slog.Info("user logged in", "email", user.Email, "role", user.Role)
	h.session(w, http.StatusOK, user)
}

// Signup handles POST /api/auth/signup. New accounts always get the USER role.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.Credentials
	if !decodeValid(w, r, &req) {
		return
	}
	if err := model.ValidatePassword(req.Password); err != nil {
		jsonError(w, http.StatusBadRequest, model.CodeValidation, err.Error())
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, model.CodeInternal, "failed to hash password")
		return
	}

	user, err := store.CreateUser(r.Context(), h.DB, strings.ToLower(req.Email), hash, model.RoleUser)
	if err != nil {
		storeError(w, err, "create user")
		return
	}

	slog.Info("user signed up", "email", user.Email)
	h.session(w, http.StatusCreated, user)
}

// Validate handles GET /api/auth/validate. Reaching it means the token passed
// the auth middleware.
func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]bool{"valid": true})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	user, err := store.GetUser(r.Context(), h.DB, claims.UserID)
	if err != nil {
		storeError(w, err, "get user")
		return
	}
	if user == nil {
		jsonError(w, http.StatusUnauthorized, model.CodeUnauthorized, "account no longer exists")
		return
	}
	jsonResponse(w, http.StatusOK, model.Session{
		Email: user.Email,
		ID:    model.UserIDFromInt(user.ID),
		Role:  user.Role,
	})
}

// Logout handles POST /api/auth/logout. The presented token stops working
// immediately.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	expiresAt := h.Clock.Now().Add(auth.TokenExpiry)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := store.RevokeToken(r.Context(), h.DB, claims.ID, expiresAt, h.Clock.Now()); err != nil {
		slog.Error("failed to revoke token", "error", err)
		jsonError(w, http.StatusInternalServerError, model.CodeInternal, "failed to sign out")
		return
	}

	slog.Info("user signed out", "email", claims.Email)
	jsonResponse(w, http.StatusOK, model.Message{Message: "Signed out"})
}

// ChangePassword handles PUT /api/auth/password.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req changePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, model.CodeValidation, "invalid request body")
		return
	}
	if req.CurrentPassword == "" {
		jsonError(w, http.StatusBadRequest, model.CodeValidation, "current password required")
		return
	}
	if err := model.ValidatePassword(req.NewPassword); err != nil {
		jsonError(w, http.StatusBadRequest, model.CodeValidation, err.Error())
		return
	}

	user, err := store.GetUser(r.Context(), h.DB, claims.UserID)
	if err != nil || user == nil {
		jsonError(w, http.StatusInternalServerError, model.CodeInternal, "internal error")
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		jsonError(w, http.StatusForbidden, model.CodeInvalidLogin, "current password is incorrect")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, model.CodeInternal, "failed to hash password")
		return
	}

	if err := store.UpdateUserPassword(r.Context(), h.DB, claims.UserID, hash); err != nil {
		storeError(w, err, "update password")
		return
	}

	slog.Info("user changed own password", "email", claims.Email)
	jsonResponse(w, http.StatusOK, model.Message{Message: "password updated"})
}
