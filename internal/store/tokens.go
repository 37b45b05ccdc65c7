package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// RevokeToken adds a signed-out token's JTI to the revocation list. Entries
// whose token has expired by now are pruned on the way.
func RevokeToken(ctx context.Context, db *sql.DB, jti string, expiresAt, now time.Time) error {
	if jti == "" {
		return fmt.Errorf("revoking token: missing token id")
	}
	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO revoked_tokens (jti, expires_at) VALUES (?, ?)`,
		jti, expiresAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("revoking token: %w", err)
	}

	_, _ = db.ExecContext(ctx, `DELETE FROM revoked_tokens WHERE expires_at < ?`, now.UTC())
	return nil
}

// IsTokenRevoked reports whether jti was signed out.
func IsTokenRevoked(ctx context.Context, db *sql.DB, jti string) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM revoked_tokens WHERE jti = ?`, jti,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking token revocation: %w", err)
	}
	return count > 0, nil
}
