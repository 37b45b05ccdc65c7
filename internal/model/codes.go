package model

// Error codes carried in the "code" field of backend error bodies. Callers
// branch on these, never on the human-readable message.
const (
	CodeInsufficientStock = "insufficient_stock"
	CodeBloodGroupMissing = "blood_group_not_found"
	CodeInvalidTransition = "invalid_status_transition"
	CodeEmailTaken        = "email_taken"
	CodeInvalidLogin      = "invalid_credentials"
	CodeValidation        = "validation_failed"
	CodeNotFound          = "not_found"
	CodeForbidden         = "forbidden"
	CodeUnauthorized      = "unauthorized"
	CodeInternal          = "internal_error"
)

// ErrorBody is the JSON body of every non-2xx backend response.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Message is a plain acknowledgement from the backend.
type Message struct {
	Message string `json:"message"`
}

// DiscardResult reports what a bulk discard removed.
type DiscardResult struct {
	Message string `json:"message"`
	Records int    `json:"records"`
	Units   int    `json:"units"`
}

// Validate rejects negative counts.
func (d DiscardResult) Validate() error {
	if d.Records < 0 || d.Units < 0 {
		return invalid("", "discard counts must not be negative")
	}
	return nil
}
