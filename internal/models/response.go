package models

// ErrorResponse is the uniform error body. The message is the only
// discriminator; there is no machine-readable code.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConflictResponse is returned on duplicate user creation and carries the
// pre-existing record so the caller need not re-fetch it.
type ConflictResponse struct {
	Error string    `json:"error"`
	User  UserModel `json:"user"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
