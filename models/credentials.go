package models

// Credentials is the body of POST /api/auth/token.
type Credentials struct {
	Password string `json:"password" validate:"required"`
}
