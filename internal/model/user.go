package model

// User represents a registered account held in the in-memory store.
type User struct {
	Username     string
	Email        string
	PasswordHash string
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// MessageResponse is the body shape shared by the auth endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
