package dto

import "minivutto_backend/internal/models"

// RegisterRequest drives both halves of the registration flow: without OTP
// it requests a verification code, with OTP it creates the account.
// Business checks run ordered in the service, so no binding tags here.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	OTP       string `json:"otp"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned on successful login and on OTP-completed
// registration.
type AuthResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
	Token   string       `json:"token"`
}

// PendingResponse acknowledges an OTP dispatch; no account exists yet.
type PendingResponse struct {
	Message   string `json:"message"`
	Email     string `json:"email"`
	ExpiresIn string `json:"expires_in"`
}
