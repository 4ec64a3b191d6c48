package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the error type every layer above the repositories speaks.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Domain   string      `json:"domain"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError without an underlying cause.
func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap attaches an underlying error to a new AppError.
func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// MarshalJSON hides Err and HTTPCode from API responses.
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Domain  string      `json:"domain"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Domain:  e.Domain,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predeclared errors. The response texts mirror the public API contract,
// so changing one is a breaking change for clients.
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid credentials", http.StatusUnauthorized)
	ErrUserNotVerified    = New(CodeUserNotVerified, "auth", "Please verify your email before logging in", http.StatusUnauthorized).
				WithDetails(map[string]bool{"needs_verification": true})
	ErrMissingToken       = New(CodeUnauthorized, "auth", "Access token required", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusForbidden)
	ErrNotOwner           = New(CodeForbidden, "auth", "Access denied. You can only edit your own listings.", http.StatusForbidden)

	// Registration
	ErrMissingCredentials = New(CodeValidationFailed, "auth", "Email and password are required", http.StatusBadRequest)
	ErrMissingLastName    = New(CodeValidationFailed, "auth", "last_name is required", http.StatusBadRequest)
	ErrWeakPassword       = New(CodeWeakPassword, "auth", "Password must be at least 6 characters", http.StatusBadRequest)
	ErrUserAlreadyExists  = New(CodeAlreadyExists, "auth", "User already exists", http.StatusBadRequest)
	ErrInvalidOTP         = New(CodeInvalidOTP, "auth", "Invalid or expired OTP", http.StatusBadRequest)
	ErrOTPDispatchFailed  = New(CodeExternalServiceError, "email", "Failed to send verification email", http.StatusInternalServerError)

	// Users
	ErrUserNotFound    = New(CodeNotFound, "user", "User not found", http.StatusNotFound)
	ErrInvalidUserRole = New(CodeValidationFailed, "user", `Invalid role. Must be either "customer" or "seller"`, http.StatusBadRequest)

	// Bikes
	ErrBikeNotFound = New(CodeNotFound, "bike", "Bike not found", http.StatusNotFound)
)

// InternalError wraps an unexpected fault. The cause is logged server-side,
// clients only ever see the generic message.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Server error", http.StatusInternalServerError)
}

// ValidationError creates a 400 with per-field details.
func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "validation", "Validation failed", http.StatusBadRequest).WithDetails(details)
}

// NewBadRequestError creates a 400 with a caller-supplied message.
func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, "request", message, http.StatusBadRequest)
}

// NewUnauthorizedError creates a 401 with a caller-supplied message.
func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, "auth", message, http.StatusUnauthorized)
}
