package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates an authenticated caller without access to the resource.
var ErrForbidden = errors.New("forbidden")

// ErrRefreshTokenExpired indicates the stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrFeatureDisabled is returned by operations switched off in configuration.
var ErrFeatureDisabled = errors.New("feature disabled")

// AuthReason classifies an authentication failure.
type AuthReason string

const (
	ReasonInvalidCredentials AuthReason = "invalid_credentials"
	ReasonNetwork            AuthReason = "network"
	ReasonMalformedCallback  AuthReason = "malformed_callback"
	ReasonSessionFailed      AuthReason = "session_failed"
	ReasonUserNotFound       AuthReason = "user_not_found"
	ReasonProfileNotFound    AuthReason = "profile_not_found"
	ReasonCallbackFailed     AuthReason = "callback_failed"
)

// AuthError is returned by sign-in, sign-up and callback operations.
type AuthError struct {
	Reason AuthReason
	Err    error
}

func NewAuthError(reason AuthReason, err error) *AuthError {
	return &AuthError{Reason: reason, Err: err}
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("auth error: %s", e.Reason)
	}
	return fmt.Sprintf("auth error: %s: %v", e.Reason, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrUnauthorized) match every AuthError.
func (e *AuthError) Is(target error) bool {
	return target == ErrUnauthorized
}

// ProfileFetchError reports that a user's profile row could not be loaded.
type ProfileFetchError struct {
	UserID  string
	Missing bool
	Err     error
}

func NewProfileFetchError(userID string, err error) *ProfileFetchError {
	return &ProfileFetchError{UserID: userID, Missing: errors.Is(err, ErrNotFound), Err: err}
}

func (e *ProfileFetchError) Error() string {
	if e.Missing {
		return fmt.Sprintf("profile for user %s not found", e.UserID)
	}
	return fmt.Sprintf("failed to fetch profile for user %s: %v", e.UserID, e.Err)
}

func (e *ProfileFetchError) Unwrap() error { return e.Err }

// ValidationError names the offending field of a rejected input.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// AppError is the JSON shape returned to HTTP clients.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Reason  string `json:"reason,omitempty"`
}

func (e *AppError) Error() string { return e.Message }

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message}
}

func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message}
}

func NewGatewayTimeoutError(message string) *AppError {
	return &AppError{Code: http.StatusGatewayTimeout, Message: message}
}

// FromError maps any error produced by the core to an AppError.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	var authErr *AuthError
	if errors.As(err, &authErr) {
		e := NewUnauthorizedError(authMessage(authErr.Reason))
		e.Reason = string(authErr.Reason)
		return e
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return NewBadRequestError(validationErr.Error())
	}
	var profileErr *ProfileFetchError
	if errors.As(err, &profileErr) {
		e := NewUnauthorizedError("Profile could not be loaded")
		e.Reason = string(ReasonProfileNotFound)
		return e
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return NewNotFoundError("Resource not found")
	case errors.Is(err, ErrValidation):
		return NewBadRequestError(err.Error())
	case errors.Is(err, ErrDuplicate):
		return NewConflictError("Resource already exists")
	case errors.Is(err, ErrRefreshTokenExpired):
		return NewUnauthorizedError("Session has expired")
	case errors.Is(err, ErrUnauthorized):
		return NewUnauthorizedError("Unauthorized")
	case errors.Is(err, ErrForbidden):
		return NewForbiddenError("Forbidden")
	case errors.Is(err, ErrFeatureDisabled):
		return NewNotFoundError("Not found")
	}
	return NewInternalServerError("Internal server error")
}

func authMessage(reason AuthReason) string {
	switch reason {
	case ReasonInvalidCredentials:
		return "Invalid email or password"
	case ReasonNetwork:
		return "Identity provider unavailable"
	case ReasonMalformedCallback:
		return "Malformed callback tokens"
	default:
		return "Authentication failed"
	}
}
