package entity

import (
	"fmt"

	"recipebox/internal/errors"
)

// IdentityErrorCode is the finite vocabulary of identity provider failures.
type IdentityErrorCode string

const (
	IdentityErrInvalidEmail            IdentityErrorCode = "invalid-email"
	IdentityErrUserDisabled            IdentityErrorCode = "user-disabled"
	IdentityErrUserNotFound            IdentityErrorCode = "user-not-found"
	IdentityErrWrongPassword           IdentityErrorCode = "wrong-password"
	IdentityErrEmailAlreadyInUse       IdentityErrorCode = "email-already-in-use"
	IdentityErrWeakPassword            IdentityErrorCode = "weak-password"
	IdentityErrOperationNotAllowed     IdentityErrorCode = "operation-not-allowed"
	IdentityErrTooManyRequests         IdentityErrorCode = "too-many-requests"
	IdentityErrRequiresRecentLogin     IdentityErrorCode = "requires-recent-login"
	IdentityErrInvalidLoginCredentials IdentityErrorCode = "invalid-login-credentials"
	IdentityErrSessionRevoked          IdentityErrorCode = "session-revoked"
	IdentityErrInvalidSession          IdentityErrorCode = "invalid-session"
	IdentityErrInternal                IdentityErrorCode = "internal-error"
)

// IdentityError is a categorized identity provider failure.
type IdentityError struct {
	Code    IdentityErrorCode
	Message string
	Err     error

	// UID identifies the affected identity when the provider could tell, e.g. for a revoked session.
	UID string
}

// NewIdentityError builds an IdentityError. An empty message falls back to the code.
func NewIdentityError(code IdentityErrorCode, message string, err error) *IdentityError {
	if message == "" {
		message = string(code)
	}

	return &IdentityError{Code: code, Message: message, Err: err}
}

func (e *IdentityError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("identity/%s: %s: %v", e.Code, e.Message, e.Err)
	}

	return fmt.Sprintf("identity/%s: %s", e.Code, e.Message)
}

func (e *IdentityError) Unwrap() error {
	return e.Err
}

// IdentityErrorCodeOf returns the code carried by err, or "" when err is not an identity failure.
func IdentityErrorCodeOf(err error) IdentityErrorCode {
	var identityErr *IdentityError
	if errors.As(err, &identityErr) {
		return identityErr.Code
	}

	return ""
}

// IdentityErrorMessageOf returns the provider's message text, or err's text for other failures.
func IdentityErrorMessageOf(err error) string {
	var identityErr *IdentityError
	if errors.As(err, &identityErr) {
		return identityErr.Message
	}

	return err.Error()
}
