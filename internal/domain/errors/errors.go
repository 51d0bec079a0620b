package errors

import (
	"net/http"

	"recipebox/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message, shown verbatim by the pages
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy carrying a different user-facing message.
// The copy keeps the code of e, so callers match it with HasCode rather than errors.Is.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// HasCode reports whether err carries an AppError with the given business code.
func HasCode(err error, code string) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.ErrorCode() == code
}

// Signup validation, checked in this order.
var (
	ErrNameRequired = NewBaseError(
		http.StatusBadRequest,
		"NAME_REQUIRED",
		"Please enter your name",
		"",
	)

	ErrEmailRequired = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_REQUIRED",
		"Please enter your email",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Passwords do not match",
		"",
	)

	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"Password must be at least 6 characters",
		"",
	)
)

// Signup provider failures.
var (
	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"This email is already registered. Please login instead.",
		"",
	)

	ErrSignupInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Invalid email format",
		"",
	)

	ErrWeakPassword = NewBaseError(
		http.StatusBadRequest,
		"WEAK_PASSWORD",
		"Password is too weak. Use at least 6 characters.",
		"",
	)

	ErrSignupNotAllowed = NewBaseError(
		http.StatusForbidden,
		"OPERATION_NOT_ALLOWED",
		"Email/password accounts are not enabled",
		"",
	)

	ErrSignupFailed = NewBaseError(
		http.StatusBadGateway,
		"SIGNUP_FAILED",
		"Signup failed",
		"",
	)
)

// Login failures.
var (
	ErrCredentialsRequired = NewBaseError(
		http.StatusBadRequest,
		"CREDENTIALS_REQUIRED",
		"Please enter both email and password",
		"",
	)

	ErrNoAccountForEmail = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"No account found with this email. Please create an account first.",
		"",
	)

	ErrIncorrectPassword = NewBaseError(
		http.StatusUnauthorized,
		"WRONG_PASSWORD",
		"Incorrect password. Please try again.",
		"",
	)

	ErrLoginInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Invalid email format. Please enter a valid email.",
		"",
	)

	ErrAccountDisabled = NewBaseError(
		http.StatusForbidden,
		"USER_DISABLED",
		"This account has been disabled.",
		"",
	)

	ErrTooManyAttempts = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"Too many failed attempts. Please try again later.",
		"",
	)

	ErrInvalidLoginCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_LOGIN_CREDENTIALS",
		"Invalid email or password. Please check your credentials and try again.",
		"",
	)

	ErrLoginFailed = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_FAILED",
		"Login failed. Please check your email and password.",
		"",
	)
)

// Session errors.
var (
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Please login to continue",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Your session has ended. Please login again.",
		"",
	)
)

// Profile errors.
var (
	ErrNameEmpty = NewBaseError(
		http.StatusBadRequest,
		"NAME_EMPTY",
		"Name cannot be empty",
		"",
	)

	ErrNotAnImage = NewBaseError(
		http.StatusBadRequest,
		"NOT_AN_IMAGE",
		"Please select an image file",
		"",
	)

	ErrImageTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"IMAGE_TOO_LARGE",
		"Image size must be less than 5MB",
		"",
	)

	ErrProfileUpdateFailed = NewBaseError(
		http.StatusBadGateway,
		"PROFILE_UPDATE_FAILED",
		"Failed to update profile",
		"",
	)

	ErrProfileLoadFailed = NewBaseError(
		http.StatusBadGateway,
		"PROFILE_LOAD_FAILED",
		"Failed to load profile",
		"",
	)
)

// Account deletion errors.
var (
	ErrDeletionCancelled = NewBaseError(
		http.StatusBadRequest,
		"DELETION_CANCELLED",
		"Account deletion cancelled",
		"",
	)

	ErrDeletionChallengeMismatch = NewBaseError(
		http.StatusBadRequest,
		"DELETION_CHALLENGE_MISMATCH",
		"Account deletion cancelled. You must type your email exactly.",
		"",
	)

	ErrRequiresRecentLogin = NewBaseError(
		http.StatusUnauthorized,
		"REQUIRES_RECENT_LOGIN",
		"For security, please logout and login again before deleting your account",
		"",
	)

	ErrAccountDeletionFailed = NewBaseError(
		http.StatusBadGateway,
		"ACCOUNT_DELETION_FAILED",
		"Failed to delete account",
		"",
	)
)

// Password change errors, local checks listed in evaluation order.
var (
	ErrNewPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"NEW_PASSWORD_MISMATCH",
		"New passwords do not match",
		"",
	)

	ErrNewPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"NEW_PASSWORD_TOO_SHORT",
		"New password must be at least 6 characters",
		"",
	)

	ErrNewPasswordUnchanged = NewBaseError(
		http.StatusBadRequest,
		"NEW_PASSWORD_UNCHANGED",
		"New password must be different from current password",
		"",
	)

	ErrCurrentPasswordIncorrect = NewBaseError(
		http.StatusUnauthorized,
		"CURRENT_PASSWORD_INCORRECT",
		"Current password is incorrect",
		"",
	)

	ErrPasswordChangeFailed = NewBaseError(
		http.StatusBadGateway,
		"PASSWORD_CHANGE_FAILED",
		"An error occurred. Please try again.",
		"",
	)
)

// General errors
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"An error occurred. Please try again.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
