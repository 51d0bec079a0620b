package firebase

import (
	"strings"

	"recipebox/internal/domain/entity"
	"recipebox/internal/errors"

	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/googleapi"
)

// toolkitCodes maps Identity Toolkit error reasons to identity error codes.
var toolkitCodes = map[string]entity.IdentityErrorCode{
	"EMAIL_NOT_FOUND":                entity.IdentityErrUserNotFound,
	"INVALID_PASSWORD":               entity.IdentityErrWrongPassword,
	"USER_DISABLED":                  entity.IdentityErrUserDisabled,
	"TOO_MANY_ATTEMPTS_TRY_LATER":    entity.IdentityErrTooManyRequests,
	"INVALID_LOGIN_CREDENTIALS":      entity.IdentityErrInvalidLoginCredentials,
	"INVALID_EMAIL":                  entity.IdentityErrInvalidEmail,
	"MISSING_EMAIL":                  entity.IdentityErrInvalidEmail,
	"EMAIL_EXISTS":                   entity.IdentityErrEmailAlreadyInUse,
	"WEAK_PASSWORD":                  entity.IdentityErrWeakPassword,
	"OPERATION_NOT_ALLOWED":          entity.IdentityErrOperationNotAllowed,
	"PASSWORD_LOGIN_DISABLED":        entity.IdentityErrOperationNotAllowed,
	"CREDENTIAL_TOO_OLD_LOGIN_AGAIN": entity.IdentityErrRequiresRecentLogin,
	"TOKEN_EXPIRED":                  entity.IdentityErrSessionRevoked,
	"USER_NOT_FOUND":                 entity.IdentityErrUserNotFound,
}

// mapToolkitError converts an Identity Toolkit REST failure. The service reports the
// reason as the message, optionally followed by " : " and a human readable explanation.
func mapToolkitError(err error) *entity.IdentityError {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return entity.NewIdentityError(entity.IdentityErrInternal, err.Error(), err)
	}

	reason, explanation, _ := strings.Cut(apiErr.Message, " : ")
	reason = strings.TrimSpace(reason)

	code, ok := toolkitCodes[reason]
	if !ok {
		return entity.NewIdentityError(entity.IdentityErrInternal, apiErr.Message, err)
	}

	message := strings.TrimSpace(explanation)
	if message == "" {
		message = reason
	}

	return entity.NewIdentityError(code, message, err)
}

// mapAdminError converts a Firebase Admin SDK failure.
func mapAdminError(err error) *entity.IdentityError {
	switch {
	case fbauth.IsUserNotFound(err):
		return entity.NewIdentityError(entity.IdentityErrUserNotFound, "There is no user record corresponding to this identifier.", err)
	case fbauth.IsEmailAlreadyExists(err):
		return entity.NewIdentityError(entity.IdentityErrEmailAlreadyInUse, "The email address is already in use by another account.", err)
	case fbauth.IsUserDisabled(err):
		return entity.NewIdentityError(entity.IdentityErrUserDisabled, "The user account has been disabled.", err)
	case fbauth.IsIDTokenRevoked(err):
		return entity.NewIdentityError(entity.IdentityErrSessionRevoked, "session has been revoked", err)
	default:
		return entity.NewIdentityError(entity.IdentityErrInternal, err.Error(), err)
	}
}
