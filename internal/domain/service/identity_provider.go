// Package service defines interfaces for the external services the account flows depend on.
package service

import (
	"context"

	"recipebox/internal/domain/entity"
)

// IdentityProvider manages credentials and session tokens.
// Fallible calls return *entity.IdentityError carrying a categorized code.
type IdentityProvider interface {
	// CreateAccount registers a new email/password identity and returns its first session.
	CreateAccount(ctx context.Context, email, password string) (*entity.Session, error)

	SignIn(ctx context.Context, email, password string) (*entity.Session, error)

	// SignOut ends every session of the identity.
	SignOut(ctx context.Context, session *entity.Session) error

	// VerifySession resolves a session token. Revoked tokens yield IdentityErrSessionRevoked.
	VerifySession(ctx context.Context, token string) (*entity.Session, error)

	UpdateProfile(ctx context.Context, session *entity.Session, update entity.ProfileUpdate) error

	// UpdatePassword changes the password and returns the session to keep using afterwards.
	UpdatePassword(ctx context.Context, session *entity.Session, newPassword string) (*entity.Session, error)

	// Reauthenticate proves the password again and returns a session with a fresh AuthTime.
	Reauthenticate(ctx context.Context, session *entity.Session, password string) (*entity.Session, error)

	// DeleteAccount removes the identity. Sessions older than the recent-login window
	// are refused with IdentityErrRequiresRecentLogin.
	DeleteAccount(ctx context.Context, session *entity.Session) error
}
