package repository

import (
	"context"
	"errors"
	"time"

	"recipebox/internal/domain/entity"
)

var (
	ErrCredentialNotFound   = errors.New("credential not found")
	ErrCredentialEmailTaken = errors.New("credential email already exists")
)

// CredentialRepository stores email/password identities for the built-in identity provider.
type CredentialRepository interface {
	Create(ctx context.Context, credential *entity.Credential) error
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)
	FindByUID(ctx context.Context, uid string) (*entity.Credential, error)
	UpdateProfile(ctx context.Context, uid string, update entity.ProfileUpdate) error
	UpdatePasswordHash(ctx context.Context, uid, hash string) error
	RevokeTokens(ctx context.Context, uid string, validAfter time.Time) error

	// Delete removes the credential. Deleting an absent credential is not an error.
	Delete(ctx context.Context, uid string) error
}
