// Package local implements the identity provider on top of the Postgres credential store,
// for deployments that do not use Firebase Authentication.
package local

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"recipebox/config"
	"recipebox/internal/domain/constants"
	"recipebox/internal/domain/entity"
	"recipebox/internal/domain/repository"
	"recipebox/internal/domain/service"
	"recipebox/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

type identityProvider struct {
	credentials       repository.CredentialRepository
	transactions      repository.TransactionManager
	hasher            service.PasswordHasher
	tokens            service.TokenService
	validate          *validator.Validate
	limiter           *loginLimiter
	recentLoginWindow time.Duration
	logger            *slog.Logger
	now               func() time.Time
}

// Params holds dependencies for the local identity provider, injected by Fx
type Params struct {
	fx.In

	Lc           fx.Lifecycle `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
	Credentials  repository.CredentialRepository
	Transactions repository.TransactionManager
	Hasher       service.PasswordHasher
	Tokens       service.TokenService
}

// NewIdentityProvider creates the Postgres-backed identity provider.
func NewIdentityProvider(params Params) service.IdentityProvider {
	authCfg := params.Config.Auth
	if authCfg == nil {
		authCfg = &config.AuthConfig{}
	}

	limiter := newLoginLimiter(authCfg.LoginRateLimit.PerMinute, authCfg.LoginRateLimit.Burst, authCfg.LoginRateLimit.CleanupInterval)
	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				limiter.Start()

				return nil
			},
			OnStop: func(context.Context) error {
				limiter.Stop()

				return nil
			},
		})
	}

	return &identityProvider{
		credentials:       params.Credentials,
		transactions:      params.Transactions,
		hasher:            params.Hasher,
		tokens:            params.Tokens,
		validate:          validator.New(),
		limiter:           limiter,
		recentLoginWindow: authCfg.RecentLoginWindow,
		logger:            params.Logger,
		now:               time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (p *identityProvider) checkEmail(email string) error {
	if err := p.validate.Var(email, "required,email"); err != nil {
		return entity.NewIdentityError(entity.IdentityErrInvalidEmail, "The email address is badly formatted.", err)
	}

	return nil
}

func (p *identityProvider) CreateAccount(ctx context.Context, email, password string) (*entity.Session, error) {
	email = normalizeEmail(email)
	if err := p.checkEmail(email); err != nil {
		return nil, err
	}
	if len(password) < constants.MinPasswordLength {
		return nil, entity.NewIdentityError(entity.IdentityErrWeakPassword, "Password should be at least 6 characters", nil)
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, entity.NewIdentityError(entity.IdentityErrInternal, "failed to hash password", err)
	}

	now := p.now()
	credential := &entity.Credential{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := p.credentials.Create(ctx, credential); err != nil {
		if errors.Is(err, repository.ErrCredentialEmailTaken) {
			return nil, entity.NewIdentityError(entity.IdentityErrEmailAlreadyInUse, "The email address is already in use by another account.", err)
		}

		return nil, entity.NewIdentityError(entity.IdentityErrInternal, "failed to create account", err)
	}

	return p.issueSession(credential, now)
}

func (p *identityProvider) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	email = normalizeEmail(email)
	if err := p.checkEmail(email); err != nil {
		return nil, err
	}
	if p.limiter.Blocked(email) {
		return nil, entity.NewIdentityError(entity.IdentityErrTooManyRequests, "Too many unsuccessful login attempts.", nil)
	}

	credential, err := p.credentials.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			p.limiter.Fail(email)

			return nil, entity.NewIdentityError(entity.IdentityErrUserNotFound, "There is no user record corresponding to this identifier.", err)
		}

		return nil, entity.NewIdentityError(entity.IdentityErrInternal, "failed to look up account", err)
	}
	if credential.Disabled {
		return nil, entity.NewIdentityError(entity.IdentityErrUserDisabled, "The user account has been disabled.", nil)
	}
	if !p.hasher.Check(password, credential.PasswordHash) {
		p.limiter.Fail(email)

		return nil, entity.NewIdentityError(entity.IdentityErrWrongPassword, "The password is invalid.", nil)
	}

	p.limiter.Reset(email)

	return p.issueSession(credential, p.now())
}

// SignOut moves tokens_valid_after forward, which ends the sessions of every device.
func (p *identityProvider) SignOut(ctx context.Context, session *entity.Session) error {
	validAfter := p.now().Truncate(time.Millisecond)
	if err := p.credentials.RevokeTokens(ctx, session.UID, validAfter); err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil
		}

		return entity.NewIdentityError(entity.IdentityErrInternal, "failed to revoke sessions", err)
	}

	return nil
}

func (p *identityProvider) VerifySession(ctx context.Context, token string) (*entity.Session, error) {
	claims, err := p.tokens.Validate(token)
	if err != nil {
		return nil, entity.NewIdentityError(entity.IdentityErrInvalidSession, "invalid session token", err)
	}

	credential, err := p.credentials.FindByUID(ctx, claims.UID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, entity.NewIdentityError(entity.IdentityErrSessionRevoked, "account no longer exists", err)
		}

		return nil, entity.NewIdentityError(entity.IdentityErrInternal, "failed to look up account", err)
	}
	if credential.Disabled {
		return nil, entity.NewIdentityError(entity.IdentityErrUserDisabled, "The user account has been disabled.", nil)
	}
	if claims.IssuedAt.Before(credential.TokensValidAfter) {
		identityErr := entity.NewIdentityError(entity.IdentityErrSessionRevoked, "session has been revoked", nil)
		identityErr.UID = credential.UID

		return nil, identityErr
	}

	return &entity.Session{
		UID:         credential.UID,
		Email:       credential.Email,
		DisplayName: credential.DisplayName,
		PhotoURL:    credential.PhotoURL,
		IDToken:     token,
		AuthTime:    claims.AuthTime,
		ExpiresAt:   claims.ExpiresAt,
	}, nil
}

func (p *identityProvider) UpdateProfile(ctx context.Context, session *entity.Session, update entity.ProfileUpdate) error {
	if err := p.credentials.UpdateProfile(ctx, session.UID, update); err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return entity.NewIdentityError(entity.IdentityErrUserNotFound, "There is no user record corresponding to this identifier.", err)
		}

		return entity.NewIdentityError(entity.IdentityErrInternal, "failed to update profile", err)
	}

	return nil
}

// UpdatePassword rotates the hash and revokes every earlier token in one transaction,
// then hands back a fresh session for the caller.
func (p *identityProvider) UpdatePassword(ctx context.Context, session *entity.Session, newPassword string) (*entity.Session, error) {
	if len(newPassword) < constants.MinPasswordLength {
		return nil, entity.NewIdentityError(entity.IdentityErrWeakPassword, "Password should be at least 6 characters", nil)
	}

	hash, err := p.hasher.Hash(newPassword)
	if err != nil {
		return nil, entity.NewIdentityError(entity.IdentityErrInternal, "failed to hash password", err)
	}

	now := p.now().Truncate(time.Millisecond)
	err = p.transactions.Execute(ctx, func(repos repository.RepositoryFactory) error {
		credentials := repos.NewCredentialRepository()
		if err := credentials.UpdatePasswordHash(ctx, session.UID, hash); err != nil {
			return err
		}

		return credentials.RevokeTokens(ctx, session.UID, now)
	})
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, entity.NewIdentityError(entity.IdentityErrUserNotFound, "There is no user record corresponding to this identifier.", err)
		}

		return nil, entity.NewIdentityError(entity.IdentityErrInternal, "failed to update password", err)
	}

	credential, err := p.credentials.FindByUID(ctx, session.UID)
	if err != nil {
		return nil, entity.NewIdentityError(entity.IdentityErrInternal, "failed to look up account", err)
	}

	return p.issueSession(credential, now)
}

func (p *identityProvider) Reauthenticate(ctx context.Context, session *entity.Session, password string) (*entity.Session, error) {
	credential, err := p.credentials.FindByUID(ctx, session.UID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, entity.NewIdentityError(entity.IdentityErrUserNotFound, "There is no user record corresponding to this identifier.", err)
		}

		return nil, entity.NewIdentityError(entity.IdentityErrInternal, "failed to look up account", err)
	}
	if !p.hasher.Check(password, credential.PasswordHash) {
		return nil, entity.NewIdentityError(entity.IdentityErrWrongPassword, "The password is invalid.", nil)
	}

	return p.issueSession(credential, p.now())
}

func (p *identityProvider) DeleteAccount(ctx context.Context, session *entity.Session) error {
	if !session.IsRecentLogin(p.now(), p.recentLoginWindow) {
		return entity.NewIdentityError(entity.IdentityErrRequiresRecentLogin, "This operation is sensitive and requires recent authentication.", nil)
	}

	if err := p.credentials.Delete(ctx, session.UID); err != nil {
		return entity.NewIdentityError(entity.IdentityErrInternal, "failed to delete account", err)
	}

	p.logger.InfoContext(ctx, "Local identity deleted", slog.String("uid", session.UID))

	return nil
}

func (p *identityProvider) issueSession(credential *entity.Credential, authTime time.Time) (*entity.Session, error) {
	token, claims, err := p.tokens.Issue(credential.UID, credential.Email, authTime)
	if err != nil {
		return nil, entity.NewIdentityError(entity.IdentityErrInternal, "failed to issue session", err)
	}

	return &entity.Session{
		UID:         credential.UID,
		Email:       credential.Email,
		DisplayName: credential.DisplayName,
		PhotoURL:    credential.PhotoURL,
		IDToken:     token,
		AuthTime:    claims.AuthTime,
		ExpiresAt:   claims.ExpiresAt,
	}, nil
}
