// Package firebase implements the identity provider on Firebase Authentication.
// Admin operations go through the Firebase Admin SDK; password sign-in and sign-up go
// through the Identity Toolkit REST API with the project's web API key.
package firebase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"recipebox/config"
	"recipebox/internal/domain/constants"
	"recipebox/internal/domain/entity"
	"recipebox/internal/domain/service"
	"recipebox/internal/errors"
	"recipebox/internal/infra/firebaseapp"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// adminClient is the subset of the Firebase Auth admin client the provider uses.
type adminClient interface {
	UpdateUser(ctx context.Context, uid string, user *fbauth.UserToUpdate) (*fbauth.UserRecord, error)
	DeleteUser(ctx context.Context, uid string) error
	RevokeRefreshTokens(ctx context.Context, uid string) error
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// passwordClient signs identities in and up with an email and password.
type passwordClient interface {
	SignUp(ctx context.Context, email, password string) (*identitytoolkit.SignupNewUserResponse, error)
	VerifyPassword(ctx context.Context, email, password string) (*identitytoolkit.VerifyPasswordResponse, error)
}

type relyingPartyClient struct {
	rp *identitytoolkit.RelyingpartyService
}

func (c *relyingPartyClient) SignUp(ctx context.Context, email, password string) (*identitytoolkit.SignupNewUserResponse, error) {
	return c.rp.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}).Context(ctx).Do()
}

func (c *relyingPartyClient) VerifyPassword(ctx context.Context, email, password string) (*identitytoolkit.VerifyPasswordResponse, error) {
	return c.rp.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
}

type identityProvider struct {
	admin             adminClient
	passwords         passwordClient
	validate          *validator.Validate
	recentLoginWindow time.Duration
	logger            *slog.Logger
	now               func() time.Time
}

// Params holds dependencies for the Firebase identity provider, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebaseapp.App
}

// NewIdentityProvider creates the Firebase Authentication identity provider.
func NewIdentityProvider(params Params) (service.IdentityProvider, error) {
	if params.Config.Identity == nil || params.Config.Identity.APIKey == "" {
		return nil, errors.New("identity.apiKey is required for the firebase identity provider")
	}

	admin, err := params.App.Auth()
	if err != nil {
		return nil, err
	}

	toolkit, err := identitytoolkit.NewService(params.Ctx, option.WithAPIKey(params.Config.Identity.APIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit client")
	}

	var window time.Duration
	if params.Config.Auth != nil {
		window = params.Config.Auth.RecentLoginWindow
	}

	return &identityProvider{
		admin:             admin,
		passwords:         &relyingPartyClient{rp: toolkit.Relyingparty},
		validate:          validator.New(),
		recentLoginWindow: window,
		logger:            params.Logger,
		now:               time.Now,
	}, nil
}

func (p *identityProvider) checkEmail(email string) error {
	if err := p.validate.Var(email, "required,email"); err != nil {
		return entity.NewIdentityError(entity.IdentityErrInvalidEmail, "The email address is badly formatted.", err)
	}

	return nil
}

func (p *identityProvider) CreateAccount(ctx context.Context, email, password string) (*entity.Session, error) {
	email = strings.TrimSpace(email)
	if err := p.checkEmail(email); err != nil {
		return nil, err
	}
	if len(password) < constants.MinPasswordLength {
		return nil, entity.NewIdentityError(entity.IdentityErrWeakPassword, "Password should be at least 6 characters", nil)
	}

	resp, err := p.passwords.SignUp(ctx, email, password)
	if err != nil {
		return nil, mapToolkitError(err)
	}

	now := p.now()

	return &entity.Session{
		UID:          resp.LocalId,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		AuthTime:     now,
		ExpiresAt:    expiresAt(now, resp.ExpiresIn),
	}, nil
}

func (p *identityProvider) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	email = strings.TrimSpace(email)
	if err := p.checkEmail(email); err != nil {
		return nil, err
	}

	resp, err := p.passwords.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, mapToolkitError(err)
	}

	now := p.now()

	return &entity.Session{
		UID:          resp.LocalId,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		PhotoURL:     resp.PhotoUrl,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		AuthTime:     now,
		ExpiresAt:    expiresAt(now, resp.ExpiresIn),
	}, nil
}

// SignOut revokes the refresh tokens of the account, which ends the sessions of every device.
func (p *identityProvider) SignOut(ctx context.Context, session *entity.Session) error {
	if err := p.admin.RevokeRefreshTokens(ctx, session.UID); err != nil {
		if fbauth.IsUserNotFound(err) {
			return nil
		}

		return mapAdminError(err)
	}

	return nil
}

func (p *identityProvider) VerifySession(ctx context.Context, token string) (*entity.Session, error) {
	verified, err := p.admin.VerifyIDTokenAndCheckRevoked(ctx, token)
	if err != nil {
		switch {
		case fbauth.IsIDTokenRevoked(err):
			identityErr := entity.NewIdentityError(entity.IdentityErrSessionRevoked, "session has been revoked", err)
			if unchecked, verr := p.admin.VerifyIDToken(ctx, token); verr == nil {
				identityErr.UID = unchecked.UID
			}

			return nil, identityErr
		case fbauth.IsUserDisabled(err):
			return nil, entity.NewIdentityError(entity.IdentityErrUserDisabled, "The user account has been disabled.", err)
		case fbauth.IsUserNotFound(err):
			return nil, entity.NewIdentityError(entity.IdentityErrSessionRevoked, "account no longer exists", err)
		default:
			return nil, entity.NewIdentityError(entity.IdentityErrInvalidSession, "invalid session token", err)
		}
	}

	return sessionFromToken(token, verified), nil
}

func (p *identityProvider) UpdateProfile(ctx context.Context, session *entity.Session, update entity.ProfileUpdate) error {
	params := &fbauth.UserToUpdate{}
	if update.DisplayName != nil {
		params = params.DisplayName(*update.DisplayName)
	}
	if update.PhotoURL != nil {
		params = params.PhotoURL(*update.PhotoURL)
	}

	if _, err := p.admin.UpdateUser(ctx, session.UID, params); err != nil {
		return mapAdminError(err)
	}

	return nil
}

func (p *identityProvider) UpdatePassword(ctx context.Context, session *entity.Session, newPassword string) (*entity.Session, error) {
	if len(newPassword) < constants.MinPasswordLength {
		return nil, entity.NewIdentityError(entity.IdentityErrWeakPassword, "Password should be at least 6 characters", nil)
	}

	if _, err := p.admin.UpdateUser(ctx, session.UID, (&fbauth.UserToUpdate{}).Password(newPassword)); err != nil {
		return nil, mapAdminError(err)
	}

	// A password change revokes the previous tokens, so sign the current page in again.
	refreshed, err := p.SignIn(ctx, session.Email, newPassword)
	if err != nil {
		p.logger.WarnContext(ctx, "Failed to refresh session after password change",
			slog.String("uid", session.UID),
			slog.Any("error", err),
		)

		return session, nil
	}
	refreshed.AuthTime = session.AuthTime

	return refreshed, nil
}

func (p *identityProvider) Reauthenticate(ctx context.Context, session *entity.Session, password string) (*entity.Session, error) {
	resp, err := p.passwords.VerifyPassword(ctx, session.Email, password)
	if err != nil {
		identityErr := mapToolkitError(err)
		if identityErr.Code == entity.IdentityErrInvalidLoginCredentials {
			identityErr.Code = entity.IdentityErrWrongPassword
		}

		return nil, identityErr
	}

	now := p.now()
	renewed := *session
	renewed.IDToken = resp.IdToken
	renewed.RefreshToken = resp.RefreshToken
	renewed.AuthTime = now
	renewed.ExpiresAt = expiresAt(now, resp.ExpiresIn)

	return &renewed, nil
}

func (p *identityProvider) DeleteAccount(ctx context.Context, session *entity.Session) error {
	if !session.IsRecentLogin(p.now(), p.recentLoginWindow) {
		return entity.NewIdentityError(entity.IdentityErrRequiresRecentLogin, "This operation is sensitive and requires recent authentication.", nil)
	}

	if err := p.admin.DeleteUser(ctx, session.UID); err != nil {
		if fbauth.IsUserNotFound(err) {
			return nil
		}

		return mapAdminError(err)
	}

	p.logger.InfoContext(ctx, "Firebase identity deleted", slog.String("uid", session.UID))

	return nil
}

func sessionFromToken(raw string, token *fbauth.Token) *entity.Session {
	session := &entity.Session{
		UID:       token.UID,
		IDToken:   raw,
		AuthTime:  time.Unix(token.AuthTime, 0),
		ExpiresAt: time.Unix(token.Expires, 0),
	}
	if email, ok := token.Claims["email"].(string); ok {
		session.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		session.DisplayName = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		session.PhotoURL = picture
	}

	return session
}

// expiresAt turns the toolkit's lifetime in seconds into a deadline, one hour when absent.
func expiresAt(now time.Time, expiresIn int64) time.Time {
	if expiresIn <= 0 {
		return now.Add(time.Hour)
	}

	return now.Add(time.Duration(expiresIn) * time.Second)
}
