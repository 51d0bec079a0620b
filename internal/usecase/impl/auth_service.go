// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"recipebox/config"
	"recipebox/internal/domain/constants"
	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/repository"
	"recipebox/internal/domain/service"
	"recipebox/internal/errors"
	"recipebox/internal/usecase"

	"go.uber.org/fx"
)

const (
	opSignup         = "signup"
	opLogin          = "login"
	opLogout         = "logout"
	msgSignupSuccess = "Signed up successfully! Please login to get started."
	msgLoginSuccess  = "Login successful!"
)

// authService implements the AuthUsecase interface.
type authService struct {
	accountFlow

	identity      service.IdentityProvider
	records       repository.UserRecordRepository
	switchToLogin time.Duration
	landingPath   string
	mainPath      string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Config    *config.Config
	Identity  service.IdentityProvider
	Records   repository.UserRecordRepository
	Publisher service.EventPublisher
	Notifier  service.SessionNotifier
	Metrics   service.AccountMetrics
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		accountFlow: accountFlow{
			publisher: params.Publisher,
			notifier:  params.Notifier,
			metrics:   params.Metrics,
			logger:    params.Logger,
			now:       time.Now,
		},
		identity: params.Identity,
		records:  params.Records,
	}
	if auth := params.Config.Auth; auth != nil {
		srv.switchToLogin = auth.SwitchToLoginDelay
		srv.landingPath = auth.LandingPath
		srv.mainPath = auth.MainPath
	}

	return srv
}

// Signup registers the identity, names it, writes its user record and signs it straight back out.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	name := sanitizeName(input.Name)
	email := strings.TrimSpace(input.Email)

	switch {
	case name == "":
		return nil, srv.finish(opSignup, errors.WithStack(domainerrors.ErrNameRequired))
	case email == "":
		return nil, srv.finish(opSignup, errors.WithStack(domainerrors.ErrEmailRequired))
	case input.Password != input.ConfirmPassword:
		return nil, srv.finish(opSignup, errors.WithStack(domainerrors.ErrPasswordMismatch))
	case len(input.Password) < constants.MinPasswordLength:
		return nil, srv.finish(opSignup, errors.WithStack(domainerrors.ErrPasswordTooShort))
	}

	session, err := srv.identity.CreateAccount(ctx, email, input.Password)
	if err != nil {
		return nil, srv.finish(opSignup, srv.signupError(ctx, err))
	}

	if err := srv.identity.UpdateProfile(ctx, session, entity.ProfileUpdate{DisplayName: &name}); err != nil {
		return nil, srv.finish(opSignup, srv.signupError(ctx, err))
	}

	record := entity.NewUserRecord(session.UID, session.Email, name, srv.now())
	if _, _, err := srv.records.CreateIfAbsent(ctx, record); err != nil {
		return nil, srv.finish(opSignup, srv.signupError(ctx, errors.Wrap(err, "failed to create user record")))
	}

	if err := srv.identity.SignOut(ctx, session); err != nil {
		srv.stepFailed(ctx, opSignup, "sign_out", session.UID, err)
	}

	srv.publish(ctx, opSignup, entity.AccountEventCreated, session.UID, session.Email, "")
	srv.log(ctx).Info("Account created", slog.String("uid", session.UID))

	return &usecase.SignupOutput{
		UID:             session.UID,
		Message:         msgSignupSuccess,
		SwitchToLoginMs: srv.switchToLogin.Milliseconds(),
	}, srv.finish(opSignup, nil)
}

func (srv *authService) signupError(ctx context.Context, err error) error {
	var mapped *domainerrors.BaseError
	switch entity.IdentityErrorCodeOf(err) {
	case entity.IdentityErrEmailAlreadyInUse:
		mapped = domainerrors.ErrEmailAlreadyRegistered
	case entity.IdentityErrInvalidEmail:
		mapped = domainerrors.ErrSignupInvalidEmail
	case entity.IdentityErrWeakPassword:
		mapped = domainerrors.ErrWeakPassword
	case entity.IdentityErrOperationNotAllowed:
		mapped = domainerrors.ErrSignupNotAllowed
	default:
		srv.log(ctx).Error("Signup failed", slog.Any("error", err))
		mapped = domainerrors.ErrSignupFailed.WithMessage("Signup failed: " + entity.IdentityErrorMessageOf(err))
	}

	return errors.Wrap(mapped, err.Error())
}

// Login signs in with email and password.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, srv.finish(opLogin, errors.WithStack(domainerrors.ErrCredentialsRequired))
	}

	session, err := srv.identity.SignIn(ctx, email, input.Password)
	if err != nil {
		return nil, srv.finish(opLogin, srv.loginError(ctx, err))
	}

	srv.notify(entity.SessionEventSignedIn, session.UID, "")
	srv.log(ctx).Info("User logged in", slog.String("uid", session.UID))

	return &usecase.LoginOutput{
		Session:  session,
		Header:   srv.Header(session),
		Message:  msgLoginSuccess,
		Redirect: srv.mainPath,
	}, srv.finish(opLogin, nil)
}

func (srv *authService) loginError(ctx context.Context, err error) error {
	var mapped *domainerrors.BaseError
	switch entity.IdentityErrorCodeOf(err) {
	case entity.IdentityErrUserNotFound:
		mapped = domainerrors.ErrNoAccountForEmail
	case entity.IdentityErrWrongPassword:
		mapped = domainerrors.ErrIncorrectPassword
	case entity.IdentityErrInvalidEmail:
		mapped = domainerrors.ErrLoginInvalidEmail
	case entity.IdentityErrUserDisabled:
		mapped = domainerrors.ErrAccountDisabled
	case entity.IdentityErrTooManyRequests:
		mapped = domainerrors.ErrTooManyAttempts
	case entity.IdentityErrInvalidLoginCredentials:
		mapped = domainerrors.ErrInvalidLoginCredentials
	default:
		srv.log(ctx).Error("Login failed", slog.Any("error", err))
		mapped = domainerrors.ErrLoginFailed
	}

	return errors.Wrap(mapped, err.Error())
}

// Logout ends the session at the provider. A provider failure is logged and otherwise ignored.
func (srv *authService) Logout(ctx context.Context, session *entity.Session) *usecase.LogoutOutput {
	if session != nil {
		if err := srv.identity.SignOut(ctx, session); err != nil {
			srv.stepFailed(ctx, opLogout, "sign_out", session.UID, err)
		}
		srv.notify(entity.SessionEventSignedOut, session.UID, "")
	}
	srv.metrics.RecordOperation(opLogout, outcomeSuccess)

	return &usecase.LogoutOutput{Redirect: srv.landingPath}
}

// ResolveSession verifies token with the identity provider.
func (srv *authService) ResolveSession(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	session, err := srv.identity.VerifySession(ctx, token)
	if err == nil {
		return session, nil
	}

	switch entity.IdentityErrorCodeOf(err) {
	case entity.IdentityErrSessionRevoked, entity.IdentityErrUserDisabled:
		if identityErr, ok := errors.AsType[*entity.IdentityError](err); ok && identityErr.UID != "" {
			srv.notify(entity.SessionEventSignedOut, identityErr.UID, domainerrors.ErrSessionExpired.Message())
		}

		return nil, errors.Wrap(domainerrors.ErrSessionExpired, err.Error())
	case entity.IdentityErrInvalidSession:
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
	default:
		srv.log(ctx).Warn("Session verification failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
	}
}

// Header builds the logged-in header affordance.
func (srv *authService) Header(session *entity.Session) *usecase.HeaderView {
	if session == nil {
		return nil
	}

	photoURL := session.PhotoURL
	if photoURL == "" {
		photoURL = constants.PlaceholderHeaderAvatar
	}

	return &usecase.HeaderView{
		Name:     session.HeaderName(),
		PhotoURL: photoURL,
	}
}
