package impl

import (
	"context"
	"log/slog"
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
	opChangePassword          = "change_password"
	opSettingsDeleteAccount   = "settings_delete_account"
	msgPasswordChanged        = "Password changed successfully!"
	msgSettingsAccountDeleted = "Account deleted successfully."
)

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	accountFlow

	identity    service.IdentityProvider
	records     repository.UserRecordRepository
	recipes     repository.RecipeRepository
	cache       *RecordCache
	landingPath string
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	Config    *config.Config
	Identity  service.IdentityProvider
	Records   repository.UserRecordRepository
	Recipes   repository.RecipeRepository
	Cache     *RecordCache
	Publisher service.EventPublisher
	Notifier  service.SessionNotifier
	Metrics   service.AccountMetrics
	Logger    *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	srv := &settingsService{
		accountFlow: accountFlow{
			publisher: params.Publisher,
			notifier:  params.Notifier,
			metrics:   params.Metrics,
			logger:    params.Logger,
			now:       time.Now,
		},
		identity: params.Identity,
		records:  params.Records,
		recipes:  params.Recipes,
		cache:    params.Cache,
	}
	if auth := params.Config.Auth; auth != nil {
		srv.landingPath = auth.LandingPath
	}

	return srv
}

// ChangePassword proves the current password again, then sets the new one.
func (srv *settingsService) ChangePassword(ctx context.Context, session *entity.Session, input *usecase.ChangePasswordInput) (*usecase.ChangePasswordOutput, error) {
	switch {
	case input.NewPassword != input.ConfirmPassword:
		return nil, srv.finish(opChangePassword, errors.WithStack(domainerrors.ErrNewPasswordMismatch))
	case len(input.NewPassword) < constants.MinPasswordLength:
		return nil, srv.finish(opChangePassword, errors.WithStack(domainerrors.ErrNewPasswordTooShort))
	case input.NewPassword == input.CurrentPassword:
		return nil, srv.finish(opChangePassword, errors.WithStack(domainerrors.ErrNewPasswordUnchanged))
	}

	reauthed, err := srv.identity.Reauthenticate(ctx, session, input.CurrentPassword)
	if err != nil {
		return nil, srv.finish(opChangePassword, srv.passwordError(ctx, session.UID, err))
	}

	updated, err := srv.identity.UpdatePassword(ctx, reauthed, input.NewPassword)
	if err != nil {
		return nil, srv.finish(opChangePassword, srv.passwordError(ctx, session.UID, err))
	}
	srv.log(ctx).Info("Password changed", slog.String("uid", session.UID))

	return &usecase.ChangePasswordOutput{
		Session: updated,
		Message: msgPasswordChanged,
	}, srv.finish(opChangePassword, nil)
}

func (srv *settingsService) passwordError(ctx context.Context, uid string, err error) error {
	if entity.IdentityErrorCodeOf(err) == entity.IdentityErrWrongPassword {
		return errors.Wrap(domainerrors.ErrCurrentPasswordIncorrect, err.Error())
	}
	srv.log(ctx).Warn("Password change failed", slog.String("uid", uid), slog.Any("error", err))

	return errors.Wrap(domainerrors.ErrPasswordChangeFailed.WithMessage(entity.IdentityErrorMessageOf(err)), err.Error())
}

// DeleteAccount deletes the identity, then the stored data. A stale session only ends the session,
// leaving identity and stored data in place.
func (srv *settingsService) DeleteAccount(ctx context.Context, session *entity.Session, input *usecase.SettingsDeleteAccountInput) (*usecase.SettingsDeleteAccountOutput, error) {
	if input == nil || !input.Confirmed {
		return nil, srv.finish(opSettingsDeleteAccount, errors.WithStack(domainerrors.ErrDeletionCancelled))
	}

	logger := srv.log(ctx).With(slog.String("uid", session.UID))

	if err := srv.identity.DeleteAccount(ctx, session); err != nil {
		if entity.IdentityErrorCodeOf(err) != entity.IdentityErrRequiresRecentLogin {
			logger.Error("Failed to delete account", slog.Any("error", err))

			return nil, srv.finish(opSettingsDeleteAccount, errors.Wrap(
				domainerrors.ErrAccountDeletionFailed.WithMessage("Failed to delete account: "+entity.IdentityErrorMessageOf(err)),
				err.Error(),
			))
		}

		logger.Info("Account deletion needs a recent login, signing out")
		if signOutErr := srv.identity.SignOut(ctx, session); signOutErr != nil {
			srv.stepFailed(ctx, opSettingsDeleteAccount, "sign_out", session.UID, signOutErr)
		}
		srv.notify(entity.SessionEventSignedOut, session.UID, domainerrors.ErrRequiresRecentLogin.Message())
		srv.metrics.RecordOperation(opSettingsDeleteAccount, domainerrors.ErrRequiresRecentLogin.ErrorCode())

		return &usecase.SettingsDeleteAccountOutput{
			Deleted:  false,
			Message:  domainerrors.ErrRequiresRecentLogin.Message(),
			Redirect: srv.landingPath,
		}, nil
	}

	var photoURL string
	if record, err := srv.records.FindByUID(ctx, session.UID); err == nil {
		photoURL = record.PhotoURL
	} else if cached, ok := srv.cache.Get(session.UID); ok && !errors.Is(err, repository.ErrUserRecordNotFound) {
		photoURL = cached.PhotoURL
	}
	if err := srv.records.Delete(ctx, session.UID); err != nil {
		srv.stepFailed(ctx, opSettingsDeleteAccount, "delete_record", session.UID, err)
	}
	if removed, err := srv.recipes.DeleteByUserID(ctx, session.UID); err != nil {
		srv.stepFailed(ctx, opSettingsDeleteAccount, "delete_recipes", session.UID, err)
	} else {
		logger.Debug("Recipes deleted", slog.Int("count", removed))
	}

	srv.cache.Remove(session.UID)
	srv.notify(entity.SessionEventAccountDeleted, session.UID, msgSettingsAccountDeleted)
	srv.publish(ctx, opSettingsDeleteAccount, entity.AccountEventDeleted, session.UID, session.Email, photoURL)
	logger.Info("Account deleted")

	return &usecase.SettingsDeleteAccountOutput{
		Deleted:  true,
		Message:  msgSettingsAccountDeleted,
		Redirect: srv.landingPath,
	}, srv.finish(opSettingsDeleteAccount, nil)
}
