package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"recipebox/config"
	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/repository"
	"recipebox/internal/domain/service"
	"recipebox/internal/errors"
	"recipebox/internal/usecase"

	"go.uber.org/fx"
)

const (
	opLoadProfile     = "load_profile"
	opUpdateProfile   = "update_profile"
	opRemoveAvatar    = "remove_avatar"
	opDeleteAccount   = "delete_account"
	msgProfileUpdated = "Profile updated successfully!"
	msgAccountDeleted = "Account deleted successfully. Redirecting..."
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	accountFlow

	identity    service.IdentityProvider
	records     repository.UserRecordRepository
	recipes     repository.RecipeRepository
	store       service.ObjectStore
	avatars     service.AvatarGenerator
	prober      service.AvatarProber
	cache       *RecordCache
	pathPrefix  string
	maxBytes    int64
	landingPath string
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	Config    *config.Config
	Identity  service.IdentityProvider
	Records   repository.UserRecordRepository
	Recipes   repository.RecipeRepository
	Store     service.ObjectStore
	Avatars   service.AvatarGenerator
	Prober    service.AvatarProber
	Cache     *RecordCache
	Publisher service.EventPublisher
	Notifier  service.SessionNotifier
	Metrics   service.AccountMetrics
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	srv := &profileService{
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
		store:    params.Store,
		avatars:  params.Avatars,
		prober:   params.Prober,
		cache:    params.Cache,
		maxBytes: entity.MaxAvatarBytes,
	}
	if avatarCfg := params.Config.Avatar; avatarCfg != nil {
		srv.pathPrefix = avatarCfg.PathPrefix
		if avatarCfg.MaxBytes > 0 {
			srv.maxBytes = avatarCfg.MaxBytes
		}
	}
	if auth := params.Config.Auth; auth != nil {
		srv.landingPath = auth.LandingPath
	}

	return srv
}

// LoadProfile loads the user record, creating it on first visit.
func (srv *profileService) LoadProfile(ctx context.Context, session *entity.Session) (*usecase.ProfileView, error) {
	record, err := srv.loadOrCreate(ctx, session)
	if err != nil {
		srv.log(ctx).Error("Failed to load profile", slog.String("uid", session.UID), slog.Any("error", err))

		return nil, srv.finish(opLoadProfile, errors.Wrap(domainerrors.ErrProfileLoadFailed, err.Error()))
	}
	srv.cache.Put(record)

	return srv.view(ctx, record), srv.finish(opLoadProfile, nil)
}

// loadOrCreate returns the user record of the session, persisting a default one when absent.
// When a concurrent first visit wins the create, its record is returned unchanged.
func (srv *profileService) loadOrCreate(ctx context.Context, session *entity.Session) (*entity.UserRecord, error) {
	record, err := srv.records.FindByUID(ctx, session.UID)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, repository.ErrUserRecordNotFound) {
		return nil, errors.Wrap(err, "failed to get user record")
	}

	stored, created, err := srv.records.CreateIfAbsent(ctx, entity.NewUserRecord(session.UID, session.Email, session.DisplayName, srv.now()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user record")
	}
	if created {
		srv.log(ctx).Info("User record created on first visit", slog.String("uid", session.UID))
	}

	return stored, nil
}

// currentRecord reads the record from the document store at the start of a mutation.
// Another instance may have changed it since this process cached it.
func (srv *profileService) currentRecord(ctx context.Context, session *entity.Session) (*entity.UserRecord, error) {
	record, err := srv.loadOrCreate(ctx, session)
	if err != nil {
		return nil, err
	}
	srv.cache.Put(record)

	return record, nil
}

// resolveAvatar returns the image the page should show and whether it is a generated default.
func (srv *profileService) resolveAvatar(ctx context.Context, record *entity.UserRecord) (string, bool) {
	if record.PhotoURL != "" {
		if srv.avatars.IsGenerated(record.PhotoURL) {
			return record.PhotoURL, true
		}
		if srv.prober.Probe(ctx, record.PhotoURL) {
			return record.PhotoURL, false
		}
		srv.log(ctx).Debug("Stored avatar did not load, using default", slog.String("uid", record.UID))
	}

	return srv.avatars.Generate(avatarSeed(record)), true
}

func avatarSeed(record *entity.UserRecord) string {
	if name := strings.TrimSpace(record.DisplayName); name != "" {
		return name
	}

	return record.Email
}

func (srv *profileService) view(ctx context.Context, record *entity.UserRecord) *usecase.ProfileView {
	avatarURL, isDefault := srv.resolveAvatar(ctx, record)

	return &usecase.ProfileView{
		UID:             record.UID,
		Email:           record.Email,
		DisplayName:     record.DisplayName,
		PhotoURL:        record.PhotoURL,
		AvatarURL:       avatarURL,
		IsDefaultAvatar: isDefault,
		CreatedAt:       record.CreatedAt,
		UpdatedAt:       record.UpdatedAt,
	}
}

// UpdateProfile runs: delete old avatar, upload new avatar, update identity, update record, update cache.
func (srv *profileService) UpdateProfile(ctx context.Context, session *entity.Session, input *usecase.UpdateProfileInput) (*usecase.ProfileView, error) {
	name := sanitizeName(input.Name)
	if name == "" {
		return nil, srv.finish(opUpdateProfile, errors.WithStack(domainerrors.ErrNameEmpty))
	}
	if image := input.Image; image != nil {
		if !image.IsImage() {
			return nil, srv.finish(opUpdateProfile, errors.WithStack(domainerrors.ErrNotAnImage))
		}
		if image.Size > srv.maxBytes {
			return nil, srv.finish(opUpdateProfile, errors.WithStack(domainerrors.ErrImageTooLarge))
		}
	}

	record, err := srv.currentRecord(ctx, session)
	if err != nil {
		return nil, srv.finish(opUpdateProfile, srv.updateFailed(ctx, session.UID, err))
	}

	photoURL := record.PhotoURL
	if input.Image != nil {
		srv.deleteOwnedAvatar(ctx, opUpdateProfile, session.UID, record.PhotoURL)

		photoURL, err = srv.upload(ctx, session.UID, input.Image)
		if err != nil {
			return nil, srv.finish(opUpdateProfile, srv.updateFailed(ctx, session.UID, err))
		}
	}

	if err := srv.identity.UpdateProfile(ctx, session, entity.ProfileUpdate{DisplayName: &name, PhotoURL: &photoURL}); err != nil {
		return nil, srv.finish(opUpdateProfile, srv.updateFailed(ctx, session.UID, err))
	}

	update := entity.UserRecordUpdate{DisplayName: &name, PhotoURL: &photoURL, UpdatedAt: srv.now()}
	if err := srv.records.Update(ctx, session.UID, update); err != nil {
		return nil, srv.finish(opUpdateProfile, srv.updateFailed(ctx, session.UID, errors.Wrap(err, "failed to update user record")))
	}

	record = srv.applyToCache(record, update)
	srv.notifyRecord(record)
	srv.publish(ctx, opUpdateProfile, entity.AccountEventProfileUpdated, session.UID, record.Email, record.PhotoURL)

	view := srv.view(ctx, record)
	view.Message = msgProfileUpdated

	return view, srv.finish(opUpdateProfile, nil)
}

func (srv *profileService) upload(ctx context.Context, uid string, image *entity.AvatarUpload) (string, error) {
	objectPath := srv.pathPrefix + entity.AvatarObjectName(uid, srv.now(), image.Extension())

	progress := func(transferred, total int64) {
		if total <= 0 {
			return
		}
		percent := math.Round(float64(transferred) / float64(total) * 100)
		srv.notifier.Publish(entity.SessionEvent{
			Type:     entity.SessionEventUploadProgress,
			UID:      uid,
			Message:  fmt.Sprintf("Uploading image: %d%%", int(percent)),
			Progress: percent,
			At:       srv.now(),
		})
	}

	url, err := srv.store.Upload(ctx, objectPath, image.Content, image.Size, image.ContentType, progress)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload image")
	}

	return url, nil
}

// deleteOwnedAvatar removes ref from the object store when it is an upload the store owns.
// Generated and foreign references are never deleted. Failures are logged only.
func (srv *profileService) deleteOwnedAvatar(ctx context.Context, operation, uid, ref string) {
	if ref == "" || srv.avatars.IsGenerated(ref) || !srv.store.Owns(ref) {
		return
	}

	if err := srv.store.Delete(ctx, ref); err != nil && !errors.Is(err, service.ErrObjectNotFound) {
		srv.stepFailed(ctx, operation, "delete_avatar", uid, err)
	}
}

func (srv *profileService) applyToCache(record *entity.UserRecord, update entity.UserRecordUpdate) *entity.UserRecord {
	update.Apply(record)
	srv.cache.Put(record)

	return record
}

func (srv *profileService) notifyRecord(record *entity.UserRecord) {
	srv.notifier.Publish(entity.SessionEvent{
		Type:   entity.SessionEventProfileUpdated,
		UID:    record.UID,
		Record: record.Clone(),
		At:     srv.now(),
	})
}

func (srv *profileService) updateFailed(ctx context.Context, uid string, err error) error {
	srv.log(ctx).Error("Failed to update profile", slog.String("uid", uid), slog.Any("error", err))

	return errors.Wrap(domainerrors.ErrProfileUpdateFailed.WithMessage("Failed to update profile: "+entity.IdentityErrorMessageOf(err)), err.Error())
}

// RemoveAvatar swaps the photo for a freshly generated default.
func (srv *profileService) RemoveAvatar(ctx context.Context, session *entity.Session) (*usecase.ProfileView, error) {
	record, err := srv.currentRecord(ctx, session)
	if err != nil {
		return nil, srv.finish(opRemoveAvatar, srv.updateFailed(ctx, session.UID, err))
	}

	srv.deleteOwnedAvatar(ctx, opRemoveAvatar, session.UID, record.PhotoURL)

	photoURL := srv.avatars.Generate(avatarSeed(record))
	if err := srv.identity.UpdateProfile(ctx, session, entity.ProfileUpdate{PhotoURL: &photoURL}); err != nil {
		return nil, srv.finish(opRemoveAvatar, srv.updateFailed(ctx, session.UID, err))
	}

	update := entity.UserRecordUpdate{PhotoURL: &photoURL, UpdatedAt: srv.now()}
	if err := srv.records.Update(ctx, session.UID, update); err != nil {
		return nil, srv.finish(opRemoveAvatar, srv.updateFailed(ctx, session.UID, errors.Wrap(err, "failed to update user record")))
	}

	record = srv.applyToCache(record, update)
	srv.notifyRecord(record)
	srv.publish(ctx, opRemoveAvatar, entity.AccountEventAvatarRemoved, session.UID, record.Email, photoURL)

	view := srv.view(ctx, record)
	view.Message = msgProfileUpdated

	return view, srv.finish(opRemoveAvatar, nil)
}

// DeleteAccount removes the avatar, the user record, the recipes and finally the identity.
// Completed steps are not undone when a later one fails; every step tolerates an already missing target.
func (srv *profileService) DeleteAccount(ctx context.Context, session *entity.Session, input *usecase.DeleteAccountInput) (*usecase.AccountDeletedOutput, error) {
	if input == nil || !input.Confirmed {
		return nil, srv.finish(opDeleteAccount, errors.WithStack(domainerrors.ErrDeletionCancelled))
	}
	if strings.TrimSpace(input.Confirmation) != session.Email {
		return nil, srv.finish(opDeleteAccount, errors.WithStack(domainerrors.ErrDeletionChallengeMismatch))
	}

	logger := srv.log(ctx).With(slog.String("uid", session.UID))

	photoURL := srv.storedPhoto(ctx, session.UID)
	srv.deleteOwnedAvatar(ctx, opDeleteAccount, session.UID, photoURL)

	if err := srv.records.Delete(ctx, session.UID); err != nil {
		return nil, srv.finish(opDeleteAccount, srv.deleteFailed(ctx, errors.Wrap(err, "failed to delete user record")))
	}

	removed, err := srv.recipes.DeleteByUserID(ctx, session.UID)
	if err != nil {
		return nil, srv.finish(opDeleteAccount, srv.deleteFailed(ctx, errors.Wrap(err, "failed to delete recipes")))
	}
	logger.Debug("Recipes deleted", slog.Int("count", removed))

	if err := srv.identity.DeleteAccount(ctx, session); err != nil {
		if entity.IdentityErrorCodeOf(err) == entity.IdentityErrRequiresRecentLogin {
			logger.Info("Account deletion needs a recent login")

			return nil, srv.finish(opDeleteAccount, errors.Wrap(domainerrors.ErrRequiresRecentLogin, err.Error()))
		}

		return nil, srv.finish(opDeleteAccount, srv.deleteFailed(ctx, err))
	}

	srv.cache.Remove(session.UID)
	srv.notify(entity.SessionEventAccountDeleted, session.UID, msgAccountDeleted)
	srv.publish(ctx, opDeleteAccount, entity.AccountEventDeleted, session.UID, session.Email, photoURL)
	logger.Info("Account deleted", slog.Int("recipes_removed", removed))

	return &usecase.AccountDeletedOutput{
		Message:  msgAccountDeleted,
		Redirect: srv.landingPath,
	}, srv.finish(opDeleteAccount, nil)
}

// storedPhoto returns the photo reference of uid without creating a record.
// The cached copy is used only when the document store cannot be read.
func (srv *profileService) storedPhoto(ctx context.Context, uid string) string {
	record, err := srv.records.FindByUID(ctx, uid)
	if err == nil {
		return record.PhotoURL
	}
	if errors.Is(err, repository.ErrUserRecordNotFound) {
		return ""
	}

	srv.stepFailed(ctx, opDeleteAccount, "read_record", uid, err)
	if cached, ok := srv.cache.Get(uid); ok {
		return cached.PhotoURL
	}

	return ""
}

func (srv *profileService) deleteFailed(ctx context.Context, err error) error {
	srv.log(ctx).Error("Failed to delete account", slog.Any("error", err))

	return errors.Wrap(domainerrors.ErrAccountDeletionFailed.WithMessage("Failed to delete account: "+entity.IdentityErrorMessageOf(err)), err.Error())
}
