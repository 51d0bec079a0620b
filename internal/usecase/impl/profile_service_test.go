package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/repository"
	"recipebox/internal/domain/service"
	"recipebox/internal/errors"
	mockRepo "recipebox/internal/mocks/repository"
	mockService "recipebox/internal/mocks/service"
	"recipebox/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	storedPhoto    = "https://storage.example.com/profile_images/profile_uid-1_1700000000000.png"
	uploadedPhoto  = "https://storage.example.com/profile_images/profile_uid-1_1772366400000.png"
	generatedPhoto = "https://ui-avatars.com/api/?name=Ann&background=a1b2c3&color=fff&size=200"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   *profileService
	identity  *mockService.MockIdentityProvider
	records   *mockRepo.MockUserRecordRepository
	recipes   *mockRepo.MockRecipeRepository
	store     *mockService.MockObjectStore
	avatars   *mockService.MockAvatarGenerator
	prober    *mockService.MockAvatarProber
	publisher *mockService.MockEventPublisher
	cache     *RecordCache
	notifier  *recordingNotifier
	metrics   *countingMetrics
	now       time.Time
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fx := profileServiceFixtures{
		identity:  mockService.NewMockIdentityProvider(t),
		records:   mockRepo.NewMockUserRecordRepository(t),
		recipes:   mockRepo.NewMockRecipeRepository(t),
		store:     mockService.NewMockObjectStore(t),
		avatars:   mockService.NewMockAvatarGenerator(t),
		prober:    mockService.NewMockAvatarProber(t),
		publisher: mockService.NewMockEventPublisher(t),
		cache:     NewRecordCache(),
		notifier:  &recordingNotifier{},
		metrics:   newCountingMetrics(),
		now:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	fx.service = NewProfileService(ProfileServiceParams{
		Config:    newTestConfig(),
		Identity:  fx.identity,
		Records:   fx.records,
		Recipes:   fx.recipes,
		Store:     fx.store,
		Avatars:   fx.avatars,
		Prober:    fx.prober,
		Cache:     fx.cache,
		Publisher: fx.publisher,
		Notifier:  fx.notifier,
		Metrics:   fx.metrics,
		Logger:    discardLogger(),
	}).(*profileService)
	fx.service.now = fixedClock(fx.now)

	fx.publisher.EXPECT().PublishAccountEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
	fx.avatars.EXPECT().IsGenerated(mock.Anything).RunAndReturn(func(ref string) bool {
		return strings.HasPrefix(ref, "https://ui-avatars.com/")
	}).Maybe()
	fx.store.EXPECT().Owns(mock.Anything).RunAndReturn(func(ref string) bool {
		return strings.HasPrefix(ref, "https://storage.example.com/")
	}).Maybe()

	return fx
}

func cachedRecord(photoURL string) *entity.UserRecord {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	return &entity.UserRecord{
		UID:         "uid-1",
		Email:       "ann@example.com",
		DisplayName: "Ann",
		PhotoURL:    photoURL,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func pngUpload(size int64) *entity.AvatarUpload {
	return &entity.AvatarUpload{
		Filename:    "me.png",
		ContentType: "image/png",
		Size:        size,
		Content:     bytes.NewReader(make([]byte, 16)),
	}
}

func photoIs(want string) func(entity.ProfileUpdate) bool {
	return func(update entity.ProfileUpdate) bool {
		return update.PhotoURL != nil && *update.PhotoURL == want
	}
}

func recordPhotoIs(want string) func(entity.UserRecordUpdate) bool {
	return func(update entity.UserRecordUpdate) bool {
		return update.PhotoURL != nil && *update.PhotoURL == want
	}
}

func TestProfileService_LoadProfile_CreatesMissingRecord(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	session := testSession()

	fx.records.EXPECT().FindByUID(ctx, "uid-1").Return(nil, repository.ErrUserRecordNotFound)
	fx.records.EXPECT().CreateIfAbsent(ctx, mock.MatchedBy(func(record *entity.UserRecord) bool {
		return record.Email == "ann@example.com" && record.DisplayName == "Ann" && record.PhotoURL == "" &&
			record.CreatedAt.Equal(fx.now) && record.UpdatedAt.Equal(fx.now)
	})).RunAndReturn(func(_ context.Context, record *entity.UserRecord) (*entity.UserRecord, bool, error) {
		return record, true, nil
	})
	fx.avatars.EXPECT().Generate("Ann").Return(generatedPhoto)

	view, err := fx.service.LoadProfile(ctx, session)

	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", view.Email)
	assert.Empty(t, view.PhotoURL)
	assert.Equal(t, generatedPhoto, view.AvatarURL)
	assert.True(t, view.IsDefaultAvatar)

	cached, ok := fx.cache.Get("uid-1")
	require.True(t, ok)
	assert.Equal(t, "Ann", cached.DisplayName)
}

func TestProfileService_LoadProfile_ConcurrentCreateKeepsWinner(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	winner := cachedRecord("")

	fx.records.EXPECT().FindByUID(ctx, "uid-1").Return(nil, repository.ErrUserRecordNotFound)
	fx.records.EXPECT().CreateIfAbsent(ctx, mock.Anything).Return(winner, false, nil)
	fx.avatars.EXPECT().Generate("Ann").Return(generatedPhoto)

	view, err := fx.service.LoadProfile(ctx, testSession())

	require.NoError(t, err)
	assert.Equal(t, winner.CreatedAt, view.CreatedAt)
}

func TestProfileService_LoadProfile_AvatarResolution(t *testing.T) {
	t.Run("stored photo that loads", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.records.EXPECT().FindByUID(mock.Anything, "uid-1").Return(cachedRecord(storedPhoto), nil)
		fx.prober.EXPECT().Probe(mock.Anything, storedPhoto).Return(true)

		view, err := fx.service.LoadProfile(context.Background(), testSession())

		require.NoError(t, err)
		assert.Equal(t, storedPhoto, view.AvatarURL)
		assert.False(t, view.IsDefaultAvatar)
	})

	t.Run("stored photo that fails to load falls back to a default", func(t *testing.T) {
		fx := createTestProfileService(t)
		record := cachedRecord(storedPhoto)
		record.DisplayName = ""
		fx.records.EXPECT().FindByUID(mock.Anything, "uid-1").Return(record, nil)
		fx.prober.EXPECT().Probe(mock.Anything, storedPhoto).Return(false)
		fx.avatars.EXPECT().Generate("ann@example.com").Return(generatedPhoto)

		view, err := fx.service.LoadProfile(context.Background(), testSession())

		require.NoError(t, err)
		assert.Equal(t, storedPhoto, view.PhotoURL)
		assert.Equal(t, generatedPhoto, view.AvatarURL)
		assert.True(t, view.IsDefaultAvatar)
	})

	t.Run("generated photo is shown without probing", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.records.EXPECT().FindByUID(mock.Anything, "uid-1").Return(cachedRecord(generatedPhoto), nil)

		view, err := fx.service.LoadProfile(context.Background(), testSession())

		require.NoError(t, err)
		assert.Equal(t, generatedPhoto, view.AvatarURL)
		fx.prober.AssertNotCalled(t, "Probe", mock.Anything, mock.Anything)
	})
}

func TestProfileService_LoadProfile_StoreFailure(t *testing.T) {
	fx := createTestProfileService(t)
	fx.records.EXPECT().FindByUID(mock.Anything, "uid-1").Return(nil, errors.New("unavailable"))

	_, err := fx.service.LoadProfile(context.Background(), testSession())

	assert.ErrorIs(t, err, domainerrors.ErrProfileLoadFailed)
}

func TestProfileService_UpdateProfile_WithNewImage(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	session := testSession()
	fx.records.EXPECT().FindByUID(mock.Anything, "uid-1").Return(cachedRecord(storedPhoto), nil)

	wantPath := "profile_images/profile_uid-1_1772366400000.png"
	mock.InOrder(
		fx.store.EXPECT().Delete(ctx, storedPhoto).Return(nil).Call,
		fx.store.EXPECT().Upload(ctx, wantPath, mock.Anything, int64(1024), "image/png", mock.Anything).
			Run(func(_ context.Context, _ string, _ io.Reader, _ int64, _ string, progress service.ProgressFunc) {
				progress(512, 1024)
				progress(1024, 1024)
			}).Return(uploadedPhoto, nil).Call,
		fx.identity.EXPECT().UpdateProfile(ctx, session, mock.MatchedBy(func(update entity.ProfileUpdate) bool {
			return *update.DisplayName == "Ann Lee" && *update.PhotoURL == uploadedPhoto
		})).Return(nil).Call,
		fx.records.EXPECT().Update(ctx, "uid-1", mock.MatchedBy(func(update entity.UserRecordUpdate) bool {
			return *update.DisplayName == "Ann Lee" && *update.PhotoURL == uploadedPhoto && update.UpdatedAt.Equal(fx.now)
		})).Return(nil).Call,
	)
	fx.prober.EXPECT().Probe(ctx, uploadedPhoto).Return(true)

	view, err := fx.service.UpdateProfile(ctx, session, &usecase.UpdateProfileInput{Name: "Ann Lee", Image: pngUpload(1024)})

	require.NoError(t, err)
	assert.Equal(t, "Profile updated successfully!", view.Message)
	assert.Equal(t, uploadedPhoto, view.PhotoURL)

	cached, _ := fx.cache.Get("uid-1")
	assert.Equal(t, uploadedPhoto, cached.PhotoURL)
	assert.Equal(t, "Ann Lee", cached.DisplayName)

	progress := fx.notifier.ofType(entity.SessionEventUploadProgress)
	require.Len(t, progress, 2)
	assert.Equal(t, "Uploading image: 50%", progress[0].Message)
	assert.Equal(t, "Uploading image: 100%", progress[1].Message)

	updated := fx.notifier.ofType(entity.SessionEventProfileUpdated)
	require.Len(t, updated, 1)
	assert.Equal(t, uploadedPhoto, updated[0].Record.PhotoURL)
}

func TestProfileService_UpdateProfile_WithoutImageKeepsPhoto(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	session := testSession()
	fx.records.EXPECT().FindByUID(mock.Anything, "uid-1").Return(cachedRecord(uploadedPhoto), nil)

	fx.identity.EXPECT().UpdateProfile(ctx, session, mock.MatchedBy(photoIs(uploadedPhoto))).Return(nil).Times(2)
	fx.records.EXPECT().Update(ctx, "uid-1", mock.MatchedBy(recordPhotoIs(uploadedPhoto))).Return(nil).Times(2)
	fx.prober.EXPECT().Probe(ctx, uploadedPhoto).Return(true)

	for range 2 {
		view, err := fx.service.UpdateProfile(ctx, session, &usecase.UpdateProfileInput{Name: "Ann"})
		require.NoError(t, err)
		assert.Equal(t, uploadedPhoto, view.PhotoURL)
	}

	fx.store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	fx.store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProfileService_UpdateProfile_ReadsStoreNotCache(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	session := testSession()
	// Another instance replaced the photo after this one cached the record.
	fx.cache.Put(cachedRecord(storedPhoto))
	fx.records.EXPECT().FindByUID(ctx, "uid-1").Return(cachedRecord(uploadedPhoto), nil)

	fx.identity.EXPECT().UpdateProfile(ctx, session, mock.MatchedBy(photoIs(uploadedPhoto))).Return(nil)
	fx.records.EXPECT().Update(ctx, "uid-1", mock.MatchedBy(recordPhotoIs(uploadedPhoto))).Return(nil)
	fx.prober.EXPECT().Probe(ctx, uploadedPhoto).Return(true)

	view, err := fx.service.UpdateProfile(ctx, session, &usecase.UpdateProfileInput{Name: "Ann"})

	require.NoError(t, err)
	assert.Equal(t, uploadedPhoto, view.PhotoURL)
	cached, _ := fx.cache.Get("uid-1")
	assert.Equal(t, uploadedPhoto, cached.PhotoURL)
	fx.store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProfileService_RemoveAvatar_DeletesStoredUpload(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	session := testSession()
	fx.cache.Put(cachedRecord(generatedPhoto))
	fx.records.EXPECT().FindByUID(ctx, "uid-1").Return(cachedRecord(uploadedPhoto), nil)

	fx.store.EXPECT().Delete(ctx, uploadedPhoto).Return(nil)
	fx.avatars.EXPECT().Generate("Ann").Return(generatedPhoto)
	fx.identity.EXPECT().UpdateProfile(ctx, session, mock.MatchedBy(photoIs(generatedPhoto))).Return(nil)
	fx.records.EXPECT().Update(ctx, "uid-1", mock.MatchedBy(recordPhotoIs(generatedPhoto))).Return(nil)

	_, err := fx.service.RemoveAvatar(ctx, session)

	require.NoError(t, err)
}

func TestProfileService_UpdateProfile_GeneratedPhotoIsNotDeleted(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	session := testSession()
	fx.records.EXPECT().FindByUID(mock.Anything, "uid-1").Return(cachedRecord(generatedPhoto), nil)

	fx.store.EXPECT().Upload(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(uploadedPhoto, nil)
	fx.identity.EXPECT().UpdateProfile(ctx, session, mock.MatchedBy(photoIs(uploadedPhoto))).Return(nil)
	fx.records.EXPECT().Update(ctx, "uid-1", mock.Anything).Return(nil)
	fx.prober.EXPECT().Probe(ctx, uploadedPhoto).Return(true)

	_, err := fx.service.UpdateProfile(ctx, session, &usecase.UpdateProfileInput{Name: "Ann", Image: pngUpload(10)})

	require.NoError(t, err)
	fx.store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProfileService_UpdateProfile_OldAvatarDeleteFailureIsIgnored(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	session := testSession()
	fx.records.EXPECT().FindByUID(mock.Anything, "uid-1").Return(cachedRecord(storedPhoto), nil)

	fx.store.EXPECT().Delete(ctx, storedPhoto).Return(errors.New("permission denied"))
	fx.store.EXPECT().Upload(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(uploadedPhoto, nil)
	fx.identity.EXPECT().UpdateProfile(ctx, session, mock.Anything).Return(nil)
	fx.records.EXPECT().Update(ctx, "uid-1", mock.Anything).Return(nil)
	fx.prober.EXPECT().Probe(ctx, uploadedPhoto).Return(true)

	_, err := fx.service.UpdateProfile(ctx, session, &usecase.UpdateProfileInput{Name: "Ann", Image: pngUpload(10)})

	require.NoError(t, err)
	assert.Equal(t, []string{"update_profile/delete_avatar"}, fx.metrics.steps)
}

func TestProfileService_UpdateProfile_RejectsImages(t *testing.T) {
	tests := []struct {
		name  string
		image *entity.AvatarUpload
		want  *domainerrors.BaseError
	}{
		{
			name:  "six MiB image",
			image: pngUpload(6 * 1024 * 1024),
			want:  domainerrors.ErrImageTooLarge,
		},
		{
			name:  "not an image",
			image: &entity.AvatarUpload{Filename: "notes.pdf", ContentType: "application/pdf", Size: 10, Content: strings.NewReader("x")},
			want:  domainerrors.ErrNotAnImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			fx.cache.Put(cachedRecord(storedPhoto))

			_, err := fx.service.UpdateProfile(context.Background(), testSession(), &usecase.UpdateProfileInput{Name: "Ann", Image: tt.image})

			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.want.Message(), appMessage(t, err))
			fx.store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			fx.store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			fx.identity.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
			fx.records.AssertNotCalled(t, "FindByUID", mock.Anything, mock.Anything)

			cached, _ := fx.cache.Get("uid-1")
			assert.Equal(t, storedPhoto, cached.PhotoURL)
		})
	}
}

func TestProfileService_UpdateProfile_EmptyName(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.UpdateProfile(context.Background(), testSession(), &usecase.UpdateProfileInput{Name: "  <i> </i> "})

	assert.ErrorIs(t, err, domainerrors.ErrNameEmpty)
	assert.Equal(t, "Name cannot be empty", appMessage(t, err))
}

func TestProfileService_UpdateProfile_FailureAbortsLaterSteps(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	session := testSession()
	fx.records.EXPECT().FindByUID(mock.Anything, "uid-1").Return(cachedRecord(storedPhoto), nil)

	fx.store.EXPECT().Delete(ctx, storedPhoto).Return(nil)
	fx.store.EXPECT().Upload(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(uploadedPhoto, nil)
	fx.identity.EXPECT().UpdateProfile(ctx, session, mock.Anything).
		Return(entity.NewIdentityError(entity.IdentityErrInternal, "backend unavailable", nil))

	_, err := fx.service.UpdateProfile(ctx, session, &usecase.UpdateProfileInput{Name: "Ann", Image: pngUpload(10)})

	require.Error(t, err)
	assert.True(t, domainerrors.HasCode(err, domainerrors.ErrProfileUpdateFailed.ErrorCode()))
	assert.Equal(t, "Failed to update profile: backend unavailable", appMessage(t, err))
	fx.records.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, fx.notifier.ofType(entity.SessionEventProfileUpdated))

	cached, _ := fx.cache.Get("uid-1")
	assert.Equal(t, storedPhoto, cached.PhotoURL, "completed steps are not reflected in the cache")
}

func TestProfileService_RemoveAvatar_GeneratedReference(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	session := testSession()
	fx.records.EXPECT().FindByUID(mock.Anything, "uid-1").Return(cachedRecord(generatedPhoto), nil)

	fresh := "https://ui-avatars.com/api/?name=Ann&background=0f0f0f&color=fff&size=200"
	fx.avatars.EXPECT().Generate("Ann").Return(fresh)
	fx.identity.EXPECT().UpdateProfile(ctx, session, mock.MatchedBy(photoIs(fresh))).Return(nil)
	fx.records.EXPECT().Update(ctx, "uid-1", mock.MatchedBy(recordPhotoIs(fresh))).Return(nil)

	view, err := fx.service.RemoveAvatar(ctx, session)

	require.NoError(t, err)
	assert.Equal(t, fresh, view.AvatarURL)
	assert.True(t, view.IsDefaultAvatar)
	fx.store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProfileService_RemoveAvatar_CustomUpload(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	session := testSession()
	fx.records.EXPECT().FindByUID(mock.Anything, "uid-1").Return(cachedRecord(storedPhoto), nil)

	mock.InOrder(
		fx.store.EXPECT().Delete(ctx, storedPhoto).Return(service.ErrObjectNotFound).Call,
		fx.identity.EXPECT().UpdateProfile(ctx, session, mock.MatchedBy(photoIs(generatedPhoto))).Return(nil).Call,
		fx.records.EXPECT().Update(ctx, "uid-1", mock.MatchedBy(recordPhotoIs(generatedPhoto))).Return(nil).Call,
	)
	fx.avatars.EXPECT().Generate("Ann").Return(generatedPhoto)

	_, err := fx.service.RemoveAvatar(ctx, session)

	require.NoError(t, err)
	assert.Empty(t, fx.metrics.steps, "an already missing object is not a failure")
}

func TestProfileService_DeleteAccount_Gates(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	session := testSession()

	_, err := fx.service.DeleteAccount(ctx, session, &usecase.DeleteAccountInput{Confirmed: false, Confirmation: "ann@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrDeletionCancelled)

	_, err = fx.service.DeleteAccount(ctx, session, &usecase.DeleteAccountInput{Confirmed: true, Confirmation: "DELETE"})
	assert.ErrorIs(t, err, domainerrors.ErrDeletionChallengeMismatch)
	assert.Equal(t, "Account deletion cancelled. You must type your email exactly.", appMessage(t, err))

	_, err = fx.service.DeleteAccount(ctx, session, &usecase.DeleteAccountInput{Confirmed: true, Confirmation: "ANN@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrDeletionChallengeMismatch)

	fx.records.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	fx.identity.AssertNotCalled(t, "DeleteAccount", mock.Anything, mock.Anything)
}

func TestProfileService_DeleteAccount_RemovesEverythingInOrder(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	session := testSession()
	fx.records.EXPECT().FindByUID(mock.Anything, "uid-1").Return(cachedRecord(storedPhoto), nil)

	mock.InOrder(
		fx.store.EXPECT().Delete(ctx, storedPhoto).Return(nil).Call,
		fx.records.EXPECT().Delete(ctx, "uid-1").Return(nil).Call,
		fx.recipes.EXPECT().DeleteByUserID(ctx, "uid-1").Return(3, nil).Call,
		fx.identity.EXPECT().DeleteAccount(ctx, session).Return(nil).Call,
	)

	output, err := fx.service.DeleteAccount(ctx, session, &usecase.DeleteAccountInput{Confirmed: true, Confirmation: " ann@example.com "})

	require.NoError(t, err)
	assert.Equal(t, "Account deleted successfully. Redirecting...", output.Message)
	assert.Equal(t, "/landing.html", output.Redirect)
	_, cached := fx.cache.Get("uid-1")
	assert.False(t, cached)
	assert.Len(t, fx.notifier.ofType(entity.SessionEventAccountDeleted), 1)
	fx.publisher.AssertCalled(t, "PublishAccountEvent", ctx, mock.MatchedBy(func(event *entity.AccountEvent) bool {
		return event.Type == entity.AccountEventDeleted && event.PhotoURL == storedPhoto
	}))
}

func TestProfileService_DeleteAccount_RetryAfterStaleSession(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	session := testSession()

	stale := entity.NewIdentityError(entity.IdentityErrRequiresRecentLogin, "", nil)
	fx.records.EXPECT().FindByUID(ctx, "uid-1").Return(cachedRecord(""), nil).Once()
	fx.records.EXPECT().Delete(ctx, "uid-1").Return(nil).Times(2)
	fx.recipes.EXPECT().DeleteByUserID(ctx, "uid-1").Return(3, nil).Once()
	fx.identity.EXPECT().DeleteAccount(ctx, session).Return(stale).Once()

	_, err := fx.service.DeleteAccount(ctx, session, &usecase.DeleteAccountInput{Confirmed: true, Confirmation: "ann@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrRequiresRecentLogin)
	assert.Equal(t, "For security, please logout and login again before deleting your account", appMessage(t, err))

	// After a fresh login the record and recipes are already gone.
	fx.records.EXPECT().FindByUID(ctx, "uid-1").Return(nil, repository.ErrUserRecordNotFound).Once()
	fx.recipes.EXPECT().DeleteByUserID(ctx, "uid-1").Return(0, nil).Once()
	fx.identity.EXPECT().DeleteAccount(ctx, session).Return(nil).Once()

	output, err := fx.service.DeleteAccount(ctx, session, &usecase.DeleteAccountInput{Confirmed: true, Confirmation: "ann@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "/landing.html", output.Redirect)
	fx.store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProfileService_DeleteAccount_FallsBackToCachedPhoto(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	session := testSession()
	fx.cache.Put(cachedRecord(storedPhoto))

	fx.records.EXPECT().FindByUID(ctx, "uid-1").Return(nil, errors.New("unavailable"))
	fx.store.EXPECT().Delete(ctx, storedPhoto).Return(nil)
	fx.records.EXPECT().Delete(ctx, "uid-1").Return(nil)
	fx.recipes.EXPECT().DeleteByUserID(ctx, "uid-1").Return(0, nil)
	fx.identity.EXPECT().DeleteAccount(ctx, session).Return(nil)

	_, err := fx.service.DeleteAccount(ctx, session, &usecase.DeleteAccountInput{Confirmed: true, Confirmation: "ann@example.com"})

	require.NoError(t, err)
	assert.Equal(t, []string{"delete_account/read_record"}, fx.metrics.steps)
}

func TestProfileService_DeleteAccount_RecipeFailure(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	session := testSession()
	fx.records.EXPECT().FindByUID(mock.Anything, "uid-1").Return(cachedRecord(""), nil)

	fx.records.EXPECT().Delete(ctx, "uid-1").Return(nil)
	fx.recipes.EXPECT().DeleteByUserID(ctx, "uid-1").Return(0, errors.New("quota exhausted"))

	_, err := fx.service.DeleteAccount(ctx, session, &usecase.DeleteAccountInput{Confirmed: true, Confirmation: "ann@example.com"})

	require.Error(t, err)
	assert.Equal(t, "Failed to delete account: failed to delete recipes: quota exhausted", appMessage(t, err))
	fx.identity.AssertNotCalled(t, "DeleteAccount", mock.Anything, mock.Anything)
}
