package impl

import (
	"context"
	"testing"

	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/errors"
	mockRepo "recipebox/internal/mocks/repository"
	mockService "recipebox/internal/mocks/service"
	"recipebox/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// settingsServiceFixtures holds all test dependencies for settings service tests.
type settingsServiceFixtures struct {
	service   usecase.SettingsUsecase
	identity  *mockService.MockIdentityProvider
	records   *mockRepo.MockUserRecordRepository
	recipes   *mockRepo.MockRecipeRepository
	publisher *mockService.MockEventPublisher
	cache     *RecordCache
	notifier  *recordingNotifier
	metrics   *countingMetrics
}

func createTestSettingsService(t *testing.T) settingsServiceFixtures {
	fx := settingsServiceFixtures{
		identity:  mockService.NewMockIdentityProvider(t),
		records:   mockRepo.NewMockUserRecordRepository(t),
		recipes:   mockRepo.NewMockRecipeRepository(t),
		publisher: mockService.NewMockEventPublisher(t),
		cache:     NewRecordCache(),
		notifier:  &recordingNotifier{},
		metrics:   newCountingMetrics(),
	}
	fx.service = NewSettingsService(SettingsServiceParams{
		Config:    newTestConfig(),
		Identity:  fx.identity,
		Records:   fx.records,
		Recipes:   fx.recipes,
		Cache:     fx.cache,
		Publisher: fx.publisher,
		Notifier:  fx.notifier,
		Metrics:   fx.metrics,
		Logger:    discardLogger(),
	})

	return fx
}

func TestSettingsService_ChangePassword_LocalChecks(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.ChangePasswordInput
		want  *domainerrors.BaseError
	}{
		{
			name:  "mismatch is checked first",
			input: usecase.ChangePasswordInput{CurrentPassword: "abc", NewPassword: "abc", ConfirmPassword: "abd"},
			want:  domainerrors.ErrNewPasswordMismatch,
		},
		{
			name:  "length is checked before sameness",
			input: usecase.ChangePasswordInput{CurrentPassword: "abc", NewPassword: "abc", ConfirmPassword: "abc"},
			want:  domainerrors.ErrNewPasswordTooShort,
		},
		{
			name:  "new password must differ",
			input: usecase.ChangePasswordInput{CurrentPassword: "secret1", NewPassword: "secret1", ConfirmPassword: "secret1"},
			want:  domainerrors.ErrNewPasswordUnchanged,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSettingsService(t)

			output, err := fx.service.ChangePassword(context.Background(), testSession(), &tt.input)

			assert.Nil(t, output)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.want.Message(), appMessage(t, err))
			fx.identity.AssertNotCalled(t, "Reauthenticate", mock.Anything, mock.Anything, mock.Anything)
			fx.identity.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSettingsService_ChangePassword_Success(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()
	session := testSession()
	reauthed := &entity.Session{UID: "uid-1", IDToken: "token-2"}
	renewed := &entity.Session{UID: "uid-1", IDToken: "token-3"}

	mock.InOrder(
		fx.identity.EXPECT().Reauthenticate(ctx, session, "secret1").Return(reauthed, nil).Call,
		fx.identity.EXPECT().UpdatePassword(ctx, reauthed, "secret2").Return(renewed, nil).Call,
	)

	output, err := fx.service.ChangePassword(ctx, session, &usecase.ChangePasswordInput{
		CurrentPassword: "secret1", NewPassword: "secret2", ConfirmPassword: "secret2",
	})

	require.NoError(t, err)
	assert.Equal(t, "Password changed successfully!", output.Message)
	assert.Same(t, renewed, output.Session)
}

func TestSettingsService_ChangePassword_ProviderErrors(t *testing.T) {
	input := &usecase.ChangePasswordInput{CurrentPassword: "secret1", NewPassword: "secret2", ConfirmPassword: "secret2"}

	t.Run("wrong current password", func(t *testing.T) {
		fx := createTestSettingsService(t)
		fx.identity.EXPECT().Reauthenticate(mock.Anything, mock.Anything, "secret1").
			Return(nil, entity.NewIdentityError(entity.IdentityErrWrongPassword, "", nil))

		_, err := fx.service.ChangePassword(context.Background(), testSession(), input)

		assert.ErrorIs(t, err, domainerrors.ErrCurrentPasswordIncorrect)
		assert.Equal(t, "Current password is incorrect", appMessage(t, err))
	})

	t.Run("other failures carry the provider message", func(t *testing.T) {
		fx := createTestSettingsService(t)
		fx.identity.EXPECT().Reauthenticate(mock.Anything, mock.Anything, "secret1").Return(testSession(), nil)
		fx.identity.EXPECT().UpdatePassword(mock.Anything, mock.Anything, "secret2").
			Return(nil, entity.NewIdentityError(entity.IdentityErrTooManyRequests, "Too many requests, try later", nil))

		_, err := fx.service.ChangePassword(context.Background(), testSession(), input)

		assert.True(t, domainerrors.HasCode(err, domainerrors.ErrPasswordChangeFailed.ErrorCode()))
		assert.Equal(t, "Too many requests, try later", appMessage(t, err))
	})
}

func TestSettingsService_DeleteAccount_NeedsConfirmation(t *testing.T) {
	fx := createTestSettingsService(t)

	_, err := fx.service.DeleteAccount(context.Background(), testSession(), &usecase.SettingsDeleteAccountInput{})

	assert.ErrorIs(t, err, domainerrors.ErrDeletionCancelled)
	fx.identity.AssertNotCalled(t, "DeleteAccount", mock.Anything, mock.Anything)
}

func TestSettingsService_DeleteAccount_IdentityFirst(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()
	session := testSession()
	fx.cache.Put(cachedRecord(generatedPhoto))

	mock.InOrder(
		fx.identity.EXPECT().DeleteAccount(ctx, session).Return(nil).Call,
		fx.records.EXPECT().FindByUID(ctx, "uid-1").Return(cachedRecord(storedPhoto), nil).Call,
		fx.records.EXPECT().Delete(ctx, "uid-1").Return(errors.New("unavailable")).Call,
		fx.recipes.EXPECT().DeleteByUserID(ctx, "uid-1").Return(2, nil).Call,
	)
	fx.publisher.EXPECT().PublishAccountEvent(ctx, mock.MatchedBy(func(event *entity.AccountEvent) bool {
		return event.Type == entity.AccountEventDeleted && event.PhotoURL == storedPhoto
	})).Return(nil)

	output, err := fx.service.DeleteAccount(ctx, session, &usecase.SettingsDeleteAccountInput{Confirmed: true})

	require.NoError(t, err)
	assert.True(t, output.Deleted)
	assert.Equal(t, "/landing.html", output.Redirect)
	assert.Equal(t, []string{"settings_delete_account/delete_record"}, fx.metrics.steps)
	assert.Equal(t, []entity.SessionEventType{entity.SessionEventAccountDeleted}, fx.notifier.types())
}

func TestSettingsService_DeleteAccount_StaleSessionKeepsData(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()
	session := testSession()

	fx.identity.EXPECT().DeleteAccount(ctx, session).
		Return(entity.NewIdentityError(entity.IdentityErrRequiresRecentLogin, "", nil))
	fx.identity.EXPECT().SignOut(ctx, session).Return(nil)

	output, err := fx.service.DeleteAccount(ctx, session, &usecase.SettingsDeleteAccountInput{Confirmed: true})

	require.NoError(t, err)
	assert.False(t, output.Deleted)
	assert.Equal(t, domainerrors.ErrRequiresRecentLogin.Message(), output.Message)
	assert.Equal(t, "/landing.html", output.Redirect)
	fx.records.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	fx.recipes.AssertNotCalled(t, "DeleteByUserID", mock.Anything, mock.Anything)
	assert.Equal(t, []entity.SessionEventType{entity.SessionEventSignedOut}, fx.notifier.types())
}

func TestSettingsService_DeleteAccount_OtherFailure(t *testing.T) {
	fx := createTestSettingsService(t)
	fx.identity.EXPECT().DeleteAccount(mock.Anything, mock.Anything).
		Return(entity.NewIdentityError(entity.IdentityErrInternal, "backend unavailable", nil))

	_, err := fx.service.DeleteAccount(context.Background(), testSession(), &usecase.SettingsDeleteAccountInput{Confirmed: true})

	assert.Equal(t, "Failed to delete account: backend unavailable", appMessage(t, err))
	fx.records.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
