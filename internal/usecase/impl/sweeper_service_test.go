package impl

import (
	"context"
	"testing"
	"time"

	"recipebox/internal/domain/entity"
	"recipebox/internal/domain/repository"
	"recipebox/internal/errors"
	mockRepo "recipebox/internal/mocks/repository"
	mockService "recipebox/internal/mocks/service"
	"recipebox/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sweepPrefix = "profile_images/profile_uid-1_"

func createTestSweeperService(t *testing.T) (*sweeperService, *mockService.MockObjectStore, *mockRepo.MockUserRecordRepository, *countingMetrics) {
	store := mockService.NewMockObjectStore(t)
	records := mockRepo.NewMockUserRecordRepository(t)
	metrics := newCountingMetrics()
	srv := NewSweeperService(SweeperServiceParams{
		Config:  newTestConfig(),
		Store:   store,
		Records: records,
		Metrics: metrics,
		Logger:  discardLogger(),
	}).(*sweeperService)

	return srv, store, records, metrics
}

// sweepWith runs keep over candidates the way an object store would and reports the removed paths.
func sweepWith(candidates []string, removed *[]string) func(context.Context, string, func(string) bool) (int, error) {
	return func(_ context.Context, _ string, keep func(string) bool) (int, error) {
		for _, path := range candidates {
			if !keep(path) {
				*removed = append(*removed, path)
			}
		}

		return len(*removed), nil
	}
}

func TestSweeperService_ProfileUpdatedKeepsCurrentAndNewer(t *testing.T) {
	srv, store, records, metrics := createTestSweeperService(t)
	ctx := context.Background()
	occurred := time.UnixMilli(1772366400000)

	current := "profile_images/profile_uid-1_1772366399000.png"
	candidates := []string{
		"profile_images/profile_uid-1_1700000000000.png",
		current,
		"profile_images/profile_uid-1_1772366400500.jpg",
		"profile_images/profile_uid-1_extra_1600000000000.png",
	}

	records.EXPECT().FindByUID(ctx, "uid-1").Return(&entity.UserRecord{UID: "uid-1", PhotoURL: "https://storage.example.com/"+current}, nil)
	store.EXPECT().Owns("https://storage.example.com/" + current).Return(true)
	store.EXPECT().ObjectPath("https://storage.example.com/" + current).Return(current, true)

	var removed []string
	store.EXPECT().DeleteByPrefix(ctx, sweepPrefix, mock.Anything).RunAndReturn(sweepWith(candidates, &removed))

	count, err := srv.HandleAccountEvent(ctx, &entity.AccountEvent{
		Type: entity.AccountEventProfileUpdated, UID: "uid-1", OccurredAt: occurred,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"profile_images/profile_uid-1_1700000000000.png"}, removed)
	assert.Equal(t, 1, metrics.swept)
}

func TestSweeperService_AvatarRemovedWithGeneratedPhoto(t *testing.T) {
	srv, store, records, _ := createTestSweeperService(t)
	ctx := context.Background()

	records.EXPECT().FindByUID(ctx, "uid-1").Return(&entity.UserRecord{UID: "uid-1", PhotoURL: generatedPhoto}, nil)
	store.EXPECT().Owns(generatedPhoto).Return(false)

	var removed []string
	store.EXPECT().DeleteByPrefix(ctx, sweepPrefix, mock.Anything).
		RunAndReturn(sweepWith([]string{"profile_images/profile_uid-1_1700000000000.png"}, &removed))

	count, err := srv.HandleAccountEvent(ctx, &entity.AccountEvent{
		Type: entity.AccountEventAvatarRemoved, UID: "uid-1", OccurredAt: time.UnixMilli(1772366400000),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSweeperService_AccountDeletedSweepsEverything(t *testing.T) {
	srv, store, _, _ := createTestSweeperService(t)
	ctx := context.Background()

	candidates := []string{
		"profile_images/profile_uid-1_1700000000000.png",
		"profile_images/profile_uid-1_1772366399000.png",
	}
	var removed []string
	store.EXPECT().DeleteByPrefix(ctx, sweepPrefix, mock.Anything).RunAndReturn(sweepWith(candidates, &removed))

	count, err := srv.HandleAccountEvent(ctx, &entity.AccountEvent{
		Type: entity.AccountEventDeleted, UID: "uid-1", OccurredAt: time.UnixMilli(1772366400000),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, candidates, removed)
}

func TestSweeperService_MissingRecordSweepsOlderObjects(t *testing.T) {
	srv, store, records, _ := createTestSweeperService(t)
	ctx := context.Background()

	records.EXPECT().FindByUID(ctx, "uid-1").Return(nil, repository.ErrUserRecordNotFound)
	store.EXPECT().DeleteByPrefix(ctx, sweepPrefix, mock.Anything).Return(4, nil)

	count, err := srv.HandleAccountEvent(ctx, &entity.AccountEvent{Type: entity.AccountEventProfileUpdated, UID: "uid-1"})

	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestSweeperService_RecordReadFailureIsRetried(t *testing.T) {
	srv, store, records, _ := createTestSweeperService(t)

	records.EXPECT().FindByUID(mock.Anything, "uid-1").Return(nil, errors.New("unavailable"))

	_, err := srv.HandleAccountEvent(context.Background(), &entity.AccountEvent{Type: entity.AccountEventProfileUpdated, UID: "uid-1"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrInvalidAccountEvent)
	store.AssertNotCalled(t, "DeleteByPrefix", mock.Anything, mock.Anything, mock.Anything)
}

func TestSweeperService_IgnoresOtherEvents(t *testing.T) {
	srv, store, _, _ := createTestSweeperService(t)

	count, err := srv.HandleAccountEvent(context.Background(), &entity.AccountEvent{Type: entity.AccountEventCreated, UID: "uid-1"})

	require.NoError(t, err)
	assert.Zero(t, count)
	store.AssertNotCalled(t, "DeleteByPrefix", mock.Anything, mock.Anything, mock.Anything)
}

func TestSweeperService_RejectsEventWithoutUID(t *testing.T) {
	srv, _, _, _ := createTestSweeperService(t)

	_, err := srv.HandleAccountEvent(context.Background(), &entity.AccountEvent{Type: entity.AccountEventDeleted})

	assert.ErrorIs(t, err, usecase.ErrInvalidAccountEvent)
}
