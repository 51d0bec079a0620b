package impl

import (
	"context"
	"log/slog"

	"recipebox/config"
	deliverycontext "recipebox/internal/delivery/context"
	"recipebox/internal/domain/entity"
	"recipebox/internal/domain/repository"
	"recipebox/internal/domain/service"
	"recipebox/internal/errors"
	"recipebox/internal/usecase"

	"go.uber.org/fx"
)

// sweeperService implements the SweeperUsecase interface.
type sweeperService struct {
	store      service.ObjectStore
	records    repository.UserRecordRepository
	metrics    service.AccountMetrics
	pathPrefix string
	logger     *slog.Logger
}

// SweeperServiceParams holds dependencies for SweeperService, injected by Fx.
type SweeperServiceParams struct {
	fx.In

	Config  *config.Config
	Store   service.ObjectStore
	Records repository.UserRecordRepository
	Metrics service.AccountMetrics
	Logger  *slog.Logger
}

// NewSweeperService is the constructor for sweeperService.
func NewSweeperService(params SweeperServiceParams) usecase.SweeperUsecase {
	srv := &sweeperService{
		store:   params.Store,
		records: params.Records,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
	if params.Config.Avatar != nil {
		srv.pathPrefix = params.Config.Avatar.PathPrefix
	}

	return srv
}

// HandleAccountEvent deletes the avatar objects of event.UID that nothing points at.
// Objects uploaded at or after the event are kept, since a later update may still be writing its record.
func (srv *sweeperService) HandleAccountEvent(ctx context.Context, event *entity.AccountEvent) (int, error) {
	if event == nil || event.UID == "" {
		return 0, errors.Wrap(usecase.ErrInvalidAccountEvent, "missing uid")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(
		slog.String("event_type", string(event.Type)),
		slog.String("uid", event.UID),
	)

	var current string
	switch event.Type {
	case entity.AccountEventDeleted:
	case entity.AccountEventProfileUpdated, entity.AccountEventAvatarRemoved:
		record, err := srv.records.FindByUID(ctx, event.UID)
		switch {
		case errors.Is(err, repository.ErrUserRecordNotFound):
			logger.Debug("No user record, sweeping every avatar")
		case err != nil:
			return 0, errors.Wrap(err, "failed to get user record")
		case srv.store.Owns(record.PhotoURL):
			current, _ = srv.store.ObjectPath(record.PhotoURL)
		}
	default:
		logger.Debug("Nothing to sweep for event")

		return 0, nil
	}

	keep := func(objectPath string) bool {
		if current != "" && objectPath == current {
			return true
		}
		uploadedAt, ok := entity.AvatarUploadedAt(objectPath, srv.pathPrefix, event.UID)
		if !ok {
			return true
		}

		return !uploadedAt.Before(event.OccurredAt)
	}

	removed, err := srv.store.DeleteByPrefix(ctx, entity.AvatarObjectPrefix(srv.pathPrefix, event.UID), keep)
	srv.metrics.RecordAvatarsSwept(removed)
	if err != nil {
		return removed, errors.Wrap(err, "failed to sweep avatars")
	}
	if removed > 0 {
		logger.Info("Orphaned avatars removed", slog.Int("count", removed))
	}

	return removed, nil
}
