package usecase

import (
	"context"
	"errors"

	"recipebox/internal/domain/entity"
)

// ErrInvalidAccountEvent marks an event that can never be processed; redelivering it is pointless.
var ErrInvalidAccountEvent = errors.New("invalid account event")

// SweeperUsecase removes avatar objects no user record points at any more.
type SweeperUsecase interface {
	// HandleAccountEvent sweeps the avatars of the event's identity and returns how many were removed.
	HandleAccountEvent(ctx context.Context, event *entity.AccountEvent) (int, error)
}
