package service

import (
	"context"

	"recipebox/internal/domain/entity"
)

// EventPublisher publishes account lifecycle events to other services.
type EventPublisher interface {
	PublishAccountEvent(ctx context.Context, event *entity.AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
