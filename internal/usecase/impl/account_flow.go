package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "recipebox/internal/delivery/context"
	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/service"
	"recipebox/internal/errors"

	"github.com/google/uuid"
)

const outcomeSuccess = "success"

// accountFlow bundles the sinks every account operation reports to.
type accountFlow struct {
	publisher service.EventPublisher
	notifier  service.SessionNotifier
	metrics   service.AccountMetrics
	logger    *slog.Logger
	now       func() time.Time
}

func (f *accountFlow) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, f.logger)
}

// notify pushes a session event to the open pages of uid.
func (f *accountFlow) notify(eventType entity.SessionEventType, uid, message string) {
	f.notifier.Publish(entity.SessionEvent{
		Type:    eventType,
		UID:     uid,
		Message: message,
		At:      f.now(),
	})
}

// publish sends an account event to other services. Failures are logged and counted only.
func (f *accountFlow) publish(ctx context.Context, operation string, eventType entity.AccountEventType, uid, email, photoURL string) {
	event := &entity.AccountEvent{
		EventID:    uuid.New().String(),
		Type:       eventType,
		UID:        uid,
		Email:      email,
		PhotoURL:   photoURL,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: f.now(),
	}
	if err := f.publisher.PublishAccountEvent(ctx, event); err != nil {
		f.log(ctx).Warn("Failed to publish account event",
			slog.String("event_type", string(eventType)),
			slog.String("uid", uid),
			slog.Any("error", err),
		)
		f.metrics.RecordStepFailure(operation, "publish_event")
	}
}

// stepFailed logs and counts a best-effort step that did not stop the operation.
func (f *accountFlow) stepFailed(ctx context.Context, operation, step, uid string, err error) {
	f.log(ctx).Warn("Best-effort step failed",
		slog.String("operation", operation),
		slog.String("step", step),
		slog.String("uid", uid),
		slog.Any("error", err),
	)
	f.metrics.RecordStepFailure(operation, step)
}

// finish counts the outcome of operation and returns err unchanged.
func (f *accountFlow) finish(operation string, err error) error {
	f.metrics.RecordOperation(operation, outcomeOf(err))

	return err
}

func outcomeOf(err error) string {
	if err == nil {
		return outcomeSuccess
	}
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.ErrorCode()
	}

	return "internal_error"
}
