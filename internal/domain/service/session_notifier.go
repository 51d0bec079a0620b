package service

import "recipebox/internal/domain/entity"

// Subscription is a cancellable stream of session events for one identity.
type Subscription interface {
	Events() <-chan entity.SessionEvent

	// Cancel detaches the subscription and closes Events. It is safe to call more than once.
	Cancel()
}

// SessionNotifier fans session events out to the open pages of an identity.
type SessionNotifier interface {
	Subscribe(uid string) Subscription
	Publish(event entity.SessionEvent)
}
