// Package sessionhub fans session events out to the pages an identity has open.
package sessionhub

import (
	"log/slog"
	"sync"

	"recipebox/internal/domain/entity"
	"recipebox/internal/domain/service"
)

const subscriberBuffer = 16

// Hub is an in-process SessionNotifier. Slow subscribers miss events instead of blocking publishers.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[*subscription]struct{}
	logger *slog.Logger
}

// New creates an empty hub.
func New(logger *slog.Logger) *Hub {
	return &Hub{
		subs:   make(map[string]map[*subscription]struct{}),
		logger: logger,
	}
}

// NewNotifier exposes the hub as a service.SessionNotifier.
func NewNotifier(hub *Hub) service.SessionNotifier {
	return hub
}

type subscription struct {
	hub    *Hub
	uid    string
	events chan entity.SessionEvent
	once   sync.Once
}

func (s *subscription) Events() <-chan entity.SessionEvent {
	return s.events
}

func (s *subscription) Cancel() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()

		if subs, ok := s.hub.subs[s.uid]; ok {
			delete(subs, s)
			if len(subs) == 0 {
				delete(s.hub.subs, s.uid)
			}
		}
		close(s.events)
	})
}

func (h *Hub) Subscribe(uid string) service.Subscription {
	sub := &subscription{
		hub:    h,
		uid:    uid,
		events: make(chan entity.SessionEvent, subscriberBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs[uid] == nil {
		h.subs[uid] = make(map[*subscription]struct{})
	}
	h.subs[uid][sub] = struct{}{}

	return sub
}

func (h *Hub) Publish(event entity.SessionEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[event.UID] {
		select {
		case sub.events <- event:
		default:
			h.logger.Warn("Session event dropped for slow subscriber",
				slog.String("uid", event.UID),
				slog.String("type", string(event.Type)),
			)
		}
	}
}

// Subscribers reports how many subscriptions uid currently has.
func (h *Hub) Subscribers(uid string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs[uid])
}
