package impl

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"recipebox/config"
	"recipebox/internal/domain/entity"
	"recipebox/internal/domain/service"
)

// recordingNotifier keeps every published session event.
type recordingNotifier struct {
	mu     sync.Mutex
	events []entity.SessionEvent
}

func (n *recordingNotifier) Subscribe(string) service.Subscription {
	return nil
}

func (n *recordingNotifier) Publish(event entity.SessionEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.events = append(n.events, event)
}

func (n *recordingNotifier) types() []entity.SessionEventType {
	n.mu.Lock()
	defer n.mu.Unlock()

	types := make([]entity.SessionEventType, 0, len(n.events))
	for _, event := range n.events {
		types = append(types, event.Type)
	}

	return types
}

func (n *recordingNotifier) ofType(eventType entity.SessionEventType) []entity.SessionEvent {
	n.mu.Lock()
	defer n.mu.Unlock()

	var matched []entity.SessionEvent
	for _, event := range n.events {
		if event.Type == eventType {
			matched = append(matched, event)
		}
	}

	return matched
}

// countingMetrics counts operation outcomes and step failures.
type countingMetrics struct {
	mu       sync.Mutex
	outcomes map[string]string
	steps    []string
	swept    int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{outcomes: make(map[string]string)}
}

func (m *countingMetrics) RecordOperation(operation, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.outcomes[operation] = outcome
}

func (m *countingMetrics) RecordStepFailure(operation, step string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.steps = append(m.steps, operation+"/"+step)
}

func (m *countingMetrics) RecordAvatarsSwept(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.swept += count
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			RecentLoginWindow:  5 * time.Minute,
			SwitchToLoginDelay: 1500 * time.Millisecond,
			LandingPath:        "/landing.html",
			MainPath:           "/index.html",
		},
		Avatar: &config.AvatarConfig{
			PathPrefix: "profile_images/",
			MaxBytes:   entity.MaxAvatarBytes,
		},
	}
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func testSession() *entity.Session {
	return &entity.Session{
		UID:         "uid-1",
		Email:       "ann@example.com",
		DisplayName: "Ann",
		IDToken:     "token-1",
		AuthTime:    time.Now(),
	}
}
