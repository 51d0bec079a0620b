package local

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const defaultLimiterCleanupInterval = 5 * time.Minute

// emailLimiter is the failed attempt bucket of one email and when it was last touched.
type emailLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// loginLimiter throttles failed sign-in attempts per email.
// A successful sign-in forgets the email's history. Entries idle for twice
// the cleanup interval are dropped by the cleanup loop.
type loginLimiter struct {
	mu              sync.Mutex
	limit           rate.Limit
	burst           int
	cleanupInterval time.Duration
	limiters        map[string]*emailLimiter
	now             func() time.Time

	stopOnce sync.Once
	stopCh   chan struct{}
}

func newLoginLimiter(perMinute float64, burst int, cleanupInterval time.Duration) *loginLimiter {
	if perMinute <= 0 {
		perMinute = 5
	}
	if burst <= 0 {
		burst = 5
	}
	if cleanupInterval <= 0 {
		cleanupInterval = defaultLimiterCleanupInterval
	}

	return &loginLimiter{
		limit:           rate.Limit(perMinute / 60),
		burst:           burst,
		cleanupInterval: cleanupInterval,
		limiters:        make(map[string]*emailLimiter),
		now:             time.Now,
		stopCh:          make(chan struct{}),
	}
}

// Blocked reports whether email has exhausted its failed attempts.
func (l *loginLimiter) Blocked(email string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.limiters[email]
	if !ok {
		return false
	}
	now := l.now()
	entry.lastAccess = now

	return entry.limiter.TokensAt(now) < 1
}

// Fail records a failed attempt for email.
func (l *loginLimiter) Fail(email string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.limiters[email]
	if !ok {
		entry = &emailLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[email] = entry
	}
	entry.lastAccess = now
	entry.limiter.AllowN(now, 1)
}

// Reset forgets the failed attempts of email.
func (l *loginLimiter) Reset(email string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.limiters, email)
}

// Len reports how many emails are tracked.
func (l *loginLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.limiters)
}

// Start runs the cleanup loop until Stop is called.
func (l *loginLimiter) Start() {
	go l.cleanupLoop()
}

// Stop ends the cleanup loop. It is safe to call more than once.
func (l *loginLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}

func (l *loginLimiter) cleanupLoop() {
	ticker := time.NewTicker(l.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup()
		case <-l.stopCh:
			return
		}
	}
}

// cleanup drops the entries not touched for twice the cleanup interval.
func (l *loginLimiter) cleanup() {
	ttl := l.cleanupInterval * 2
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for email, entry := range l.limiters {
		if now.Sub(entry.lastAccess) > ttl {
			delete(l.limiters, email)
		}
	}
}
