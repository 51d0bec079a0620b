package local

import (
	"context"
	"testing"
	"time"

	"recipebox/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestLoginLimiter_BlocksAfterBurst(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := newLoginLimiter(5, 2, time.Minute)
	l.now = func() time.Time { return now }

	assert.False(t, l.Blocked("ann@example.com"))
	l.Fail("ann@example.com")
	assert.False(t, l.Blocked("ann@example.com"))
	l.Fail("ann@example.com")
	assert.True(t, l.Blocked("ann@example.com"))

	now = now.Add(13 * time.Second)
	assert.False(t, l.Blocked("ann@example.com"), "a token refills every twelve seconds")

	l.Reset("ann@example.com")
	assert.Zero(t, l.Len())
}

func TestLoginLimiter_CleanupDropsIdleEmails(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := newLoginLimiter(5, 5, time.Minute)
	l.now = func() time.Time { return now }

	l.Fail("idle@example.com")
	now = now.Add(90 * time.Second)
	l.Fail("active@example.com")

	now = now.Add(time.Minute)
	l.cleanup()

	assert.Equal(t, 1, l.Len())
	l.mu.Lock()
	_, kept := l.limiters["active@example.com"]
	l.mu.Unlock()
	assert.True(t, kept)
}

func TestLoginLimiter_StopIsIdempotent(t *testing.T) {
	l := newLoginLimiter(0, 0, 0)
	assert.Equal(t, defaultLimiterCleanupInterval, l.cleanupInterval)

	l.Start()
	l.Stop()
	l.Stop()

	select {
	case <-l.stopCh:
	default:
		t.Fatal("stop channel is not closed")
	}
}

func TestNewIdentityProvider_StopsCleanupWithLifecycle(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Auth: &config.AuthConfig{}}

	p := NewIdentityProvider(Params{Lc: lc, Config: cfg}).(*identityProvider)

	require.NoError(t, lc.Start(context.Background()))
	require.NoError(t, lc.Stop(context.Background()))

	select {
	case <-p.limiter.stopCh:
	default:
		t.Fatal("cleanup loop still running after stop")
	}
}
