package local

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"recipebox/config"
	"recipebox/internal/domain/entity"
	"recipebox/internal/domain/repository"
	"recipebox/internal/infra/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memoryCredentials struct {
	mu   sync.Mutex
	byID map[string]*entity.Credential
}

func newMemoryCredentials() *memoryCredentials {
	return &memoryCredentials{byID: make(map[string]*entity.Credential)}
}

func (m *memoryCredentials) Create(_ context.Context, c *entity.Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == c.Email {
			return repository.ErrCredentialEmailTaken
		}
	}
	stored := *c
	m.byID[c.UID] = &stored

	return nil
}

func (m *memoryCredentials) FindByEmail(_ context.Context, email string) (*entity.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.byID {
		if c.Email == email {
			found := *c

			return &found, nil
		}
	}

	return nil, repository.ErrCredentialNotFound
}

func (m *memoryCredentials) FindByUID(_ context.Context, uid string) (*entity.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[uid]
	if !ok {
		return nil, repository.ErrCredentialNotFound
	}
	found := *c

	return &found, nil
}

func (m *memoryCredentials) UpdateProfile(_ context.Context, uid string, update entity.ProfileUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[uid]
	if !ok {
		return repository.ErrCredentialNotFound
	}
	if update.DisplayName != nil {
		c.DisplayName = *update.DisplayName
	}
	if update.PhotoURL != nil {
		c.PhotoURL = *update.PhotoURL
	}

	return nil
}

func (m *memoryCredentials) UpdatePasswordHash(_ context.Context, uid, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[uid]
	if !ok {
		return repository.ErrCredentialNotFound
	}
	c.PasswordHash = hash

	return nil
}

func (m *memoryCredentials) RevokeTokens(_ context.Context, uid string, validAfter time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[uid]
	if !ok {
		return repository.ErrCredentialNotFound
	}
	c.TokensValidAfter = validAfter

	return nil
}

func (m *memoryCredentials) Delete(_ context.Context, uid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, uid)

	return nil
}

// memoryTransactions runs the callback directly against the in-memory credentials.
type memoryTransactions struct {
	credentials *memoryCredentials
}

func (m memoryTransactions) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m memoryTransactions) NewCredentialRepository() repository.CredentialRepository {
	return m.credentials
}

func newTestProvider(t *testing.T) (*identityProvider, *memoryCredentials) {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{
		BcryptCost:        bcrypt.MinCost,
		RecentLoginWindow: 5 * time.Minute,
	}}
	cfg.Auth.LoginRateLimit.PerMinute = 1
	cfg.Auth.LoginRateLimit.Burst = 3
	cfg.SecretKey.Access = "local_identity_test_secret_that_is_long_enough"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	credentials := newMemoryCredentials()
	provider := NewIdentityProvider(Params{
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Credentials:  credentials,
		Transactions: memoryTransactions{credentials: credentials},
		Hasher:       auth.NewBcryptHasher(cfg),
		Tokens:       tokens,
	}).(*identityProvider)

	return provider, credentials
}

func TestCreateAccountAndSignIn(t *testing.T) {
	p, _ := newTestProvider(t)
	ctx := context.Background()

	created, err := p.CreateAccount(ctx, "Ann@Example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, created.UID)
	assert.Equal(t, "ann@example.com", created.Email)
	assert.NotEmpty(t, created.IDToken)

	signedIn, err := p.SignIn(ctx, "ann@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.UID, signedIn.UID)

	verified, err := p.VerifySession(ctx, signedIn.IDToken)
	require.NoError(t, err)
	assert.Equal(t, created.UID, verified.UID)
}

func TestCreateAccount_Failures(t *testing.T) {
	p, _ := newTestProvider(t)
	ctx := context.Background()

	_, err := p.CreateAccount(ctx, "not-an-email", "secret1")
	assert.Equal(t, entity.IdentityErrInvalidEmail, entity.IdentityErrorCodeOf(err))

	_, err = p.CreateAccount(ctx, "ann@example.com", "12345")
	assert.Equal(t, entity.IdentityErrWeakPassword, entity.IdentityErrorCodeOf(err))

	_, err = p.CreateAccount(ctx, "ann@example.com", "secret1")
	require.NoError(t, err)
	_, err = p.CreateAccount(ctx, "ann@example.com", "secret2")
	assert.Equal(t, entity.IdentityErrEmailAlreadyInUse, entity.IdentityErrorCodeOf(err))
}

func TestSignIn_Failures(t *testing.T) {
	p, credentials := newTestProvider(t)
	ctx := context.Background()

	_, err := p.SignIn(ctx, "nobody@example.com", "secret1")
	assert.Equal(t, entity.IdentityErrUserNotFound, entity.IdentityErrorCodeOf(err))

	created, err := p.CreateAccount(ctx, "ann@example.com", "secret1")
	require.NoError(t, err)

	_, err = p.SignIn(ctx, "ann@example.com", "wrong-password")
	assert.Equal(t, entity.IdentityErrWrongPassword, entity.IdentityErrorCodeOf(err))

	credentials.byID[created.UID].Disabled = true
	_, err = p.SignIn(ctx, "ann@example.com", "secret1")
	assert.Equal(t, entity.IdentityErrUserDisabled, entity.IdentityErrorCodeOf(err))
}

func TestSignIn_TooManyAttempts(t *testing.T) {
	p, _ := newTestProvider(t)
	ctx := context.Background()

	_, err := p.CreateAccount(ctx, "ann@example.com", "secret1")
	require.NoError(t, err)

	for range 3 {
		_, err = p.SignIn(ctx, "ann@example.com", "wrong-password")
		assert.Equal(t, entity.IdentityErrWrongPassword, entity.IdentityErrorCodeOf(err))
	}

	_, err = p.SignIn(ctx, "ann@example.com", "secret1")
	assert.Equal(t, entity.IdentityErrTooManyRequests, entity.IdentityErrorCodeOf(err))
}

func TestSignOut_RevokesEarlierTokens(t *testing.T) {
	p, _ := newTestProvider(t)
	ctx := context.Background()

	session, err := p.CreateAccount(ctx, "ann@example.com", "secret1")
	require.NoError(t, err)

	p.now = func() time.Time { return time.Now().Add(time.Second) }
	require.NoError(t, p.SignOut(ctx, session))

	_, err = p.VerifySession(ctx, session.IDToken)
	assert.Equal(t, entity.IdentityErrSessionRevoked, entity.IdentityErrorCodeOf(err))
}

func TestSignOut_EndsEveryDevice(t *testing.T) {
	p, _ := newTestProvider(t)
	ctx := context.Background()

	_, err := p.CreateAccount(ctx, "ann@example.com", "secret1")
	require.NoError(t, err)
	laptop, err := p.SignIn(ctx, "ann@example.com", "secret1")
	require.NoError(t, err)
	phone, err := p.SignIn(ctx, "ann@example.com", "secret1")
	require.NoError(t, err)

	p.now = func() time.Time { return time.Now().Add(time.Second) }
	require.NoError(t, p.SignOut(ctx, laptop))

	for _, session := range []*entity.Session{laptop, phone} {
		_, err = p.VerifySession(ctx, session.IDToken)
		assert.Equal(t, entity.IdentityErrSessionRevoked, entity.IdentityErrorCodeOf(err))
	}
}

func TestVerifySession_Garbage(t *testing.T) {
	p, _ := newTestProvider(t)

	_, err := p.VerifySession(context.Background(), "garbage")
	assert.Equal(t, entity.IdentityErrInvalidSession, entity.IdentityErrorCodeOf(err))
}

func TestUpdatePasswordAndReauthenticate(t *testing.T) {
	p, _ := newTestProvider(t)
	ctx := context.Background()

	session, err := p.CreateAccount(ctx, "ann@example.com", "secret1")
	require.NoError(t, err)

	_, err = p.Reauthenticate(ctx, session, "nope")
	assert.Equal(t, entity.IdentityErrWrongPassword, entity.IdentityErrorCodeOf(err))

	renewed, err := p.Reauthenticate(ctx, session, "secret1")
	require.NoError(t, err)

	_, err = p.UpdatePassword(ctx, renewed, "12345")
	assert.Equal(t, entity.IdentityErrWeakPassword, entity.IdentityErrorCodeOf(err))

	changed, err := p.UpdatePassword(ctx, renewed, "secret2")
	require.NoError(t, err)

	_, err = p.VerifySession(ctx, changed.IDToken)
	assert.NoError(t, err)

	_, err = p.SignIn(ctx, "ann@example.com", "secret1")
	assert.Equal(t, entity.IdentityErrWrongPassword, entity.IdentityErrorCodeOf(err))
	_, err = p.SignIn(ctx, "ann@example.com", "secret2")
	assert.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	p, credentials := newTestProvider(t)
	ctx := context.Background()

	session, err := p.CreateAccount(ctx, "ann@example.com", "secret1")
	require.NoError(t, err)

	name := "Ann"
	require.NoError(t, p.UpdateProfile(ctx, session, entity.ProfileUpdate{DisplayName: &name}))
	assert.Equal(t, "Ann", credentials.byID[session.UID].DisplayName)
	assert.Empty(t, credentials.byID[session.UID].PhotoURL)
}

func TestDeleteAccount_RequiresRecentLogin(t *testing.T) {
	p, credentials := newTestProvider(t)
	ctx := context.Background()

	session, err := p.CreateAccount(ctx, "ann@example.com", "secret1")
	require.NoError(t, err)

	stale := *session
	stale.AuthTime = time.Now().Add(-time.Hour)
	err = p.DeleteAccount(ctx, &stale)
	assert.Equal(t, entity.IdentityErrRequiresRecentLogin, entity.IdentityErrorCodeOf(err))
	assert.Contains(t, credentials.byID, session.UID)

	require.NoError(t, p.DeleteAccount(ctx, session))
	assert.NotContains(t, credentials.byID, session.UID)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ann@example.com", normalizeEmail("  Ann@Example.COM "))
}
