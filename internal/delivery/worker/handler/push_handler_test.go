package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"recipebox/config"
	"recipebox/internal/domain/constants"
	"recipebox/internal/domain/entity"
	"recipebox/internal/errors"
	"recipebox/internal/infra/pubsub"
	mockUsecase "recipebox/internal/mocks/usecase"
	"recipebox/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockSweeperUsecase) {
	sweeper := mockUsecase.NewMockSweeperUsecase(t)

	return NewPushHandler(PushHandlerParams{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Sweeper: sweeper,
	}), sweeper
}

func pushBody(t *testing.T, payload string, attributes map[string]string) string {
	t.Helper()

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString([]byte(payload))
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func push(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlesAccountEvent(t *testing.T) {
	h, sweeper := newTestPushHandler(t, &config.Config{})
	sweeper.EXPECT().HandleAccountEvent(mock.Anything, mock.MatchedBy(func(event *entity.AccountEvent) bool {
		return event.Type == entity.AccountEventDeleted && event.UID == "uid-1" &&
			event.EventID == "msg-1" && event.RequestID == "req-1"
	})).Return(3, nil)

	rec := push(h, pushBody(t, `{"type":"account.deleted","uid":"uid-1"}`, map[string]string{"request_id": "req-1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_Acknowledgement(t *testing.T) {
	tests := []struct {
		name       string
		sweepErr   error
		wantStatus int
	}{
		{
			name:       "invalid events are dropped",
			sweepErr:   errors.Wrap(usecase.ErrInvalidAccountEvent, "missing uid"),
			wantStatus: http.StatusOK,
		},
		{
			name:       "store failures are redelivered",
			sweepErr:   errors.New("bucket unavailable"),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, sweeper := newTestPushHandler(t, &config.Config{})
			sweeper.EXPECT().HandleAccountEvent(mock.Anything, mock.Anything).Return(0, tt.sweepErr)

			rec := push(h, pushBody(t, `{"type":"profile.updated","uid":"uid-1"}`, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	t.Run("body that is not a push message", func(t *testing.T) {
		h, sweeper := newTestPushHandler(t, &config.Config{})

		rec := push(h, `{"message":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		sweeper.AssertNotCalled(t, "HandleAccountEvent", mock.Anything, mock.Anything)
	})

	t.Run("undecodable payload is acknowledged", func(t *testing.T) {
		h, sweeper := newTestPushHandler(t, &config.Config{})

		rec := push(h, pushBody(t, `not json`, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		sweeper.AssertNotCalled(t, "HandleAccountEvent", mock.Anything, mock.Anything)
	})
}

func TestPushHandler_VerifiesGooglePushes(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	h, sweeper := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)
	h.verifyToken = func(*http.Request) error { return errors.New("bad token") }

	rec := push(h, pushBody(t, `{"type":"account.deleted","uid":"uid-1"}`, nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	sweeper.AssertNotCalled(t, "HandleAccountEvent", mock.Anything, mock.Anything)
}

func TestPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	h, _ := newTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}

func TestVerifyPubSubToken_RequiresBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.Error(t, verifyPubSubToken(req))

	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	assert.Error(t, verifyPubSubToken(req))
}
