package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"recipebox/internal/domain/entity"
	"recipebox/internal/infra/sessionhub"
	mockUsecase "recipebox/internal/mocks/usecase"
	"recipebox/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionHandler(t *testing.T, hub *sessionhub.Hub, auth *mockUsecase.MockAuthUsecase, origins ...string) *SessionHandler {
	cfg := newTestConfig()
	cfg.HTTP.AllowOrigins = origins

	return NewSessionHandler(SessionHandlerParams{
		AuthUC:   auth,
		Notifier: sessionhub.NewNotifier(hub),
		Config:   cfg,
		Logger:   discardLogger(),
	})
}

func TestSessionHandler_GetSession(t *testing.T) {
	auth := mockUsecase.NewMockAuthUsecase(t)
	h := newSessionHandler(t, sessionhub.New(discardLogger()), auth)
	session := testSession()
	auth.EXPECT().Header(session).Return(&usecase.HeaderView{Name: "Ann", PhotoURL: "https://via.placeholder.com/40"})

	e := newTestEcho(t, newTestConfig())
	e.GET("/api/v1/session", h.GetSession, signedIn(session))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/session", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var view SessionView
	decodeData(t, rec, &view)
	assert.Equal(t, "uid-1", view.UID)
	assert.Equal(t, "https://via.placeholder.com/40", view.Header.PhotoURL)
}

func TestSessionHandler_EventsStream(t *testing.T) {
	hub := sessionhub.New(discardLogger())
	h := newSessionHandler(t, hub, mockUsecase.NewMockAuthUsecase(t))

	e := echo.New()
	e.GET("/api/v1/session/events", h.Events, signedIn(testSession()))
	server := httptest.NewServer(e)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/session/events"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Publish until the subscription registered by the handler picks it up.
	received := make(chan entity.SessionEvent, 1)
	go func() {
		var event entity.SessionEvent
		if err := conn.ReadJSON(&event); err == nil {
			received <- event
		}
	}()

	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case event := <-received:
			assert.Equal(t, entity.SessionEventProfileUpdated, event.Type)
			assert.Equal(t, "uid-1", event.UID)

			return
		case <-ticker.C:
			hub.Publish(entity.SessionEvent{Type: entity.SessionEventProfileUpdated, UID: "uid-1"})
		case <-deadline:
			t.Fatal("no session event received")
		}
	}
}

func TestSessionHandler_EventsRejectsForeignOrigin(t *testing.T) {
	h := newSessionHandler(t, sessionhub.New(discardLogger()), mockUsecase.NewMockAuthUsecase(t), "https://app.example.com")

	e := echo.New()
	e.GET("/events", h.Events, signedIn(testSession()))
	server := httptest.NewServer(e)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/events"

	_, resp, err := websocket.DefaultDialer.Dial(wsURL, http.Header{"Origin": {"https://evil.example.com"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, http.Header{"Origin": {"https://app.example.com"}})
	require.NoError(t, err)
	conn.Close()
}

func TestOriginChecker(t *testing.T) {
	check := originChecker(nil)

	sameOrigin := httptest.NewRequest(http.MethodGet, "http://recipebox.test/events", nil)
	sameOrigin.Header.Set("Origin", "http://recipebox.test")
	assert.True(t, check(sameOrigin))

	noOrigin := httptest.NewRequest(http.MethodGet, "http://recipebox.test/events", nil)
	assert.True(t, check(noOrigin))

	foreign := httptest.NewRequest(http.MethodGet, "http://recipebox.test/events", nil)
	foreign.Header.Set("Origin", "http://elsewhere.test")
	assert.False(t, check(foreign))

	assert.True(t, originChecker([]string{"*"})(foreign))
}
