package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"time"

	"recipebox/config"
	"recipebox/internal/delivery/api/response"
	deliverycontext "recipebox/internal/delivery/context"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/service"
	"recipebox/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	eventWriteWait  = 10 * time.Second
	eventPongWait   = 60 * time.Second
	eventPingPeriod = eventPongWait * 9 / 10
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	AuthUC   usecase.AuthUsecase
	Notifier service.SessionNotifier
	Config   *config.Config
	Logger   *slog.Logger
}

// SessionHandler exposes the current session and streams its events.
type SessionHandler struct {
	authUC   usecase.AuthUsecase
	notifier service.SessionNotifier
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// SessionView is the session as the pages see it.
type SessionView struct {
	UID    string              `json:"uid"`
	Email  string              `json:"email"`
	Header *usecase.HeaderView `json:"header"`
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	allowed := params.Config.HTTP.AllowOrigins

	return &SessionHandler{
		authUC:   params.AuthUC,
		notifier: params.Notifier,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     originChecker(allowed),
		},
		logger: params.Logger,
	}
}

// GetSession returns the signed-in identity and its header view.
func (h *SessionHandler) GetSession(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	return response.Success(c, http.StatusOK, &SessionView{
		UID:    session.UID,
		Email:  session.Email,
		Header: h.authUC.Header(session),
	})
}

// Events streams the session events of the signed-in identity over a WebSocket.
// Closing the socket cancels the subscription.
func (h *SessionHandler) Events(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already answered the request.
		h.log(c).Debug("WebSocket upgrade failed", slog.Any("error", err))

		return nil
	}
	defer ws.Close()

	sub := h.notifier.Subscribe(session.UID)
	defer sub.Cancel()

	logger := h.log(c).With(slog.String("uid", session.UID))
	logger.Debug("Session event stream opened")

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		readUntilClosed(ws)
	}()

	ticker := time.NewTicker(eventPingPeriod)
	defer ticker.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-closed:
			logger.Debug("Session event stream closed by client")

			return nil
		case event, open := <-sub.Events():
			if !open {
				return nil
			}
			_ = ws.SetWriteDeadline(time.Now().Add(eventWriteWait))
			if err := ws.WriteJSON(event); err != nil {
				logger.Debug("Failed to write session event", slog.Any("error", err))

				return nil
			}
		case <-ticker.C:
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(eventWriteWait)); err != nil {
				return nil
			}
		}
	}
}

func (h *SessionHandler) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}

// readUntilClosed drains client frames so control messages are processed, and returns once the
// connection fails or the peer stops answering pings.
func readUntilClosed(ws *websocket.Conn) {
	ws.SetReadLimit(512)
	_ = ws.SetReadDeadline(time.Now().Add(eventPongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(eventPongWait))
	})

	for {
		if _, _, err := ws.NextReader(); err != nil {
			return
		}
	}
}

// originChecker accepts same-origin requests and any origin listed in allowed.
func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if slices.Contains(allowed, "*") || slices.Contains(allowed, origin) {
			return true
		}
		u, err := url.Parse(origin)

		return err == nil && u.Host == r.Host
	}
}
