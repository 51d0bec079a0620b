package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"recipebox/config"
	"recipebox/internal/delivery/api/middleware"
	"recipebox/internal/delivery/api/response"
	"recipebox/internal/delivery/api/validator"
	deliverycontext "recipebox/internal/delivery/context"
	"recipebox/internal/domain/entity"
	mockUsecase "recipebox/internal/mocks/usecase"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testCookie = "recipebox_session"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{Auth: &config.AuthConfig{
		SessionSecret:     "0123456789abcdef0123456789abcdef",
		SessionCookieName: testCookie,
		TokenTTL:          time.Hour,
		LandingPath:       "/landing.html",
		MainPath:          "/index.html",
	}}
}

// newTestEcho mirrors the API server pipeline that the handlers rely on.
func newTestEcho(t *testing.T, cfg *config.Config) *echo.Echo {
	store, err := middleware.NewCookieStore(cfg.Auth)
	require.NoError(t, err)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discardLogger()).HandleHTTPError
	e.Use(session.Middleware(store))

	return e
}

func newTestSessions(t *testing.T, cfg *config.Config) *middleware.SessionMiddleware {
	return middleware.NewSessionMiddleware(middleware.SessionMiddlewareParams{
		Auth:   mockUsecase.NewMockAuthUsecase(t),
		Config: cfg,
		Logger: discardLogger(),
	})
}

// signedIn stands in for the session middleware.
func signedIn(s *entity.Session) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetSession(c, s)

			return next(c)
		}
	}
}

func testSession() *entity.Session {
	return &entity.Session{UID: "uid-1", Email: "ann@example.com", DisplayName: "Ann", IDToken: "token-1"}
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, data any) {
	t.Helper()

	body := response.SuccessResponse{Data: data}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}
