package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"recipebox/config"
	"recipebox/internal/delivery/api/response"
	deliverycontext "recipebox/internal/delivery/context"
	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/errors"
	"recipebox/internal/usecase"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const tokenValueKey = "id_token"

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	Auth   usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// SessionMiddleware resolves the session of each request from a bearer token or the
// session marker cookie, and owns writing and clearing that cookie.
type SessionMiddleware struct {
	auth        usecase.AuthUsecase
	cookieName  string
	landingPath string
	logger      *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	auth := params.Config.Auth

	return &SessionMiddleware{
		auth:        params.Auth,
		cookieName:  auth.SessionCookieName,
		landingPath: auth.LandingPath,
		logger:      params.Logger,
	}
}

// NewCookieStore builds the signed cookie store behind the session marker.
func NewCookieStore(auth *config.AuthConfig) (sessions.Store, error) {
	if strings.TrimSpace(auth.SessionSecret) == "" {
		return nil, errors.New("auth.sessionSecret is required")
	}

	store := sessions.NewCookieStore([]byte(auth.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(auth.TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   auth.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}

	return store, nil
}

// Authenticate rejects requests without a live session. Page requests are redirected to the
// landing page; API requests get 401 with the landing path in the Location header.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		resolved, err := m.auth.ResolveSession(c.Request().Context(), m.token(c))
		if err != nil {
			if domainerrors.HasCode(err, domainerrors.ErrSessionExpired.ErrorCode()) {
				m.Clear(c)
			}

			return m.reject(c, err)
		}

		deliverycontext.SetSession(c, resolved)

		return next(c)
	}
}

// Optional resolves the session when there is one and lets the request through either way.
func (m *SessionMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.token(c)
		if token == "" {
			return next(c)
		}

		resolved, err := m.auth.ResolveSession(c.Request().Context(), token)
		if err == nil {
			deliverycontext.SetSession(c, resolved)
		} else if domainerrors.HasCode(err, domainerrors.ErrSessionExpired.ErrorCode()) {
			m.Clear(c)
		}

		return next(c)
	}
}

// Store writes the session's ID token into the marker cookie.
func (m *SessionMiddleware) Store(c echo.Context, s *entity.Session) error {
	sess, err := session.Get(m.cookieName, c)
	if sess == nil {
		return errors.Wrap(err, "session store")
	}
	if err != nil {
		// An unreadable cookie, e.g. signed with a rotated secret, is replaced.
		m.log(c).Debug("Replacing unreadable session cookie", slog.Any("error", err))
	}
	sess.Values[tokenValueKey] = s.IDToken

	return errors.WithStack(sess.Save(c.Request(), c.Response()))
}

// Clear expires the marker cookie. Failures are logged only.
func (m *SessionMiddleware) Clear(c echo.Context) {
	sess, err := session.Get(m.cookieName, c)
	if sess == nil {
		m.log(c).Warn("Session store unavailable", slog.Any("error", err))

		return
	}
	delete(sess.Values, tokenValueKey)
	sess.Options.MaxAge = -1
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		m.log(c).Warn("Failed to clear session cookie", slog.Any("error", err))
	}
}

// LandingPath is where unauthenticated visitors are sent.
func (m *SessionMiddleware) LandingPath() string {
	return m.landingPath
}

func (m *SessionMiddleware) token(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}

	sess, err := session.Get(m.cookieName, c)
	if err != nil {
		return ""
	}
	token, _ := sess.Values[tokenValueKey].(string)

	return token
}

func (m *SessionMiddleware) reject(c echo.Context, err error) error {
	if wantsPage(c.Request()) {
		return c.Redirect(http.StatusSeeOther, m.landingPath)
	}
	c.Response().Header().Set(echo.HeaderLocation, m.landingPath)

	return response.HandleAppError(c, err)
}

func (m *SessionMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

// wantsPage reports whether the request is a browser page navigation rather than an API call.
func wantsPage(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}

	return strings.Contains(r.Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}
