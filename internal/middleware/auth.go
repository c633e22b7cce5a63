package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/pazarlabs/pazar/internal/domain"
	"github.com/pazarlabs/pazar/internal/service"
	"github.com/pazarlabs/pazar/pkg/errs"
	"github.com/pazarlabs/pazar/pkg/response"
	"github.com/pazarlabs/pazar/pkg/utils"
	"github.com/rs/zerolog/log"
)

const (
	SessionName      = "session"
	SessionKeyUserID = "user_id"
	principalKey     = "principal"
)

// SessionGate guards protected routes. It resolves the principal from the
// cookie session, or from a Bearer token for API clients, and rejects stale
// session ids instead of fabricating a principal. Anonymous browsers are
// redirected to the login page; everyone else gets a 401.
func SessionGate(identity service.IdentityService, jwtSecret string, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := sessionUserID(c)
			if !ok {
				id, ok = bearerUserID(c, jwtSecret)
			}

			if ok {
				principal, err := identity.ResolvePrincipal(c.Request().Context(), id)
				if err == nil {
					c.Set(principalKey, principal)
					return next(c)
				}

				log.Warn().Int64("user_id", id).Str("component", "SessionGate").Msg("rejected stale session principal")
				clearSession(c)
			}

			if wantsHTML(c) {
				return c.Redirect(http.StatusFound, loginPath)
			}

			return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
		}
	}
}

// Principal returns the authenticated user set by SessionGate.
func Principal(c echo.Context) domain.User {
	principal, _ := c.Get(principalKey).(domain.User)
	return principal
}

func sessionUserID(c echo.Context) (int64, bool) {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return 0, false
	}

	id, ok := sess.Values[SessionKeyUserID].(int64)
	return id, ok
}

func bearerUserID(c echo.Context, jwtSecret string) (int64, bool) {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(auth, "Bearer ") {
		return 0, false
	}

	id, err := utils.VerifyJWTToken(strings.TrimPrefix(auth, "Bearer "), jwtSecret)
	if err != nil {
		return 0, false
	}

	return id, true
}

func clearSession(c echo.Context) {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return
	}

	sess.Options.MaxAge = -1
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		log.Error().Err(err).Str("component", "clearSession").Msg("")
	}
}

func wantsHTML(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}
