package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/ajaykumar8188/lubes-management/internal/core/domain"
	"github.com/ajaykumar8188/lubes-management/internal/core/ports"
)

const (
	ContextIdentity  = "identity"
	ContextSessionID = "session_id"
)

// Auth validates the bearer JWT and re-reads the session snapshot it names,
// so the request carries the store's current identity rather than a stale
// copy baked into the token. A token whose snapshot is gone (logout,
// expiry, corruption) is rejected.
func Auth(jwtSecret string, sessions ports.SessionRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sid, _ := claims["sid"].(string)
			if sid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing session id")
			}

			session, err := sessions.Find(c.Request().Context(), sid)
			if err != nil {
				if err == domain.ErrSessionNotFound {
					return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
				}
				return err
			}

			c.Set(ContextSessionID, session.ID)
			c.Set(ContextIdentity, session.Identity)

			return next(c)
		}
	}
}

// CtxIdentity returns the identity injected by Auth, or nil when the
// request is unauthenticated.
func CtxIdentity(c echo.Context) *domain.Identity {
	identity, ok := c.Get(ContextIdentity).(domain.Identity)
	if !ok {
		return nil
	}
	return &identity
}
