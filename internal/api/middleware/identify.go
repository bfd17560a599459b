package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/ajaykumar8188/lubes-management/internal/core/ports"
)

// Identify resolves the caller's identity when a valid bearer token is
// presented but never rejects the request. It backs the catch-all route,
// where an anonymous caller is redirected to login rather than refused.
func Identify(jwtSecret string, sessions ports.SessionRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return next(c)
			}

			sid, _ := claims["sid"].(string)
			if sid == "" {
				return next(c)
			}
			session, err := sessions.Find(c.Request().Context(), sid)
			if err != nil {
				return next(c)
			}

			c.Set(ContextSessionID, session.ID)
			c.Set(ContextIdentity, session.Identity)
			return next(c)
		}
	}
}
