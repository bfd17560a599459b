package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ajaykumar8188/lubes-management/internal/api/metrics"
	"github.com/ajaykumar8188/lubes-management/internal/core/access"
)

// RBAC runs the access gate on every request. The decision is never
// cached: the identity comes from the Auth middleware's fresh session
// read, and a deny redirects the browser the same way the storefront's
// router does.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision := access.Decide(CtxIdentity(c), allowedRoles)
			if decision.Allowed {
				metrics.GateDecisionsTotal.WithLabelValues("allow").Inc()
				return next(c)
			}

			switch decision.RedirectTo {
			case access.LoginPath:
				metrics.GateDecisionsTotal.WithLabelValues("redirect_login").Inc()
			default:
				metrics.GateDecisionsTotal.WithLabelValues("redirect_dashboard").Inc()
			}
			return c.Redirect(http.StatusFound, decision.RedirectTo)
		}
	}
}
