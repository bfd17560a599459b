// Package access holds the role gate: a pure decision function mapping an
// identity and a route's required roles to allow-or-redirect. It keeps no
// state and must be re-evaluated on every navigation.
package access

import "github.com/ajaykumar8188/lubes-management/internal/core/domain"

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Decision is the outcome of a gate evaluation. Allowed and RedirectTo are
// mutually exclusive: RedirectTo is empty iff Allowed is true.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Allow is the decision that lets the navigation proceed.
var Allow = Decision{Allowed: true}

// RedirectTo builds a deny decision pointing at path.
func RedirectTo(path string) Decision {
	return Decision{RedirectTo: path}
}

// Decide evaluates one navigation attempt:
//   - no identity: redirect to the login page.
//   - required roles present and the identity's role is not among them:
//     redirect to the dashboard (silent denial, no error surface).
//   - otherwise: allow. An empty requiredRoles set means any authenticated
//     identity may pass.
func Decide(identity *domain.Identity, requiredRoles []string) Decision {
	if identity == nil {
		return RedirectTo(LoginPath)
	}
	if len(requiredRoles) == 0 {
		return Allow
	}
	for _, r := range requiredRoles {
		if identity.Role == r {
			return Allow
		}
	}
	return RedirectTo(DashboardPath)
}
