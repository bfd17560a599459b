package access

import "github.com/ajaykumar8188/lubes-management/internal/core/domain"

// Route describes the protection attached to one path. A nil Roles slice on
// a protected route means any authenticated identity.
type Route struct {
	Public bool
	Roles  []string
}

// Routes is the navigation table of the storefront. Paths not listed here
// fall through to the catch-all policy in DecideRoute.
var Routes = map[string]Route{
	"/login":           {Public: true},
	"/signup":          {Public: true},
	"/forgot-password": {Public: true},

	"/dashboard": {},

	"/products":   {Roles: []string{domain.RoleAdmin}},
	"/categories": {Roles: []string{domain.RoleAdmin}},
	"/roles":      {Roles: []string{domain.RoleAdmin}},
	"/orders":     {Roles: []string{domain.RoleAdmin}},
	"/payments":   {Roles: []string{domain.RoleAdmin}},

	"/cart":          {Roles: []string{domain.RoleCustomer}},
	"/order-history": {Roles: []string{domain.RoleCustomer}},
	"/profile":       {Roles: []string{domain.RoleCustomer}},
}

// DecideRoute resolves path against the route table and runs the gate.
// Unmatched paths mirror the router's catch-all: authenticated traffic is
// sent to the dashboard, anonymous traffic to the login page.
func DecideRoute(identity *domain.Identity, path string) Decision {
	route, ok := Routes[path]
	if !ok {
		if identity == nil {
			return RedirectTo(LoginPath)
		}
		return RedirectTo(DashboardPath)
	}
	if route.Public {
		return Allow
	}
	return Decide(identity, route.Roles)
}
