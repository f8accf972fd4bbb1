// Package routes models the client-side navigation surface of the
// application and the role gate deciding, per navigation, whether a view may
// render. The decision function is pure so it can be tested without any
// terminal or rendering machinery.
package routes

import (
	"strings"

	"github.com/agroconnect/agroconnect-cli/internal/client/models"
)

// Route is a client-side navigation target. These are not HTTP paths; they
// mirror the original application's route surface.
type Route string

const (
	RouteHome           Route = "/"
	RouteLogin          Route = "/login"
	RouteRegister       Route = "/register"
	RouteForgotPassword Route = "/forgot-password"
	RouteProducts       Route = "/products"
	RouteNotFound       Route = "/404"

	RouteAcheteur Route = "/acheteur"
	RouteCart     Route = "/cart"
	RouteCheckout Route = "/checkout"
	RouteOrders   Route = "/orders"

	RouteAgriculteur   Route = "/agriculteur"
	RouteExploitations Route = "/exploitations"

	RouteProfile Route = "/profile"
)

// Navigator performs client-side navigation. Redirects issued by the gate
// replace the current entry so back-navigation does not loop into the gated
// view.
type Navigator interface {
	Navigate(to Route)
}

// Spec declares the access rules of one route.
type Spec struct {
	Route  Route
	Public bool
	// Role restricts the route to one role; empty means any authenticated
	// user (when Public is false).
	Role models.Role
}

var table = []Spec{
	{Route: RouteLogin, Public: true},
	{Route: RouteRegister, Public: true},
	{Route: RouteForgotPassword, Public: true},
	{Route: RouteHome, Public: true},
	{Route: RouteProducts, Public: true},
	{Route: RouteNotFound, Public: true},

	{Route: RouteAcheteur, Role: models.RoleAcheteur},
	{Route: RouteCart, Role: models.RoleAcheteur},
	{Route: RouteCheckout, Role: models.RoleAcheteur},
	{Route: RouteOrders, Role: models.RoleAcheteur},

	{Route: RouteAgriculteur, Role: models.RoleAgriculteur},
	{Route: RouteExploitations, Role: models.RoleAgriculteur},

	{Route: RouteProfile},
}

// Resolve maps a path to its route spec. Detail paths resolve to their list
// route (e.g. /products/42 to /products); unknown paths resolve to /404.
func Resolve(path string) Spec {
	if path == "" {
		return Spec{Route: RouteNotFound, Public: true}
	}
	for _, s := range table {
		if path == string(s.Route) {
			return s
		}
		if s.Route != RouteHome && strings.HasPrefix(path, string(s.Route)+"/") {
			return s
		}
	}
	return Spec{Route: RouteNotFound, Public: true}
}

// Landing returns the post-login landing route for a role: farmers land on
// their dashboard, buyers on theirs, every other role on the home page.
func Landing(role models.Role) Route {
	switch role {
	case models.RoleAgriculteur:
		return RouteAgriculteur
	case models.RoleAcheteur:
		return RouteAcheteur
	default:
		return RouteHome
	}
}
