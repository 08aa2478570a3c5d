// Package guard decides, per navigation, whether a route renders or
// redirects. The check is pure and synchronous: it consumes only the
// current authentication boolean and never touches the network, so a token
// cleared mid-session takes effect on the next evaluation.
package guard

import "strings"

// Portal route paths.
const (
	RouteRoot         = "/"
	RouteLogin        = "/login"
	RouteRegister     = "/register"
	RouteLogout       = "/logout"
	RouteDashboard    = "/dashboard"
	RouteReport       = "/report"
	RoutePatients     = "/patients"
	RouteAppointments = "/appointments"
	RouteChat         = "/chat"
	RouteHistory      = "/history"
	RouteSettings     = "/settings"
)

// Class partitions routes by the session they require.
type Class int

const (
	// Public routes render regardless of auth state (logout included).
	Public Class = iota
	// Entry routes (login, register) render only for unauthenticated
	// visitors; a logged-in user is forwarded to the dashboard.
	Entry
	// Protected routes require a session.
	Protected
)

// Decision is the guard's verdict for one navigation.
type Decision struct {
	Redirect bool
	Target   string // set when Redirect is true
}

func render() Decision                 { return Decision{} }
func redirect(target string) Decision { return Decision{Redirect: true, Target: target} }

// Classify maps a path to its route class. Unknown paths are Public; the
// router's own 404 handling applies there.
func Classify(route string) Class {
	switch route {
	case RouteLogin, RouteRegister:
		return Entry
	case RouteDashboard, RouteReport, RoutePatients, RouteAppointments,
		RouteHistory, RouteSettings, RouteChat:
		return Protected
	}
	if strings.HasPrefix(route, RouteChat+"/") {
		return Protected
	}
	return Public
}

// Decide evaluates one navigation. The root path forwards by auth state;
// Entry routes bounce authenticated users to the dashboard; Protected
// routes bounce unauthenticated users to login.
func Decide(route string, authenticated bool) Decision {
	if route == RouteRoot {
		if authenticated {
			return redirect(RouteDashboard)
		}
		return redirect(RouteLogin)
	}

	switch Classify(route) {
	case Entry:
		if authenticated {
			return redirect(RouteDashboard)
		}
		return render()
	case Protected:
		if !authenticated {
			return redirect(RouteLogin)
		}
		return render()
	}
	return render()
}
