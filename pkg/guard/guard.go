package guard

import (
	"net/url"
	"strings"

	"github.com/mediflow/mediflow-go/pkg/apiclient"
	"github.com/mediflow/mediflow-go/pkg/session"
)

// Decision is the outcome of evaluating a route: either render, or redirect.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Policy describes the route layout the guard enforces. The zero value allows
// everything; use DefaultPolicy for the clinic's layout.
type Policy struct {
	// LoginPath is the public login route unauthenticated visitors are
	// sent to.
	LoginPath string

	// LandingPath is the default authenticated landing route.
	LandingPath string

	// AdminLandingPath is the landing route for ADMIN users.
	AdminLandingPath string

	// ProtectedPrefixes are route prefixes that require authentication.
	ProtectedPrefixes []string

	// AdminPrefixes are route prefixes additionally restricted to ADMIN.
	AdminPrefixes []string

	// AuthPaths are auth-only routes (login, register) that authenticated
	// users are redirected away from.
	AuthPaths []string

	// ReturnToParam, when non-empty, is the query parameter carrying the
	// originally requested path on a redirect to LoginPath.
	ReturnToParam string
}

// DefaultPolicy returns the clinic route layout: /dashboard and /panel are
// protected, /panel is admin-only, /login and /register are auth-only, and
// the requested path rides along as callbackUrl.
func DefaultPolicy() Policy {
	return Policy{
		LoginPath:         "/login",
		LandingPath:       "/dashboard",
		AdminLandingPath:  "/panel/dashboard",
		ProtectedPrefixes: []string{"/dashboard", "/panel"},
		AdminPrefixes:     []string{"/panel"},
		AuthPaths:         []string{"/login", "/register"},
		ReturnToParam:     "callbackUrl",
	}
}

// Evaluate decides whether path may render for the given session state. It is
// a pure function: callers may run it before rendering, after rendering, or at
// the network edge, and every caller gets the same answer.
func (p Policy) Evaluate(path string, status session.Status, role apiclient.Role) Decision {
	// Never redirect before the first token validation resolves; the host
	// shows a neutral loading state instead of flashing the login page at
	// a user whose session is about to restore.
	if status == session.StatusInitializing {
		return Decision{Allow: true}
	}

	if status == session.StatusAuthenticated && matchesAny(path, p.AuthPaths) {
		return Decision{RedirectTo: p.LandingFor(role)}
	}

	if matchesAny(path, p.ProtectedPrefixes) {
		if status != session.StatusAuthenticated {
			return Decision{RedirectTo: p.loginRedirect(path)}
		}
		if matchesAny(path, p.AdminPrefixes) && !role.IsAdmin() {
			return Decision{RedirectTo: p.LandingPath}
		}
	}

	return Decision{Allow: true}
}

// LandingFor returns the landing route for a role. Callers use it after a
// successful login to navigate role-appropriately.
func (p Policy) LandingFor(role apiclient.Role) string {
	if role.IsAdmin() && p.AdminLandingPath != "" {
		return p.AdminLandingPath
	}
	return p.LandingPath
}

func (p Policy) loginRedirect(requested string) string {
	if p.ReturnToParam == "" {
		return p.LoginPath
	}
	return p.LoginPath + "?" + p.ReturnToParam + "=" + url.QueryEscape(requested)
}

// matchesAny reports whether path equals a prefix or sits beneath it. Prefix
// matching is segment-aware: /dashboard matches /dashboard/settings but not
// /dashboardish.
func matchesAny(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
