package guard

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mediflow/mediflow-go/pkg/apiclient"
	"github.com/mediflow/mediflow-go/pkg/credstore"
	"github.com/mediflow/mediflow-go/pkg/session"
)

// StateFunc resolves the session state a request is evaluated against.
type StateFunc func(r *http.Request) (session.Status, apiclient.Role)

// Middleware applies the policy to every request, redirecting with 303 when
// the decision says so. It is plain net/http middleware and composes with chi.
func Middleware(policy Policy, state StateFunc) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			status, role := state(r)

			decision := policy.Evaluate(r.URL.Path, status, role)
			if !decision.Allow {
				http.Redirect(w, r, decision.RedirectTo, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SessionState resolves state from a session manager. Requests arriving while
// the manager is still Initializing see StatusInitializing and are let
// through per the policy.
func SessionState(m *session.Manager) StateFunc {
	return func(r *http.Request) (session.Status, apiclient.Role) {
		snap := m.Snapshot()
		return snap.Status, snap.Role()
	}
}

// CookieState resolves state from the token cookie alone, for edge
// deployments with no session manager in reach. The cookie name is the
// system-wide credstore.CookieName; no other name is consulted. now may be
// nil for time.Now.
func CookieState(now func() time.Time) StateFunc {
	if now == nil {
		now = time.Now
	}
	return func(r *http.Request) (session.Status, apiclient.Role) {
		cookie, err := r.Cookie(credstore.CookieName)
		if err != nil || cookie.Value == "" {
			return session.StatusUnauthenticated, ""
		}
		return tokenIdentity(cookie.Value, now())
	}
}

// tokenIdentity derives status and role from the raw token. The signature is
// not verified - the backend rejects forgeries on the first API call; the
// edge only needs a redirect decision. An unparseable token counts as
// authenticated presence, matching how an opaque token behaves.
func tokenIdentity(token string, now time.Time) (session.Status, apiclient.Role) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return session.StatusAuthenticated, ""
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil && now.After(exp.Time) {
		return session.StatusUnauthenticated, ""
	}

	role, _ := claims["role"].(string)
	return session.StatusAuthenticated, apiclient.Role(role)
}
