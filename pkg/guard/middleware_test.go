package guard_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediflow/mediflow-go/pkg/apiclient"
	"github.com/mediflow/mediflow-go/pkg/credstore"
	"github.com/mediflow/mediflow-go/pkg/guard"
	"github.com/mediflow/mediflow-go/pkg/session"
)

func signedToken(t *testing.T, role string, exp time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{"sub": "u1", "exp": exp.Unix()}
	if role != "" {
		claims["role"] = role
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestMiddleware(t *testing.T) {
	policy := guard.DefaultPolicy()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	fixed := func(status session.Status, role apiclient.Role) guard.StateFunc {
		return func(r *http.Request) (session.Status, apiclient.Role) {
			return status, role
		}
	}

	t.Run("allowed request reaches the handler", func(t *testing.T) {
		handler := guard.Middleware(policy, fixed(session.StatusAuthenticated, apiclient.RolePatient))(next)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("denied request gets a 303 with the decision target", func(t *testing.T) {
		handler := guard.Middleware(policy, fixed(session.StatusUnauthenticated, ""))(next)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login?callbackUrl=%2Fdashboard", rec.Header().Get("Location"))
	})

	t.Run("initializing state passes through untouched", func(t *testing.T) {
		handler := guard.Middleware(policy, fixed(session.StatusInitializing, ""))(next)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panel/dashboard", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCookieState(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	state := guard.CookieState(func() time.Time { return now })

	withCookie := func(value string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		if value != "" {
			r.AddCookie(&http.Cookie{Name: credstore.CookieName, Value: value})
		}
		return r
	}

	t.Run("no cookie is unauthenticated", func(t *testing.T) {
		status, role := state(withCookie(""))
		assert.Equal(t, session.StatusUnauthenticated, status)
		assert.Empty(t, role)
	})

	t.Run("live token with role is authenticated", func(t *testing.T) {
		status, role := state(withCookie(signedToken(t, "ADMIN", now.Add(time.Hour))))
		assert.Equal(t, session.StatusAuthenticated, status)
		assert.Equal(t, apiclient.RoleAdmin, role)
	})

	t.Run("expired token is unauthenticated", func(t *testing.T) {
		status, role := state(withCookie(signedToken(t, "ADMIN", now.Add(-time.Hour))))
		assert.Equal(t, session.StatusUnauthenticated, status)
		assert.Empty(t, role)
	})

	t.Run("opaque token counts as authenticated presence", func(t *testing.T) {
		status, role := state(withCookie("not-a-jwt"))
		assert.Equal(t, session.StatusAuthenticated, status)
		assert.Empty(t, role)
	})

	t.Run("token without role claim authenticates with no role", func(t *testing.T) {
		status, role := state(withCookie(signedToken(t, "", now.Add(time.Hour))))
		assert.Equal(t, session.StatusAuthenticated, status)
		assert.Empty(t, role)
	})
}
