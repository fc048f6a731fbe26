package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mediflow/mediflow-go/pkg/apiclient"
	"github.com/mediflow/mediflow-go/pkg/guard"
	"github.com/mediflow/mediflow-go/pkg/session"
)

func TestPolicy_Evaluate(t *testing.T) {
	policy := guard.DefaultPolicy()

	t.Run("initializing never redirects", func(t *testing.T) {
		for _, path := range []string{"/", "/login", "/register", "/dashboard", "/panel/dashboard", "/doctors/7"} {
			decision := policy.Evaluate(path, session.StatusInitializing, "")
			assert.True(t, decision.Allow, "path %s must render while initializing", path)
		}
	})

	t.Run("unauthenticated on protected path redirects to login", func(t *testing.T) {
		decision := policy.Evaluate("/dashboard", session.StatusUnauthenticated, "")
		assert.False(t, decision.Allow)
		assert.Equal(t, "/login?callbackUrl=%2Fdashboard", decision.RedirectTo)

		decision = policy.Evaluate("/panel/dashboard", session.StatusUnauthenticated, "")
		assert.False(t, decision.Allow)
		assert.Equal(t, "/login?callbackUrl=%2Fpanel%2Fdashboard", decision.RedirectTo)
	})

	t.Run("unauthenticated on public path renders", func(t *testing.T) {
		for _, path := range []string{"/", "/doctors", "/doctors/7", "/services", "/contact", "/login", "/register"} {
			decision := policy.Evaluate(path, session.StatusUnauthenticated, "")
			assert.True(t, decision.Allow, "path %s must render unauthenticated", path)
		}
	})

	t.Run("authenticated on auth-only path redirects to landing", func(t *testing.T) {
		decision := policy.Evaluate("/login", session.StatusAuthenticated, apiclient.RolePatient)
		assert.False(t, decision.Allow)
		assert.Equal(t, "/dashboard", decision.RedirectTo)

		decision = policy.Evaluate("/register", session.StatusAuthenticated, apiclient.RolePatient)
		assert.False(t, decision.Allow)
		assert.Equal(t, "/dashboard", decision.RedirectTo)
	})

	t.Run("authenticated admin on auth-only path lands on the panel", func(t *testing.T) {
		decision := policy.Evaluate("/login", session.StatusAuthenticated, apiclient.RoleAdmin)
		assert.False(t, decision.Allow)
		assert.Equal(t, "/panel/dashboard", decision.RedirectTo)
	})

	t.Run("non-admin on admin path redirects to regular landing", func(t *testing.T) {
		decision := policy.Evaluate("/panel/dashboard", session.StatusAuthenticated, apiclient.RolePatient)
		assert.False(t, decision.Allow)
		assert.Equal(t, "/dashboard", decision.RedirectTo)
	})

	t.Run("admin on admin path renders", func(t *testing.T) {
		decision := policy.Evaluate("/panel/dashboard", session.StatusAuthenticated, apiclient.RoleAdmin)
		assert.True(t, decision.Allow)
	})

	t.Run("authenticated patient on own dashboard renders", func(t *testing.T) {
		decision := policy.Evaluate("/dashboard", session.StatusAuthenticated, apiclient.RolePatient)
		assert.True(t, decision.Allow)
	})

	t.Run("prefix matching is segment aware", func(t *testing.T) {
		decision := policy.Evaluate("/dashboardish", session.StatusUnauthenticated, "")
		assert.True(t, decision.Allow)

		decision = policy.Evaluate("/dashboard/appointments", session.StatusUnauthenticated, "")
		assert.False(t, decision.Allow)
	})
}

func TestPolicy_LandingFor(t *testing.T) {
	policy := guard.DefaultPolicy()

	assert.Equal(t, "/panel/dashboard", policy.LandingFor(apiclient.RoleAdmin))
	assert.Equal(t, "/dashboard", policy.LandingFor(apiclient.RolePatient))
	assert.Equal(t, "/dashboard", policy.LandingFor(""))
}
