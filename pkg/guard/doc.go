// Package guard gates navigation on session state.
//
// Exactly one predicate, Policy.Evaluate, decides between "render" and
// "redirect to <path>" for every combination of route, session status and user
// role. Both the in-process check (backed by the session manager) and the edge
// check (backed by the token cookie alone) evaluate the same predicate, so the
// two can never disagree about where the credential lives or where a visitor
// belongs - the failure mode this package exists to prevent.
//
// # Rules
//
//   - While the session is still Initializing nothing redirects; the host
//     renders a neutral loading state.
//   - An unauthenticated visit to a protected route redirects to the login
//     route, carrying the originally requested path so the login flow can
//     return there.
//   - An authenticated visit to an auth-only route (login, register)
//     redirects to the role-appropriate landing route.
//   - An authenticated visit to an admin route without the ADMIN role
//     redirects to the regular landing route.
//   - Everything else renders.
//
// # Usage
//
//	policy := guard.DefaultPolicy()
//
//	// In-process, with full session state:
//	r.Use(guard.Middleware(policy, guard.SessionState(manager)))
//
//	// At the edge, from the token cookie only:
//	r.Use(guard.Middleware(policy, guard.CookieState(nil)))
package guard
