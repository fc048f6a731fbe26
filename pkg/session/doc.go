// Package session owns the client-side authentication lifecycle: who is
// logged in, the access token backing that, and the transitions between the
// Initializing, Authenticated and Unauthenticated states.
//
// A Manager is the single source of truth for session state. It is created
// once by the application's composition root and handed to consumers
// explicitly; there is no package-level instance, so tests construct isolated
// managers against fake collaborators.
//
// # Lifecycle
//
//	Initializing --(no stored token)-------> Unauthenticated
//	Initializing --(stored token valid)----> Authenticated
//	Initializing --(stored token invalid)--> Unauthenticated
//	Authenticated --(Logout)---------------> Unauthenticated
//	Authenticated --(RefreshUser fails)----> Unauthenticated
//	Unauthenticated --(Login/Register ok)--> Authenticated
//
// Initialize runs exactly once per Manager. It resolves any previously
// persisted token through the shared credential store's precedence order and
// validates it against the backend profile endpoint. Any failure - expired
// token, malformed token, unreachable backend - fails closed: every persisted
// credential copy is erased and the session lands in Unauthenticated. The
// status never remains Initializing after Initialize returns, and concurrent
// callers all observe the same terminal state.
//
// Hosts gate rendering on the state: while Status is Initializing they show
// neutral loading and never redirect (see the guard package).
//
// # Credential handling
//
// The manager never talks to storage locations individually. Login and
// Register persist the returned token through the composite store, so every
// location a collaborator might read is written; Logout and invalid-token
// detection clear every location. A token the session knows to be invalid is
// never retained.
//
// Logout is client-authoritative: it is a pure local operation, requires no
// network, never fails from the caller's perspective and is idempotent.
package session
