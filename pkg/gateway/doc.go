// Package gateway builds the edge handler that fronts the clinic web app: a
// reverse proxy with the route guard applied before any request reaches the
// upstream.
//
// The guard reads only the token cookie, so redirect decisions at the edge
// agree with the ones the client makes locally; both run the same policy.
// Authenticated identity is never trusted here beyond routing: the backend
// still verifies the token on every API call.
package gateway
