// Package credstore persists the MediFlow access token across the locations a
// running client may look it up from, behind one canonical adapter.
//
// Historically the token lived in several places at once (a local key-value
// store and a cookie) and different consumers disagreed about which location,
// and even which cookie name, to check. This package collapses that into a
// single Store interface with one fixed precedence list shared by the HTTP
// client, the session manager and the route guard, so every consumer resolves
// the same credential.
//
// # Layout
//
// Two persistent locations exist, tried in order:
//
//  1. FileStore    – a JSON state file in the user state directory, the
//     equivalent of origin-scoped local storage.
//  2. CookieStore  – a cookie jar file holding the "mediflow_token" cookie
//     for the API origin.
//
// Composite chains them: reads return the first hit, writes go to every
// location, and Clear erases every location even when one of them fails.
// MemoryStore backs tests.
//
// # Usage
//
//	store, err := credstore.New(credstore.Config{}, "api.mediflow.example")
//	if err != nil { ... }
//	if err := store.SetToken(ctx, accessToken); err != nil { ... }
//	tok, err := store.Token(ctx)
//
// A read that finds no credential anywhere returns ErrNoCredential; a stale
// copy in one location and none in another resolves deterministically by the
// precedence order, never as an error.
package credstore
