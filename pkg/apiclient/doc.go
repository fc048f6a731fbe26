// Package apiclient is the typed client for the MediFlow backend REST API.
//
// The client owns two HTTP clients: a public one for endpoints that never
// carry credentials (login, register, doctor browsing) and an authenticated
// one whose transport injects "Authorization: Bearer <token>" on every request
// via golang.org/x/oauth2, sourcing the token from the shared credential
// store. No call site ever sets the header itself, so there is exactly one
// place that decides where the credential comes from.
//
// # Usage
//
//	creds, _ := credstore.New(credstore.Config{}, "api.mediflow.example")
//	client := apiclient.New(apiclient.Config{BaseURL: base}, creds)
//
//	resp, err := client.Login(ctx, apiclient.Credentials{
//	    Email:    "a@b.com",
//	    Password: "secret1",
//	})
//
// # Errors
//
// Failed calls return a sentinel joined with the decoded backend *APIError so
// callers can branch with errors.Is and still show the backend message:
//
//   - ErrInvalidCredentials – login/register rejected
//   - ErrUnauthorized       – token missing, expired or insufficient role
//   - ErrNotFound           – resource does not exist
//   - ErrUnavailable        – network failure or backend 5xx
//
// Idempotent GET requests are retried with exponential backoff and jitter;
// mutations are never retried.
package apiclient
