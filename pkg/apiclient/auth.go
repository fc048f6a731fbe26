package apiclient

import (
	"context"
	"net/http"
)

// Login exchanges credentials for an access token and the user profile. The
// request is unauthenticated; the caller decides whether to persist the
// returned token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, c.public, http.MethodPost, "/auth/login", nil, creds, &resp, authSentinel); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" || resp.User.ID == "" {
		return nil, ErrInvalidResponse
	}
	return &resp, nil
}

// Register creates an account. A successful registration returns a live
// access token, so the new user is authenticated without a separate login.
func (c *Client) Register(ctx context.Context, reg Registration) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, c.public, http.MethodPost, "/auth/register", nil, reg, &resp, authSentinel); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" || resp.User.ID == "" {
		return nil, ErrInvalidResponse
	}
	return &resp, nil
}

// Profile fetches the authenticated user's profile. This is the token
// validation call: a 401 here means the held token is no longer good.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, c.authed, http.MethodGet, "/auth/profile", nil, nil, &user, nil); err != nil {
		return nil, err
	}
	return &user, nil
}
