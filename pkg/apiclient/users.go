package apiclient

import (
	"context"
	"net/http"
)

// UpdateProfile edits the authenticated user's own profile and returns the
// updated record. Callers refresh the session user afterwards so the rest of
// the application observes the change.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*User, error) {
	var user User
	if err := c.do(ctx, c.authed, http.MethodPatch, "/users/profile", nil, update, &user, nil); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword changes the authenticated user's password. The held token
// stays valid.
func (c *Client) ChangePassword(ctx context.Context, change PasswordChange) error {
	return c.do(ctx, c.authed, http.MethodPatch, "/users/password", nil, change, nil, nil)
}

// ListUsers returns all users. Admin only.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, c.authed, http.MethodGet, "/users", nil, nil, &users, nil); err != nil {
		return nil, err
	}
	return users, nil
}
