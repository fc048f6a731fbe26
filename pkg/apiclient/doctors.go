package apiclient

import (
	"context"
	"net/http"
)

// Doctors returns the published doctor directory. The endpoint is public so
// visitors can browse before logging in.
func (c *Client) Doctors(ctx context.Context) ([]Doctor, error) {
	var doctors []Doctor
	if err := c.do(ctx, c.public, http.MethodGet, "/cms/doctors", nil, nil, &doctors, nil); err != nil {
		return nil, err
	}
	return doctors, nil
}

// Doctor returns a single doctor by ID.
func (c *Client) Doctor(ctx context.Context, id string) (*Doctor, error) {
	var doctor Doctor
	if err := c.do(ctx, c.public, http.MethodGet, "/cms/doctors/"+id, nil, nil, &doctor, nil); err != nil {
		return nil, err
	}
	return &doctor, nil
}

// CreateDoctor publishes a new doctor. Admin only.
func (c *Client) CreateDoctor(ctx context.Context, doctor Doctor) (*Doctor, error) {
	var created Doctor
	if err := c.do(ctx, c.authed, http.MethodPost, "/cms/doctors", nil, doctor, &created, nil); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteDoctor removes a doctor from the directory. Admin only.
func (c *Client) DeleteDoctor(ctx context.Context, id string) error {
	return c.do(ctx, c.authed, http.MethodDelete, "/cms/doctors/"+id, nil, nil, nil, nil)
}
