package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

// BookAppointment creates an appointment for the authenticated user. Booking
// is never retried; a timed-out booking must not be resubmitted blindly.
func (c *Client) BookAppointment(ctx context.Context, booking BookingRequest) (*Appointment, error) {
	var appt Appointment
	if err := c.do(ctx, c.authed, http.MethodPost, "/appointments", nil, booking, &appt, nil); err != nil {
		return nil, err
	}
	return &appt, nil
}

// MyAppointments returns the authenticated user's appointments.
func (c *Client) MyAppointments(ctx context.Context) ([]Appointment, error) {
	var appts []Appointment
	if err := c.do(ctx, c.authed, http.MethodGet, "/appointments/my-appointments", nil, nil, &appts, nil); err != nil {
		return nil, err
	}
	return appts, nil
}

// Appointments returns every appointment in the clinic. Admin only.
func (c *Client) Appointments(ctx context.Context) ([]Appointment, error) {
	var appts []Appointment
	if err := c.do(ctx, c.authed, http.MethodGet, "/appointments", nil, nil, &appts, nil); err != nil {
		return nil, err
	}
	return appts, nil
}

// CancelAppointment cancels one of the authenticated user's appointments.
func (c *Client) CancelAppointment(ctx context.Context, id string) error {
	return c.do(ctx, c.authed, http.MethodDelete, "/appointments/"+id, nil, nil, nil, nil)
}

// UpdateAppointmentStatus moves an appointment through its lifecycle. Admin
// only. The backend takes the new status as a query parameter.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id string, status AppointmentStatus) (*Appointment, error) {
	query := url.Values{"status": {string(status)}}

	var appt Appointment
	if err := c.do(ctx, c.authed, http.MethodPatch, "/appointments/"+id+"/status", query, nil, &appt, nil); err != nil {
		return nil, err
	}
	return &appt, nil
}
