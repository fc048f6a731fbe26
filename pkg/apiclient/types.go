package apiclient

import "time"

// Role is a backend-assigned user role.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleDoctor       Role = "DOCTOR"
	RoleNurse        Role = "NURSE"
	RoleReceptionist Role = "RECEPTIONIST"
	RolePatient      Role = "PATIENT"
)

// IsAdmin reports whether the role grants access to the admin panel.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// User mirrors the backend user profile. It is read-only on the client; the
// backend owns the record.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// FullName returns the user's display name.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the register request body. A successful registration also
// authenticates the new user; no separate login follows.
type Registration struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

// ProfileUpdate is the request body for editing one's own profile.
type ProfileUpdate struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// PasswordChange is the request body for changing one's own password.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Doctor is a clinic doctor as published by the backend CMS.
type Doctor struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Specialty    string   `json:"specialty"`
	Image        *string  `json:"image,omitempty"`
	Biography    *string  `json:"biography,omitempty"`
	Experience   *int     `json:"experience,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	ContactEmail *string  `json:"contact_email,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

// AppointmentStatus is the backend-managed appointment lifecycle state.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "PENDING"
	AppointmentConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
)

// Appointment is a booked appointment.
type Appointment struct {
	ID              string            `json:"id"`
	DoctorID        int64             `json:"doctorId"`
	AppointmentDate time.Time         `json:"appointmentDate"`
	Notes           string            `json:"notes,omitempty"`
	Status          AppointmentStatus `json:"status"`
	CreatedAt       time.Time         `json:"createdAt,omitzero"`
}

// BookingRequest is the request body for creating an appointment. DoctorID is
// the single canonical field name for the doctor reference.
type BookingRequest struct {
	DoctorID        int64     `json:"doctorId"`
	AppointmentDate time.Time `json:"appointmentDate"`
	Notes           string    `json:"notes,omitempty"`
}
