package session

import (
	"context"

	"github.com/mediflow/mediflow-go/pkg/apiclient"
)

// Status is the session lifecycle state.
type Status int

const (
	// StatusInitializing is the state before the first token validation
	// completes. Entered exactly once, at construction.
	StatusInitializing Status = iota

	// StatusAuthenticated means a validated user is attached. Holds if and
	// only if the session user is non-nil.
	StatusAuthenticated

	// StatusUnauthenticated means no credential, or a credential known to
	// be invalid (which has already been erased).
	StatusUnauthenticated
)

func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent read of the session state. User is a copy; mutating
// it does not affect the session.
type Snapshot struct {
	Status Status
	User   *apiclient.User
	Locale string
}

// Role returns the user's role, or the zero Role when no user is attached.
// Route guards branch on this without nil checks.
func (s Snapshot) Role() apiclient.Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

// API is the backend surface the session manager depends on. *apiclient.Client
// satisfies it; tests substitute fakes.
type API interface {
	Login(ctx context.Context, creds apiclient.Credentials) (*apiclient.AuthResponse, error)
	Register(ctx context.Context, reg apiclient.Registration) (*apiclient.AuthResponse, error)
	Profile(ctx context.Context) (*apiclient.User, error)
}

// LocaleStore persists the UI language selection independently of
// authentication state.
type LocaleStore interface {
	// Load returns the stored locale, or "" when none is stored. It never
	// fails; unreadable storage reads as empty.
	Load() string

	// Save persists the locale.
	Save(locale string) error
}
