package credstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// CookieName is the single cookie name used across the whole system for the
// access token. Every consumer (HTTP client, session manager, route guard,
// edge gateway) must resolve the credential through this constant.
const CookieName = "mediflow_token"

// Store persists and resolves the access token for one storage location.
type Store interface {
	// Token returns the stored access token, or ErrNoCredential when the
	// location holds none.
	Token(ctx context.Context) (string, error)

	// SetToken persists the access token, replacing any previous value.
	SetToken(ctx context.Context, token string) error

	// Clear erases the stored token. Clearing an empty location is not an
	// error.
	Clear(ctx context.Context) error
}

// Config holds credential storage configuration.
type Config struct {
	// Dir is the state directory holding the credential file and cookie
	// jar. Empty means <user config dir>/mediflow.
	Dir string `env:"MEDIFLOW_STATE_DIR"`

	// CookieMaxAge bounds the lifetime of the persisted token cookie.
	CookieMaxAge time.Duration `env:"MEDIFLOW_COOKIE_MAX_AGE" envDefault:"168h"`
}

// New builds the canonical composite store for the given API origin: file
// store first, cookie jar second. The state directory is created on demand.
func New(cfg Config, origin string) (*Composite, error) {
	dir := cfg.Dir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "mediflow")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}

	maxAge := cfg.CookieMaxAge
	if maxAge <= 0 {
		maxAge = 7 * 24 * time.Hour
	}

	return NewComposite(
		NewFileStore(filepath.Join(dir, "credentials.json")),
		NewCookieStore(filepath.Join(dir, "cookies.json"), origin, maxAge),
	), nil
}

// Composite resolves the token from an ordered list of stores. Reads return
// the first hit; writes and clears fan out to every store.
type Composite struct {
	stores []Store
}

// NewComposite creates a composite store with the given precedence order.
func NewComposite(stores ...Store) *Composite {
	return &Composite{stores: stores}
}

// Token returns the token from the first store that holds one. A stale copy
// in a later store is ignored, not an error: the precedence order is the
// deterministic resolution for conflicting storage.
func (c *Composite) Token(ctx context.Context) (string, error) {
	for _, s := range c.stores {
		token, err := s.Token(ctx)
		if err == nil && token != "" {
			return token, nil
		}
		// An aborted lookup is not "no credential anywhere".
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
	}
	return "", ErrNoCredential
}

// SetToken writes the token to every store so that any reader finds it,
// regardless of which location it checks first. If any write fails, all
// locations are cleared again so no partial copy survives.
func (c *Composite) SetToken(ctx context.Context, token string) error {
	for _, s := range c.stores {
		if err := s.SetToken(ctx, token); err != nil {
			_ = c.Clear(ctx)
			return errors.Join(ErrPersist, err)
		}
	}
	return nil
}

// Clear erases every store. Failures do not short-circuit: each location is
// attempted, and the joined errors are reported afterwards.
func (c *Composite) Clear(ctx context.Context) error {
	var errs []error
	for _, s := range c.stores {
		if err := s.Clear(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrClear}, errs...)...)
	}
	return nil
}
