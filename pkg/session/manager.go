package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mediflow/mediflow-go/pkg/apiclient"
	"github.com/mediflow/mediflow-go/pkg/credstore"
	"github.com/mediflow/mediflow-go/pkg/logger"
)

// DefaultLocale is used until a stored or explicit selection exists.
const DefaultLocale = "tr"

// Manager is the single source of truth for the authentication session.
type Manager struct {
	api     API
	creds   credstore.Store
	locales LocaleStore
	log     *slog.Logger
	now     func() time.Time

	initOnce sync.Once
	ready    chan struct{}

	mu     sync.RWMutex
	status Status
	user   *apiclient.User
	token  string
	locale string

	// wipes counts credential-clearing transitions. Login captures it
	// before persisting and re-checks it before installing, so a logout
	// that lands inside that window is not overwritten.
	wipes uint64
}

// New creates a session manager in the Initializing state. The locale is
// restored immediately since it is not security-sensitive; everything else
// waits for Initialize.
func New(api API, creds credstore.Store, opts ...Option) *Manager {
	m := &Manager{
		api:    api,
		creds:  creds,
		log:    logger.Discard(),
		now:    time.Now,
		ready:  make(chan struct{}),
		status: StatusInitializing,
		locale: DefaultLocale,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.locales != nil {
		if stored := m.locales.Load(); stored != "" {
			m.locale = stored
		}
	}

	return m
}

// Initialize resolves any persisted token and validates it against the
// backend. It runs exactly once per Manager: concurrent and repeated callers
// block until the first run finishes and then observe the same terminal
// status. The status never remains Initializing, including on error.
func (m *Manager) Initialize(ctx context.Context) Status {
	m.initOnce.Do(func() {
		defer close(m.ready)
		m.initialize(ctx)
	})
	<-m.ready
	return m.Status()
}

func (m *Manager) initialize(ctx context.Context) {
	token, err := m.creds.Token(ctx)
	if err != nil {
		m.log.DebugContext(ctx, "no stored credential")
		m.setUnauthenticated()
		return
	}

	// A well-formed JWT past its expiry cannot validate; skip the doomed
	// round trip and clean up directly. Opaque tokens go to the backend.
	if expiredJWT(token, m.now()) {
		m.log.InfoContext(ctx, "stored token expired, clearing credentials")
		m.clearCredentials(ctx)
		m.setUnauthenticated()
		return
	}

	user, err := m.api.Profile(ctx)
	if err != nil {
		// Fail closed: expired, malformed or unreachable all end the
		// same way. The route guard handles the redirect.
		m.log.InfoContext(ctx, "stored token failed validation, clearing credentials", logger.Error(err))
		m.clearCredentials(ctx)
		m.setUnauthenticated()
		return
	}

	m.mu.Lock()
	m.token = token
	m.user = user
	m.status = StatusAuthenticated
	m.mu.Unlock()

	m.log.InfoContext(ctx, "session restored", logger.UserID(user.ID), logger.Role(string(user.Role)))
}

// Login authenticates with the backend and, on success, persists the token to
// every storage location before installing the user. On failure the session
// state is untouched and no partial token survives anywhere; the error is
// returned for the form layer to display.
//
// The returned user lets the caller pick a role-appropriate landing route;
// the manager itself does not navigate. A Logout that completes while the
// token is being persisted wins: the session stays unauthenticated and the
// raced token is cleared, though the returned user still reflects the
// backend's successful authentication.
func (m *Manager) Login(ctx context.Context, creds apiclient.Credentials) (*apiclient.User, error) {
	resp, err := m.api.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	return m.install(ctx, resp)
}

// Register creates an account and authenticates the new user in the same
// step. The contract matches Login.
func (m *Manager) Register(ctx context.Context, reg apiclient.Registration) (*apiclient.User, error) {
	resp, err := m.api.Register(ctx, reg)
	if err != nil {
		return nil, err
	}
	return m.install(ctx, resp)
}

func (m *Manager) install(ctx context.Context, resp *apiclient.AuthResponse) (*apiclient.User, error) {
	m.mu.RLock()
	wipes := m.wipes
	m.mu.RUnlock()

	if err := m.creds.SetToken(ctx, resp.AccessToken); err != nil {
		// The composite store rolled back, so being Authenticated with a
		// missing or mismatched persisted token is impossible.
		return nil, err
	}

	user := resp.User

	m.mu.Lock()
	if m.wipes != wipes {
		// A logout completed between the persist and this install. Its
		// clearing is authoritative: drop the token it raced past and
		// stay unauthenticated rather than hold a token in memory that
		// no storage location agrees on.
		m.mu.Unlock()
		m.clearCredentials(ctx)
		m.log.InfoContext(ctx, "logout during login, discarding token", logger.UserID(user.ID))
		return &user, nil
	}
	m.token = resp.AccessToken
	m.user = &user
	m.status = StatusAuthenticated
	m.mu.Unlock()

	m.log.InfoContext(ctx, "logged in", logger.UserID(user.ID), logger.Role(string(user.Role)))
	return &user, nil
}

// Logout erases every persisted credential copy and clears the in-memory
// state. It is client-authoritative: no network, never fails from the
// caller's perspective, idempotent, and its clearing effect applies even if
// another operation is still in flight.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.creds.Clear(ctx); err != nil {
		// Still proceed; in-memory state is cleared regardless.
		m.log.WarnContext(ctx, "failed to clear a credential location", logger.Error(err))
	}

	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.status = StatusUnauthenticated
	m.wipes++
	m.mu.Unlock()

	m.log.InfoContext(ctx, "logged out")
}

// RefreshUser re-fetches the profile for the held token, replacing the session
// user so the application observes profile edits. Failure is treated as
// expired-session detection: credentials and state are cleared, exactly like a
// failed Initialize, but the status does not re-enter Initializing and no
// redirect happens here - that is the route guard's job. The error is returned
// for callers refreshing after an explicit user action; background callers
// ignore it.
func (m *Manager) RefreshUser(ctx context.Context) error {
	user, err := m.api.Profile(ctx)
	if err != nil {
		m.log.InfoContext(ctx, "session refresh failed, clearing credentials", logger.Error(err))
		m.clearCredentials(ctx)
		m.setUnauthenticated()
		return err
	}

	m.mu.Lock()
	// A Logout that completed while the fetch was in flight wins: without
	// a token the refreshed user must not be reinstalled.
	if m.token != "" {
		m.user = user
		m.status = StatusAuthenticated
	}
	m.mu.Unlock()
	return nil
}

// SetLocale updates and persists the UI language. Independent of the
// authentication lifecycle; never fails.
func (m *Manager) SetLocale(locale string) {
	if locale == "" {
		locale = DefaultLocale
	}

	m.mu.Lock()
	m.locale = locale
	m.mu.Unlock()

	if m.locales != nil {
		if err := m.locales.Save(locale); err != nil {
			m.log.Warn("failed to persist locale", logger.Error(err))
		}
	}
}

// Locale returns the current UI language. Always non-empty.
func (m *Manager) Locale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.locale
}

// Status returns the current lifecycle state.
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// User returns a copy of the authenticated user, or nil.
func (m *Manager) User() *apiclient.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	user := *m.user
	return &user
}

// Token returns the held access token, or "" when unauthenticated.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Snapshot returns a consistent view of status, user and locale.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := Snapshot{Status: m.status, Locale: m.locale}
	if m.user != nil {
		user := *m.user
		snap.User = &user
	}
	return snap
}

// Ready is closed once Initialize has reached a terminal status. Hosts that
// render concurrently with startup wait on it instead of polling.
func (m *Manager) Ready() <-chan struct{} {
	return m.ready
}

func (m *Manager) setUnauthenticated() {
	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.status = StatusUnauthenticated
	m.wipes++
	m.mu.Unlock()
}

func (m *Manager) clearCredentials(ctx context.Context) {
	if err := m.creds.Clear(ctx); err != nil {
		m.log.WarnContext(ctx, "failed to clear a credential location", logger.Error(err))
	}
}
