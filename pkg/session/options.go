package session

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithLocaleStore sets the store the UI language is persisted to. Without it
// the locale lives in memory only.
func WithLocaleStore(store LocaleStore) Option {
	return func(m *Manager) {
		m.locales = store
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithClock overrides the time source for token expiry checks. Tests use it.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}
