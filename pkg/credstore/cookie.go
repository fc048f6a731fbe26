package credstore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"
)

// CookieStore keeps the access token as a persisted cookie in a jar file,
// mirroring the browser cookie the web frontend sets. The cookie name is the
// system-wide CookieName constant; no other name is ever read or written.
type CookieStore struct {
	mu     sync.Mutex
	path   string
	domain string
	maxAge time.Duration
	now    func() time.Time
}

// jarEntry is one persisted cookie. The jar may hold cookies for several
// domains; only the token cookie for the configured domain is this store's
// concern.
type jarEntry struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Domain  string    `json:"domain"`
	Path    string    `json:"path"`
	Expires time.Time `json:"expires"`
}

// NewCookieStore creates a cookie-jar store for the given API domain.
func NewCookieStore(path, domain string, maxAge time.Duration) *CookieStore {
	return &CookieStore{
		path:   path,
		domain: domain,
		maxAge: maxAge,
		now:    time.Now,
	}
}

// Token returns the token cookie's value, or ErrNoCredential when the cookie
// is absent or expired.
func (s *CookieStore) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return "", err
	}

	for _, e := range entries {
		if e.Name != CookieName || e.Domain != s.domain {
			continue
		}
		if !e.Expires.IsZero() && s.now().After(e.Expires) {
			return "", ErrNoCredential
		}
		if e.Value == "" {
			return "", ErrNoCredential
		}
		return e.Value, nil
	}
	return "", ErrNoCredential
}

// SetToken writes the token cookie, replacing any previous one for the domain.
func (s *CookieStore) SetToken(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.Name == CookieName && e.Domain == s.domain {
			continue
		}
		kept = append(kept, e)
	}

	kept = append(kept, jarEntry{
		Name:    CookieName,
		Value:   token,
		Domain:  s.domain,
		Path:    "/",
		Expires: s.now().Add(s.maxAge),
	})

	return s.save(kept)
}

// Clear removes the token cookie. Cookies for other domains or names are left
// alone.
func (s *CookieStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.Name == CookieName && e.Domain == s.domain {
			continue
		}
		kept = append(kept, e)
	}

	if len(kept) == 0 {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
	return s.save(kept)
}

func (s *CookieStore) load() ([]jarEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var entries []jarEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		// A corrupt jar is unrecoverable state, not an error condition:
		// treat it as empty and let the next write replace it.
		return nil, nil
	}
	return entries, nil
}

func (s *CookieStore) save(entries []jarEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return writeFileAtomic(s.path, data)
}
