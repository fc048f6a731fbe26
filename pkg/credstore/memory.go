package credstore

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store for tests and ephemeral hosts.
type MemoryStore struct {
	mu    sync.Mutex
	token string

	// FailSet, when non-nil, is returned from SetToken. Tests use it to
	// exercise partial-write rollback in the composite.
	FailSet error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Token returns the stored token, or ErrNoCredential when empty.
func (s *MemoryStore) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return "", ErrNoCredential
	}
	return s.token, nil
}

// SetToken stores the token.
func (s *MemoryStore) SetToken(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailSet != nil {
		return s.FailSet
	}
	s.token = token
	return nil
}

// Clear erases the token.
func (s *MemoryStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	return nil
}
