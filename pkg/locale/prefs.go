package locale

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// PrefStore persists the chosen language code to a single small file. It
// satisfies the session manager's locale store contract: Load never fails,
// and a missing or unreadable file reads as the default.
type PrefStore struct {
	mu   sync.Mutex
	path string
}

// NewPrefStore returns a store backed by the file at path. The parent
// directory is created on first save.
func NewPrefStore(path string) *PrefStore {
	return &PrefStore{path: path}
}

// Load returns the persisted code, normalized against the supported set. Any
// read failure falls back to Default silently; preference is cosmetic state
// and must never block startup.
func (s *PrefStore) Load() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return Default
	}
	return Normalize(strings.TrimSpace(string(data)))
}

// Save persists the code for the next session. The code is normalized before
// writing so the file only ever holds a supported value.
func (s *PrefStore) Save(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Join(ErrFailedToSavePref, err)
	}
	if err := os.WriteFile(s.path, []byte(Normalize(code)+"\n"), 0o600); err != nil {
		return errors.Join(ErrFailedToSavePref, err)
	}
	return nil
}
