package credstore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps the access token in a JSON state file, the client-side
// equivalent of origin-scoped local storage. The file is written with 0600
// permissions since it holds a live credential.
type FileStore struct {
	mu   sync.Mutex
	path string
}

type credentialFile struct {
	AccessToken string `json:"accessToken"`
}

// NewFileStore creates a file store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Token reads the stored access token.
func (s *FileStore) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoCredential
		}
		return "", err
	}

	var cred credentialFile
	if err := json.Unmarshal(data, &cred); err != nil {
		// A corrupt state file is treated as no credential; the next
		// write replaces it wholesale.
		return "", ErrNoCredential
	}

	if cred.AccessToken == "" {
		return "", ErrNoCredential
	}
	return cred.AccessToken, nil
}

// SetToken writes the token, replacing the state file atomically.
func (s *FileStore) SetToken(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(credentialFile{AccessToken: token})
	if err != nil {
		return err
	}
	return writeFileAtomic(s.path, data)
}

// Clear removes the state file. A missing file counts as cleared.
func (s *FileStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// writeFileAtomic writes via a temp file and rename so a crash mid-write never
// leaves a truncated credential file behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".credstore-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
