package identity

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// TokenStore persists the bearer token between runs, the way the SPA kept it
// in local storage. It is a convenience signal only; the provider always
// revalidates against the backend.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

type FileTokenStore struct {
	Path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{Path: path}
}

func (s *FileTokenStore) Load() (string, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// memTokenStore keeps the token for the lifetime of the process. Used when no
// path is configured and in tests.
type memTokenStore struct {
	token string
}

func NewMemTokenStore() TokenStore { return &memTokenStore{} }

func (s *memTokenStore) Load() (string, error)  { return s.token, nil }
func (s *memTokenStore) Save(t string) error    { s.token = t; return nil }
func (s *memTokenStore) Clear() error           { s.token = ""; return nil }
