package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"sarc-client/internal/ports/credentials"
)

// CredentialStore persiste las credenciales como un JSON plano en disco.
// Es el equivalente local del AsyncStorage que usaba el app móvil.
// Archivo 0600: el token de sesión no debe quedar legible para otros users.
type CredentialStore struct {
	mu   sync.Mutex
	path string
}

func NewCredentialStore(path string) (*CredentialStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("file: path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("file: mkdir: %w", err)
	}
	return &CredentialStore{path: path}, nil
}

func (s *CredentialStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	valores, err := s.load()
	if err != nil {
		return "", err
	}
	v, ok := valores[key]
	if !ok {
		return "", credentials.ErrNotFound
	}
	return v, nil
}

func (s *CredentialStore) Set(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("file: key required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	valores, err := s.load()
	if err != nil {
		return err
	}
	valores[key] = value
	return s.save(valores)
}

func (s *CredentialStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	valores, err := s.load()
	if err != nil {
		return err
	}
	delete(valores, key)
	return s.save(valores)
}

func (s *CredentialStore) load() (map[string]string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("file: read: %w", err)
	}
	valores := map[string]string{}
	if len(b) > 0 {
		if err := json.Unmarshal(b, &valores); err != nil {
			return nil, fmt.Errorf("file: parse: %w", err)
		}
	}
	return valores, nil
}

func (s *CredentialStore) save(valores map[string]string) error {
	b, err := json.MarshalIndent(valores, "", "  ")
	if err != nil {
		return fmt.Errorf("file: marshal: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("file: write: %w", err)
	}
	return nil
}
