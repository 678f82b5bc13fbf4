package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"sarc-client/internal/ports/credentials"
)

// CredentialStore guarda credenciales en memoria. Útil para tests y para
// procesos que no quieren dejar el token en disco.
type CredentialStore struct {
	mu      sync.RWMutex
	valores map[string]string
}

func NewCredentialStore() *CredentialStore {
	return &CredentialStore{
		valores: make(map[string]string),
	}
}

func (s *CredentialStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.valores[key]
	if !ok {
		return "", credentials.ErrNotFound
	}
	return v, nil
}

func (s *CredentialStore) Set(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("credential key required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.valores[key] = value
	return nil
}

func (s *CredentialStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.valores, key)
	return nil
}
