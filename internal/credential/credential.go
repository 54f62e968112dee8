// Package credential stores API secrets by name.
package credential

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"vivo-app/internal/config"
	"vivo-app/internal/logger"
)

// ErrNotFound is returned when no secret is stored under a name.
var ErrNotFound = errors.New("credential not found")

// Store reads and writes named secrets. Setting an empty value deletes the secret.
type Store interface {
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, value string) error
}

// StaticStore keeps secrets in memory. It is seeded from configuration.
type StaticStore struct {
	mu      sync.RWMutex
	secrets map[string]string
}

// NewStaticStore creates a StaticStore holding a copy of seed.
func NewStaticStore(seed map[string]string) *StaticStore {
	secrets := make(map[string]string, len(seed))
	for k, v := range seed {
		if v != "" {
			secrets[k] = v
		}
	}
	return &StaticStore{secrets: secrets}
}

func (s *StaticStore) Get(ctx context.Context, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.secrets[name]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *StaticStore) Set(ctx context.Context, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if value == "" {
		delete(s.secrets, name)
		return nil
	}
	s.secrets[name] = value
	return nil
}

// New builds the Store selected by cfg.Backend.
func New(cfg config.CredentialsConfig, log logger.Logger) (Store, error) {
	switch cfg.Backend {
	case "", "static":
		return NewStaticStore(cfg.Static), nil
	case "vault":
		store, err := NewVaultStore(cfg.Vault)
		if err != nil {
			return nil, err
		}
		log.Info(fmt.Sprintf("Using Vault credential store at %s/%s", cfg.Vault.Mount, cfg.Vault.Path))
		return store, nil
	default:
		return nil, fmt.Errorf("unknown credential backend %q", cfg.Backend)
	}
}
