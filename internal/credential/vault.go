package credential

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"vivo-app/internal/config"

	vault "github.com/hashicorp/vault/api"
)

// VaultStore keeps secrets as fields of one HashiCorp Vault KV-v2 secret.
// Reads are cached per field for the configured TTL.
type VaultStore struct {
	kv   *vault.KVv2
	path string
	ttl  time.Duration

	// writeMu serializes read-modify-write cycles on the secret.
	writeMu sync.Mutex

	cacheMu sync.RWMutex
	cache   map[string]cached
}

type cached struct {
	val string
	exp time.Time
}

// NewVaultStore creates a VaultStore. Address and token fall back to the
// VAULT_ADDR and VAULT_TOKEN environment variables.
func NewVaultStore(cfg config.VaultConfig) (*VaultStore, error) {
	vcfg := vault.DefaultConfig()
	if err := vcfg.ReadEnvironment(); err != nil {
		return nil, fmt.Errorf("vault env cfg: %w", err)
	}
	if cfg.Address != "" {
		vcfg.Address = cfg.Address
	}

	apiCli, err := vault.NewClient(vcfg)
	if err != nil {
		return nil, fmt.Errorf("vault api: %w", err)
	}
	if cfg.Token != "" {
		apiCli.SetToken(cfg.Token)
	}

	mount := cfg.Mount
	if mount == "" {
		mount = "secret"
	}
	return &VaultStore{
		kv:    apiCli.KVv2(mount),
		path:  cfg.Path,
		ttl:   cfg.CacheTTL,
		cache: make(map[string]cached),
	}, nil
}

func (s *VaultStore) Get(ctx context.Context, name string) (string, error) {
	if s.ttl > 0 {
		s.cacheMu.RLock()
		if cv, ok := s.cache[name]; ok && time.Now().Before(cv.exp) {
			s.cacheMu.RUnlock()
			return cv.val, nil
		}
		s.cacheMu.RUnlock()
	}

	data, err := s.read(ctx)
	if err != nil {
		return "", err
	}
	raw, ok := data[name]
	if !ok {
		return "", ErrNotFound
	}
	val, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("value at %s#%s is not a string", s.path, name)
	}
	if val == "" {
		return "", ErrNotFound
	}

	if s.ttl > 0 {
		s.cacheMu.Lock()
		s.cache[name] = cached{val: val, exp: time.Now().Add(s.ttl)}
		s.cacheMu.Unlock()
	}
	return val, nil
}

func (s *VaultStore) Set(ctx context.Context, name, value string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	data, err := s.read(ctx)
	if err != nil {
		return err
	}
	if value == "" {
		delete(data, name)
	} else {
		data[name] = value
	}

	if _, err := s.kv.Put(ctx, s.path, data); err != nil {
		return fmt.Errorf("vault put %s: %w", s.path, err)
	}

	s.cacheMu.Lock()
	delete(s.cache, name)
	s.cacheMu.Unlock()
	return nil
}

// read returns a copy of the secret's fields, empty when the secret does not exist yet.
func (s *VaultStore) read(ctx context.Context) (map[string]interface{}, error) {
	sec, err := s.kv.Get(ctx, s.path)
	if err != nil {
		if errors.Is(err, vault.ErrSecretNotFound) {
			return map[string]interface{}{}, nil
		}
		return nil, fmt.Errorf("vault get %s: %w", s.path, err)
	}
	data := make(map[string]interface{}, len(sec.Data))
	for k, v := range sec.Data {
		data[k] = v
	}
	return data, nil
}
