package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/forkedapp/forked/internal/common"
	"github.com/forkedapp/forked/internal/cryptox"
)

const (
	secretSize = 32
	saltSize   = 16
)

// SecureStore seals values with AES-GCM before handing them to the
// underlying repository, and opens them on the way back.
type SecureStore struct {
	repo Repository
	key  []byte
}

func NewSecureStore(repo Repository, key []byte) *SecureStore {
	return &SecureStore{repo: repo, key: key}
}

func (s *SecureStore) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if sealed == nil {
		return nil, nil
	}
	value, err := cryptox.Open(sealed, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal credentials[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SecureStore) Set(ctx context.Context, key string, value []byte) error {
	sealed, err := cryptox.Seal(value, s.key)
	if err != nil {
		return fmt.Errorf("failed to seal credentials[%s]: %w", key, err)
	}
	return s.repo.Set(ctx, key, sealed)
}

func (s *SecureStore) Delete(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, key)
}

// Apply seals every value in the batch and hands the whole thing to the
// repository in one atomic unit. Either all writes and deletes land or none
// do.
func (s *SecureStore) Apply(ctx context.Context, set map[string][]byte, del []string) error {
	sealed := make(map[string][]byte, len(set))
	for key, value := range set {
		v, err := cryptox.Seal(value, s.key)
		if err != nil {
			return fmt.Errorf("failed to seal credentials[%s]: %w", key, err)
		}
		sealed[key] = v
	}
	return s.repo.Apply(ctx, sealed, del)
}

func (s *SecureStore) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

// LoadOrCreateSecret reads the device secret file, creating it with fresh
// random material on first run, and returns the derived storage key. The
// file holds secret||salt and is only readable by the owner.
func LoadOrCreateSecret(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		data = common.GenerateRandByteArray(secretSize + saltSize)
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return nil, fmt.Errorf("failed to write device secret: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to read device secret: %w", err)
	}
	if len(data) != secretSize+saltSize {
		return nil, fmt.Errorf("device secret file %s has unexpected size %d", path, len(data))
	}

	secret, salt := data[:secretSize], data[secretSize:]
	return cryptox.DeriveStorageKey(secret, salt), nil
}
