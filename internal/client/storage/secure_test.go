package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkedapp/forked/internal/common"
	"github.com/forkedapp/forked/internal/cryptox"
)

func testKey() []byte {
	return cryptox.DeriveStorageKey([]byte("test-secret"), []byte("test-salt-16byte"))
}

func TestSecureStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))
	s := NewSecureStore(repo, testKey())

	require.NoError(t, s.Set(ctx, "v1:token", []byte("super-secret")))

	// the raw row is sealed, not plaintext
	raw, err := repo.Get(ctx, "v1:token")
	require.NoError(t, err)
	assert.NotEqual(t, []byte("super-secret"), raw)

	got, err := s.Get(ctx, "v1:token")
	require.NoError(t, err)
	assert.Equal(t, []byte("super-secret"), got)
}

func TestSecureStore_Apply(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))
	s := NewSecureStore(repo, testKey())

	require.NoError(t, s.Set(ctx, "v1:phone", []byte("+15551234567")))

	err := s.Apply(ctx, map[string][]byte{
		"v1:username": []byte("ann42"),
		"v1:token":    []byte("tkn123"),
	}, []string{"v1:phone"})
	require.NoError(t, err)

	// values land sealed and read back through the store
	raw, err := repo.Get(ctx, "v1:token")
	require.NoError(t, err)
	assert.NotEqual(t, []byte("tkn123"), raw)

	got, err := s.Get(ctx, "v1:token")
	require.NoError(t, err)
	assert.Equal(t, []byte("tkn123"), got)

	got, err = s.Get(ctx, "v1:phone")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSecureStore_GetAbsent(t *testing.T) {
	ctx := context.Background()
	s := NewSecureStore(NewSQLiteRepository(setupDB(t)), testKey())

	got, err := s.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSecureStore_WrongKey(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	writer := NewSecureStore(repo, testKey())
	require.NoError(t, writer.Set(ctx, "k", []byte("v")))

	reader := NewSecureStore(repo, cryptox.DeriveStorageKey([]byte("other"), []byte("other-salt-16byt")))
	_, err := reader.Get(ctx, "k")
	require.Error(t, err)
}

func TestLoadOrCreateSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.secret")

	first, err := LoadOrCreateSecret(path)
	require.NoError(t, err)
	require.Len(t, first, 32)

	// second call reads the same file and derives the same key
	second, err := LoadOrCreateSecret(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadOrCreateSecret_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.secret")
	require.NoError(t, os.WriteFile(path, common.GenerateRandByteArray(10), 0o600))

	_, err := LoadOrCreateSecret(path)
	require.Error(t, err)
}
