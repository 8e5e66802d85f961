package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	key := DeriveStorageKey([]byte("secret"), []byte("salt"))
	require.Len(t, key, 32)

	sealed, err := Seal([]byte("hello"), key)
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "hello")

	opened, err := Open(sealed, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), opened)
}

func TestSeal_FreshNoncePerCall(t *testing.T) {
	key := DeriveStorageKey([]byte("secret"), []byte("salt"))

	a, err := Seal([]byte("same"), key)
	require.NoError(t, err)
	b, err := Seal([]byte("same"), key)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestOpen_WrongKey(t *testing.T) {
	key := DeriveStorageKey([]byte("secret"), []byte("salt"))
	sealed, err := Seal([]byte("hello"), key)
	require.NoError(t, err)

	other := DeriveStorageKey([]byte("other"), []byte("salt"))
	_, err = Open(sealed, other)
	require.Error(t, err)
}

func TestOpen_Tampered(t *testing.T) {
	key := DeriveStorageKey([]byte("secret"), []byte("salt"))
	sealed, err := Seal([]byte("hello"), key)
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0xFF
	_, err = Open(sealed, key)
	require.Error(t, err)
}

func TestOpen_TooShort(t *testing.T) {
	key := DeriveStorageKey([]byte("secret"), []byte("salt"))
	_, err := Open([]byte{1, 2, 3}, key)
	require.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestDeriveStorageKey_Deterministic(t *testing.T) {
	a := DeriveStorageKey([]byte("secret"), []byte("salt"))
	b := DeriveStorageKey([]byte("secret"), []byte("salt"))
	assert.Equal(t, a, b)

	c := DeriveStorageKey([]byte("secret"), []byte("other"))
	assert.NotEqual(t, a, c)
}
