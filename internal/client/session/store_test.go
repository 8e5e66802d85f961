package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkedapp/forked/internal/client/models"
	"github.com/forkedapp/forked/internal/logging"
)

// ---- fake storage ----

type fakeStorage struct {
	data   map[string][]byte
	setErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{data: map[string][]byte{}}
}

func (f *fakeStorage) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := f.data[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (f *fakeStorage) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

// Apply mirrors the real storage contract: the batch lands whole or not at
// all.
func (f *fakeStorage) Apply(ctx context.Context, set map[string][]byte, del []string) error {
	if f.setErr != nil {
		return f.setErr
	}
	for key, value := range set {
		f.data[key] = append([]byte(nil), value...)
	}
	for _, key := range del {
		delete(f.data, key)
	}
	return nil
}

func (f *fakeStorage) Clear(ctx context.Context) error {
	f.data = map[string][]byte{}
	return nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testAccount() *models.Account {
	phone := "+15551234567"
	color := "#1976D2"
	return &models.Account{
		ID:       7,
		Username: "ann42",
		Email:    "ann@example.com",
		Token:    "tkn123",
		Phone:    &phone,
		Color:    &color,
	}
}

// ---- TESTS ----

func TestStore_SetCurrent_PersistsAllFields(t *testing.T) {
	ctx := context.Background()
	storage := newFakeStorage()
	s := NewStore(storage, testLogger())

	require.NoError(t, s.SetCurrent(ctx, testAccount()))

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "ann42", current.Username)

	token, ok := s.Token()
	require.True(t, ok)
	assert.Equal(t, "tkn123", token)

	assert.Equal(t, "ann42", string(storage.data[keyUsername]))
	assert.Equal(t, "ann@example.com", string(storage.data[keyEmail]))
	assert.Equal(t, "tkn123", string(storage.data[keyToken]))
	assert.Equal(t, "7", string(storage.data[keyID]))
	assert.Equal(t, "+15551234567", string(storage.data[keyPhone]))
	assert.Equal(t, "#1976D2", string(storage.data[keyColor]))
}

func TestStore_SetCurrent_FailureLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	storage := newFakeStorage()
	s := NewStore(storage, testLogger())

	storage.setErr = errors.New("disk full")
	require.Error(t, s.SetCurrent(ctx, testAccount()))

	_, ok := s.Current()
	assert.False(t, ok)
	_, ok = s.Token()
	assert.False(t, ok)

	// the mirror must not hold the failed login's credentials either: a
	// fresh process must not resurrect an account that never became current
	assert.Empty(t, storage.data)

	fresh := NewStore(storage, testLogger())
	account, err := fresh.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	storage := newFakeStorage()
	s := NewStore(storage, testLogger())

	require.NoError(t, s.SetCurrent(ctx, testAccount()))
	s.Clear(ctx)

	_, ok := s.Current()
	assert.False(t, ok)
	assert.Empty(t, storage.data, "every persisted field must be gone")
}

func TestStore_Restore(t *testing.T) {
	ctx := context.Background()
	storage := newFakeStorage()

	seed := NewStore(storage, testLogger())
	require.NoError(t, seed.SetCurrent(ctx, testAccount()))

	// a fresh process restores the session from the mirror
	s := NewStore(storage, testLogger())
	account, err := s.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, account)

	assert.Equal(t, int64(7), account.ID)
	assert.Equal(t, "ann42", account.Username)
	assert.Equal(t, "ann@example.com", account.Email)
	assert.Equal(t, "tkn123", account.Token)
	require.NotNil(t, account.Phone)
	assert.Equal(t, "+15551234567", *account.Phone)

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, account.ID, current.ID)
}

func TestStore_Restore_MissingRequiredField(t *testing.T) {
	ctx := context.Background()

	for _, missing := range []string{keyUsername, keyEmail, keyToken, keyID} {
		t.Run(missing, func(t *testing.T) {
			storage := newFakeStorage()
			seed := NewStore(storage, testLogger())
			require.NoError(t, seed.SetCurrent(ctx, testAccount()))
			delete(storage.data, missing)

			s := NewStore(storage, testLogger())
			account, err := s.Restore(ctx)
			require.NoError(t, err)
			assert.Nil(t, account, "a gap means no session, never a partial account")

			_, ok := s.Current()
			assert.False(t, ok)
		})
	}
}

func TestStore_Restore_UnparseableID(t *testing.T) {
	ctx := context.Background()
	storage := newFakeStorage()
	seed := NewStore(storage, testLogger())
	require.NoError(t, seed.SetCurrent(ctx, testAccount()))
	storage.data[keyID] = []byte("seven")

	s := NewStore(storage, testLogger())
	account, err := s.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestStore_Events(t *testing.T) {
	ctx := context.Background()
	s := NewStore(newFakeStorage(), testLogger())

	events, cancel := s.Subscribe()
	defer cancel()

	require.NoError(t, s.SetCurrent(ctx, testAccount()))
	e := <-events
	assert.Equal(t, EventLogin, e.Kind)
	require.NotNil(t, e.Account)
	assert.Equal(t, "ann42", e.Account.Username)

	s.Clear(ctx)
	e = <-events
	assert.Equal(t, EventLogout, e.Kind)
	assert.Nil(t, e.Account)
}

func TestStore_SubscribeCancel(t *testing.T) {
	ctx := context.Background()
	s := NewStore(newFakeStorage(), testLogger())

	events, cancel := s.Subscribe()
	cancel()

	_, open := <-events
	assert.False(t, open, "cancel closes the channel")

	// publishing after cancel must not panic
	require.NoError(t, s.SetCurrent(ctx, testAccount()))
}
