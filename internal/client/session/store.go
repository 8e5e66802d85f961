// Package session holds the current authenticated account for the process
// and mirrors it to the secure local store, so a session survives restarts.
// The store is safe for use from any goroutine.
package session

import (
	"context"
	"strconv"
	"sync"

	"github.com/forkedapp/forked/internal/client/models"
	"github.com/forkedapp/forked/internal/logging"
)

// Persisted field keys. Versioned so a future layout change can migrate.
const (
	keyUsername = "v1:username"
	keyEmail    = "v1:email"
	keyToken    = "v1:token"
	keyID       = "v1:id"
	keyPhone    = "v1:phone"
	keyColor    = "v1:color"
)

// Storage is the secure key-value mirror. Get returns (nil, nil) for an
// absent key. Apply performs a batch of writes and deletes atomically: a
// failed batch leaves the mirror exactly as it was.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Apply(ctx context.Context, set map[string][]byte, del []string) error
	Clear(ctx context.Context) error
}

// Store is the single holder of the current account. At most one account is
// current per process.
type Store struct {
	storage Storage
	log     logging.Logger

	mu      sync.RWMutex
	current *models.Account

	subMu   sync.Mutex
	subs    map[int]chan Event
	nextSub int
}

func NewStore(storage Storage, log logging.Logger) *Store {
	return &Store{
		storage: storage,
		log:     log,
		subs:    make(map[int]chan Event),
	}
}

// Current returns the logged-in account, if any. The returned value is a
// copy; mutating it does not affect the store.
func (s *Store) Current() (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.Account{}, false
	}
	return *s.current, true
}

// Token returns the current session token. Satisfies api.TokenSource.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return "", false
	}
	return s.current.Token, true
}

// SetCurrent installs account as the session and persists every field to
// the mirror. If persisting fails, in-memory state is left untouched and
// the error is returned.
func (s *Store) SetCurrent(ctx context.Context, account *models.Account) error {
	if err := s.persist(ctx, account); err != nil {
		return err
	}

	s.mu.Lock()
	copied := *account
	s.current = &copied
	s.mu.Unlock()

	s.publish(Event{Kind: EventLogin, Account: &copied})
	return nil
}

// persist mirrors every account field in a single atomic batch. Either the
// mirror ends up holding the complete account or it stays exactly as it was;
// it never holds a partial one.
func (s *Store) persist(ctx context.Context, account *models.Account) error {
	set := map[string][]byte{
		keyUsername: []byte(account.Username),
		keyEmail:    []byte(account.Email),
		keyToken:    []byte(account.Token),
		keyID:       []byte(strconv.FormatInt(account.ID, 10)),
	}
	var del []string

	optional := map[string]*string{
		keyPhone: account.Phone,
		keyColor: account.Color,
	}
	for key, value := range optional {
		if value == nil {
			del = append(del, key)
			continue
		}
		set[key] = []byte(*value)
	}

	return s.storage.Apply(ctx, set, del)
}

// Clear ends the session: in-memory state is dropped, every persisted field
// is deleted best-effort, and a logout event is published. Clear never
// fails; deletion problems are logged and swallowed.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.storage.Clear(ctx); err != nil {
		s.log.Warn(ctx, "failed to wipe persisted credentials", "error", err)
	}

	s.publish(Event{Kind: EventLogout})
}

// Restore reconstructs the session from the mirror at process start. Email,
// username, token, and a parseable id must all be present; any gap means no
// session, never a partial account. A (nil, nil) return is the normal
// "not logged in" outcome.
func (s *Store) Restore(ctx context.Context) (*models.Account, error) {
	username, err := s.storage.Get(ctx, keyUsername)
	if err != nil {
		return nil, err
	}
	email, err := s.storage.Get(ctx, keyEmail)
	if err != nil {
		return nil, err
	}
	token, err := s.storage.Get(ctx, keyToken)
	if err != nil {
		return nil, err
	}
	rawID, err := s.storage.Get(ctx, keyID)
	if err != nil {
		return nil, err
	}

	if username == nil || email == nil || token == nil || rawID == nil {
		return nil, nil
	}
	id, err := strconv.ParseInt(string(rawID), 10, 64)
	if err != nil {
		s.log.Warn(ctx, "persisted account id is not parseable, ignoring session", "value", string(rawID))
		return nil, nil
	}

	account := &models.Account{
		ID:       id,
		Username: string(username),
		Email:    string(email),
		Token:    string(token),
	}
	if phone, err := s.storage.Get(ctx, keyPhone); err == nil && phone != nil {
		v := string(phone)
		account.Phone = &v
	}
	if color, err := s.storage.Get(ctx, keyColor); err == nil && color != nil {
		v := string(color)
		account.Color = &v
	}

	s.mu.Lock()
	s.current = account
	s.mu.Unlock()

	copied := *account
	s.publish(Event{Kind: EventLogin, Account: &copied})
	return account, nil
}
