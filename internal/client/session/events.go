package session

import "github.com/forkedapp/forked/internal/client/models"

// EventKind distinguishes session transitions.
type EventKind int

const (
	EventLogin EventKind = iota
	EventLogout
)

// Event is delivered to subscribers on login and logout. Account is set for
// login events only.
type Event struct {
	Kind    EventKind
	Account *models.Account
}

// Subscribe registers an observer of session transitions. The returned
// cancel function must be called when the observer is done; it closes the
// channel. Slow subscribers do not block the store; events they cannot
// keep up with are dropped.
func (s *Store) Subscribe() (<-chan Event, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan Event, 8)
	s.subs[id] = ch

	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (s *Store) publish(e Event) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- e:
		default:
		}
	}
}
