package calculator

import (
	"errors"
	"sync"
	"time"

	"calcweather/internal/models"
)

var ErrSessionNotFound = errors.New("calculator session not found")

// Store keeps sessions in memory and expires the ones left idle longer than ttl.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewStore creates a store; a zero ttl keeps sessions until deleted.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (s *Store) Put(sess *Session) models.CalculatorView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.ID] = sess
	return sess.View()
}

// Update runs fn on the session under the store lock and returns the resulting view.
func (s *Store) Update(id string, fn func(*Session)) (models.CalculatorView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id, time.Now())
	if err != nil {
		return models.CalculatorView{}, err
	}
	fn(sess)
	return sess.View(), nil
}

func (s *Store) Get(id string) (models.CalculatorView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id, time.Now())
	if err != nil {
		return models.CalculatorView{}, err
	}
	return sess.View(), nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Sweep drops every session idle since before now-ttl and returns how many went.
func (s *Store) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// lookup must be called with mu held.
func (s *Store) lookup(id string, now time.Time) (*Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.expired(sess, now) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *Store) expired(sess *Session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.updatedAt) > s.ttl
}
