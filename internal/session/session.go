// Package session holds the in-progress order of each ordering session.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/restauflow/internal/models"
)

var (
	// ErrNotFound is returned for unknown or expired sessions.
	ErrNotFound = errors.New("session not found or expired")

	// ErrCheckoutInProgress is returned when a session's order is being submitted.
	ErrCheckoutInProgress = errors.New("checkout in progress")
)

// Session is the state owned by one ordering session.
type Session struct {
	ID string

	// Order is the order being built.
	Order models.Order

	// TableID is the table a waiter is ordering for ("" for customer sessions).
	TableID string

	// GuestCount is the number of guests at the table.
	GuestCount int

	CreatedAt time.Time
	ExpiresAt time.Time

	// checkingOut is set between BeginCheckout and EndCheckout.
	checkingOut bool
}

func (s *Session) clone() *Session {
	c := *s
	c.Order.Lines = append([]models.OrderLine(nil), s.Order.Lines...)
	return &c
}

// Store keeps sessions in memory. Each session's order is only touched through
// Update. The store lock is only held for in-memory work; a session being checked
// out is frozen by a per-session mark instead.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a store whose sessions expire ttl after their last update.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create starts a new session with an empty order.
func (s *Store) Create(tableID string, guestCount int) *Session {
	now := s.now()
	sess := &Session{
		ID:         uuid.New().String(),
		Order:      models.Order{ID: uuid.New().String()},
		TableID:    tableID,
		GuestCount: guestCount,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return sess.clone()
}

// Get returns a copy of the session.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return sess.clone(), nil
}

// Update runs fn on a copy of the session and stores the copy only if fn succeeds.
// On error the stored session is unchanged. A successful update extends the expiry.
func (s *Store) Update(id string, fn func(*Session) error) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if sess.checkingOut {
		return nil, ErrCheckoutInProgress
	}
	return s.commit(sess, fn)
}

// BeginCheckout marks the session as checking out and returns a snapshot of it.
// Until EndCheckout is called, Update and a second BeginCheckout fail with
// ErrCheckoutInProgress and the session does not expire. Get still works.
func (s *Store) BeginCheckout(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if sess.checkingOut {
		return nil, ErrCheckoutInProgress
	}
	sess.checkingOut = true
	return sess.clone(), nil
}

// EndCheckout clears the checkout mark. A non-nil fn is applied like Update;
// if it fails the mark is still cleared and the session is left as it was.
func (s *Store) EndCheckout(id string, fn func(*Session) error) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	sess.checkingOut = false
	if fn == nil {
		return sess.clone(), nil
	}
	return s.commit(sess, fn)
}

// commit must be called with mu held.
func (s *Store) commit(sess *Session, fn func(*Session) error) (*Session, error) {
	next := sess.clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	next.ID = sess.ID
	next.checkingOut = sess.checkingOut
	next.ExpiresAt = s.now().Add(s.ttl)
	s.sessions[sess.ID] = next
	return next.clone(), nil
}

// Delete ends a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Sweep drops expired sessions and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		if !sess.checkingOut && now.After(sess.ExpiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len is the number of live sessions, expired ones included until swept.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// lookup must be called with mu held.
func (s *Store) lookup(id string) (*Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if !sess.checkingOut && s.now().After(sess.ExpiresAt) {
		delete(s.sessions, id)
		return nil, ErrNotFound
	}
	return sess, nil
}
