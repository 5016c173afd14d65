package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLeadSessions bounds how many visitor forms are held at once
const DefaultMaxLeadSessions = 10000

// LeadSessionStore keeps one LeadFormController per visitor in memory.
// Sessions idle for longer than the TTL are dropped by Sweep. Once MaxSessions
// is reached, creating a session evicts the least recently seen one.
type LeadSessionStore struct {
	MaxSessions int

	mu       sync.Mutex
	sessions map[string]*leadSession
	ttl      time.Duration
	factory  func() *LeadFormController
	now      func() time.Time
}

type leadSession struct {
	controller *LeadFormController
	lastSeen   time.Time
}

// NewLeadSessionStore creates a store whose controllers come from factory
func NewLeadSessionStore(ttl time.Duration, factory func() *LeadFormController) *LeadSessionStore {
	if factory == nil {
		factory = func() *LeadFormController { return NewLeadFormController(nil) }
	}
	return &LeadSessionStore{
		MaxSessions: DefaultMaxLeadSessions,
		sessions:    make(map[string]*leadSession),
		ttl:         ttl,
		factory:     factory,
		now:         time.Now,
	}
}

// GetOrCreate returns the controller for id, touching its expiry. Unknown or
// expired ids get a fresh session under a newly generated id, which is
// returned so the caller can hand it back to the visitor.
func (s *LeadSessionStore) GetOrCreate(id string) (string, *LeadFormController) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if id != "" {
		if sess, ok := s.sessions[id]; ok {
			if !s.expired(sess, now) {
				sess.lastSeen = now
				return id, sess.controller
			}
			delete(s.sessions, id)
		}
	}

	if s.MaxSessions > 0 && len(s.sessions) >= s.MaxSessions {
		s.evictLocked(now)
	}

	newID := uuid.New().String()
	sess := &leadSession{controller: s.factory(), lastSeen: now}
	s.sessions[newID] = sess
	return newID, sess.controller
}

// Get returns the controller for id without creating one, touching its expiry
func (s *LeadSessionStore) Get(id string) (*LeadFormController, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess, ok := s.sessions[id]
	if !ok || s.expired(sess, now) {
		return nil, false
	}
	sess.lastSeen = now
	return sess.controller, true
}

// Delete forgets a session
func (s *LeadSessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of sessions held, expired ones included
func (s *LeadSessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes expired sessions and returns how many were removed
func (s *LeadSessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartCleanup sweeps expired sessions every interval until ctx is done
func (s *LeadSessionStore) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := s.Sweep(); removed > 0 {
					log.Printf("[INFO] Expired %d lead form sessions", removed)
				}
			}
		}
	}()
}

// evictLocked drops expired sessions and, if that frees nothing, the least
// recently seen one
func (s *LeadSessionStore) evictLocked(now time.Time) {
	var (
		oldestID string
		oldest   time.Time
		freed    bool
	)
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			freed = true
			continue
		}
		if oldestID == "" || sess.lastSeen.Before(oldest) {
			oldestID, oldest = id, sess.lastSeen
		}
	}
	if !freed && oldestID != "" {
		delete(s.sessions, oldestID)
		log.Printf("[WARNING] Lead session store full (%d), evicted least recently seen session", s.MaxSessions)
	}
}

func (s *LeadSessionStore) expired(sess *leadSession, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.lastSeen) > s.ttl
}
