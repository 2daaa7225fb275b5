package handler

import (
	"sync"
	"time"

	"goalbot/internal/domain"
)

type sessionEntry struct {
	session domain.Session
	touched time.Time
}

// SessionStore keeps the dialog session of every chat in memory
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]sessionEntry
	now      func() time.Time
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]sessionEntry),
		now:      time.Now,
	}
}

// GetState returns the chat's session, idle if the chat has none yet
func (s *SessionStore) GetState(chatID int64) domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.sessions[chatID]
	if !exists {
		return domain.NewIdleSession(chatID)
	}
	return entry.session
}

// SetState stores the chat's session
func (s *SessionStore) SetState(session domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ChatID()] = sessionEntry{session: session, touched: s.now()}
}

// Prune drops sessions not touched within ttl and returns how many were removed
func (s *SessionStore) Prune(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)
	removed := 0
	for chatID, entry := range s.sessions {
		if entry.touched.Before(cutoff) {
			delete(s.sessions, chatID)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked chats
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
