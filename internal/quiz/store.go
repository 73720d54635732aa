package quiz

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned for unknown or expired sessions.
var ErrSessionNotFound = errors.New("session not found")

// Store keeps sessions between requests. Update must apply fn atomically
// with respect to other updates of the same session. fn may run more than
// once (RedisStore retries on conflicts), so it must only touch the session.
type Store interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Update(ctx context.Context, id uuid.UUID, fn func(*Session) error) (*Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type memoryEntry struct {
	session   *Session
	expiresAt time.Time
}

// MemoryStore is a process-local Store with sliding expiry.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[uuid.UUID]memoryEntry
}

// NewMemoryStore creates a store whose sessions expire ttl after their last
// write.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[uuid.UUID]memoryEntry),
	}
}

func (m *MemoryStore) Create(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = memoryEntry{session: s.Clone(), expiresAt: m.now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id uuid.UUID) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.live(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return entry.session.Clone(), nil
}

func (m *MemoryStore) Update(_ context.Context, id uuid.UUID, fn func(*Session) error) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.live(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	working := entry.session.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	m.sessions[id] = memoryEntry{session: working, expiresAt: m.now().Add(m.ttl)}
	return working.Clone(), nil
}

func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.live(id); !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

// Sweep drops expired sessions and returns how many were removed.
func (m *MemoryStore) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, entry := range m.sessions {
		if !now.Before(entry.expiresAt) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored sessions, expired or not.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// live must be called with mu held.
func (m *MemoryStore) live(id uuid.UUID) (memoryEntry, bool) {
	entry, ok := m.sessions[id]
	if !ok {
		return memoryEntry{}, false
	}
	if !m.now().Before(entry.expiresAt) {
		delete(m.sessions, id)
		return memoryEntry{}, false
	}
	return entry, true
}
