package session

import (
	"context"
	"errors"
	"sync"
)

// ErrSessionNotFound is returned when a user has no session yet.
var ErrSessionNotFound = errors.New("session not found")

// ErrStoreClosed is returned when operating on a closed store.
var ErrStoreClosed = errors.New("session store is closed")

// Store is the session repository injected into the conversation engine.
// Update serializes access per user id: the state machine assumes exactly
// one in-flight transition per user at a time.
type Store interface {
	// Get returns the session for a user, or ErrSessionNotFound.
	Get(ctx context.Context, userID string) (*UserSession, error)

	// Update runs fn with exclusive access to the user's session,
	// creating the session on first contact. Changes made by fn are
	// persisted when it returns nil.
	Update(ctx context.Context, userID string, fn func(*UserSession) error) error

	// Count returns the number of sessions.
	Count(ctx context.Context) (int, error)

	// ActiveCount returns the number of sessions with logged food today.
	ActiveCount(ctx context.Context) (int, error)

	// Each visits every session under the store lock, for sweeps and
	// scheduled resets. fn must not retain the session.
	Each(ctx context.Context, fn func(*UserSession)) error

	// Close releases store resources.
	Close() error
}

// MemoryStore is the in-process Store: a map guarded by a store-level
// mutex plus one mutex per user key so concurrent transports cannot
// interleave two transitions for the same user.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*UserSession
	locks    map[string]*sync.Mutex
	closed   bool
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*UserSession),
		locks:    make(map[string]*sync.Mutex),
	}
}

// Get returns a copy-free reference for read-only use. Callers that
// mutate must go through Update.
func (m *MemoryStore) Get(ctx context.Context, userID string) (*UserSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrStoreClosed
	}
	sess, ok := m.sessions[userID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Update locks the user key, creating the session on first contact.
func (m *MemoryStore) Update(ctx context.Context, userID string, fn func(*UserSession) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrStoreClosed
	}
	lock, ok := m.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[userID] = lock
	}
	sess, ok := m.sessions[userID]
	if !ok {
		sess = NewUserSession(userID)
		m.sessions[userID] = sess
	}
	m.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()
	return fn(sess)
}

// Count returns the number of sessions.
func (m *MemoryStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return 0, ErrStoreClosed
	}
	return len(m.sessions), nil
}

// ActiveCount returns sessions that logged food today. Counters are read
// under each per-key lock so an in-flight Update is never observed
// half-done.
func (m *MemoryStore) ActiveCount(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	if m.closed {
		m.mu.RUnlock()
		return 0, ErrStoreClosed
	}
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	m.mu.RUnlock()

	active := 0
	for _, id := range ids {
		m.mu.RLock()
		sess, ok := m.sessions[id]
		lock := m.locks[id]
		m.mu.RUnlock()
		if !ok {
			continue
		}
		lock.Lock()
		if sess.Consumed > 0 {
			active++
		}
		lock.Unlock()
	}
	return active, nil
}

// Each visits all sessions while holding each per-user lock in turn.
func (m *MemoryStore) Each(ctx context.Context, fn func(*UserSession)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	if m.closed {
		m.mu.RUnlock()
		return ErrStoreClosed
	}
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	m.mu.RUnlock()

	for _, id := range ids {
		m.mu.RLock()
		sess, ok := m.sessions[id]
		lock := m.locks[id]
		m.mu.RUnlock()
		if !ok {
			continue
		}
		lock.Lock()
		fn(sess)
		lock.Unlock()
	}
	return nil
}

// Close empties the store. Sessions do not survive a restart.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.sessions = nil
	m.locks = nil
	return nil
}
