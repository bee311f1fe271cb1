package sessionstore

import (
	"context"
	"sync"
	"time"
)

// memoryStore keeps session entries in a process-local map. Expiration is
// ignored; the store lives no longer than the process.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemory() ISessionStore {
	return &memoryStore{entries: make(map[string]string)}
}

func (m *memoryStore) SetEntry(_ context.Context, sessionID, key, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[sessionKey(sessionID, key)] = value
	return nil
}

func (m *memoryStore) GetEntry(_ context.Context, sessionID, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	val, ok := m.entries[sessionKey(sessionID, key)]
	if !ok {
		return "", ErrEntryNotFound
	}
	return val, nil
}

func (m *memoryStore) ClearSession(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, sessionKey(sessionID, EntryToken))
	delete(m.entries, sessionKey(sessionID, EntryUser))
	return nil
}
