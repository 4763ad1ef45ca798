package store

import (
	"context"
	"sync"
)

// memorySessionRepository keeps sessions for the lifetime of the process.
// It backs the ":memory:" DSN and tests.
type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]string
}

// NewMemorySessionRepository returns an in-process [SessionRepository].
func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{sessions: make(map[string]string)}
}

func (m *memorySessionRepository) GetSession(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	payload, ok := m.sessions[key]
	if !ok {
		return "", ErrSessionNotFound
	}
	return payload, nil
}

func (m *memorySessionRepository) SaveSession(_ context.Context, key, payload string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[key] = payload
	return nil
}

func (m *memorySessionRepository) DeleteSession(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, key)
	return nil
}
