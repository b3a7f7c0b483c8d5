package session

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository keeps sessions in process memory. Sessions die with
// the server; there is no persisted variant.
type MemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]entry
}

type entry struct {
	session   Session
	expiresAt time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		sessions: make(map[string]entry),
	}
}

func (r *MemoryRepository) Create(_ context.Context, tokenHash string, sess Session, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[tokenHash] = entry{session: sess, expiresAt: expiresAt}
	return nil
}

func (r *MemoryRepository) Validate(_ context.Context, tokenHash string) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[tokenHash]
	if !ok {
		return Session{}, ErrInvalidSession
	}

	if time.Now().After(e.expiresAt) {
		delete(r.sessions, tokenHash)
		return Session{}, ErrInvalidSession
	}

	return e.session, nil
}
