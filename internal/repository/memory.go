package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

type memSession struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]memEntry

	lastSweep time.Time
}

type memEntry struct {
	session   entity.Session
	expiresAt time.Time
}

// NewMemorySessionRepository - in-process sessions for single instance deployments.
// Entries expire ttl after their last write, a zero ttl keeps them forever.
func NewMemorySessionRepository(ttl time.Duration) SessionRepository {
	return &memSession{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]memEntry),
	}
}

func (that *memSession) CreateOrUpdate(_ context.Context, session *entity.Session) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	now := that.now()
	session.UpdatedAt = now.UTC()

	that.sweep(now)

	entry := memEntry{session: cloneSession(session)}
	if that.ttl > 0 {
		entry.expiresAt = now.Add(that.ttl)
	}

	that.sessions[session.ID] = entry

	return nil
}

func (that *memSession) GetByID(_ context.Context, id string) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.lookup(id)
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	session := cloneSession(&entry.session)

	return &session, nil
}

func (that *memSession) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.lookup(id); !ok {
		return apperror.ErrSessionNotFound
	}

	delete(that.sessions, id)

	return nil
}

// lookup - returns a live entry and drops it when expired. Callers hold mu.
func (that *memSession) lookup(id string) (memEntry, bool) {
	entry, ok := that.sessions[id]
	if !ok {
		return memEntry{}, false
	}

	if !entry.expiresAt.IsZero() && !that.now().Before(entry.expiresAt) {
		delete(that.sessions, id)
		return memEntry{}, false
	}

	return entry, true
}

// sweep - drops every expired entry, at most once per ttl. Callers hold mu.
func (that *memSession) sweep(now time.Time) {
	if that.ttl <= 0 || now.Sub(that.lastSweep) < that.ttl {
		return
	}

	for id, entry := range that.sessions {
		if !now.Before(entry.expiresAt) {
			delete(that.sessions, id)
		}
	}

	that.lastSweep = now
}

func cloneSession(session *entity.Session) entity.Session {
	clone := *session
	clone.History = make([]entity.Board, len(session.History))
	copy(clone.History, session.History)

	return clone
}
