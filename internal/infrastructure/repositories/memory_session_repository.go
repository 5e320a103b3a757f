package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wada-stylist/internal/domain/entities"
	domainrepos "wada-stylist/internal/domain/repositories"
)

type MemorySessionRepository struct {
	sessions map[string]*entities.AnalysisSession
	ttl      time.Duration
	now      func() time.Time
	mu       sync.RWMutex
}

func NewMemorySessionRepository(ttl time.Duration) domainrepos.SessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[string]*entities.AnalysisSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *MemorySessionRepository) Save(ctx context.Context, session *entities.AnalysisSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *session
	stored.UpdatedAt = r.now()
	r.sessions[session.SessionID] = &stored
	r.evictExpiredLocked()
	return nil
}

func (r *MemorySessionRepository) FindByID(ctx context.Context, sessionID string) (*entities.AnalysisSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[sessionID]
	if !exists || r.expired(session) {
		return nil, fmt.Errorf("%w: %s", domainrepos.ErrSessionNotFound, sessionID)
	}

	copied := *session
	return &copied, nil
}

func (r *MemorySessionRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}

func (r *MemorySessionRepository) expired(session *entities.AnalysisSession) bool {
	return r.ttl > 0 && r.now().Sub(session.UpdatedAt) > r.ttl
}

// 書き込み時に期限切れのセッションを掃除する
func (r *MemorySessionRepository) evictExpiredLocked() {
	for id, s := range r.sessions {
		if r.expired(s) {
			delete(r.sessions, id)
		}
	}
}
