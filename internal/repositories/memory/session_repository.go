package memory

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/club_manager_app/internal/apperrors"
	"github.com/SscSPs/club_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/club_manager_app/internal/core/ports/repositories"
)

type sessionEntry struct {
	session   domain.Session
	expiresAt time.Time
}

// SessionRepository is a TTL map of session markers.
type SessionRepository struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
	now      func() time.Time
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]sessionEntry),
		now:      time.Now,
	}
}

var _ portsrepo.SessionRepositoryFacade = (*SessionRepository)(nil)

func (r *SessionRepository) FindSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[sessionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if !r.now().Before(entry.expiresAt) {
		delete(r.sessions, sessionID)
		return nil, apperrors.ErrNotFound
	}
	session := entry.session
	return &session, nil
}

func (r *SessionRepository) SaveSession(ctx context.Context, session domain.Session, ttl time.Duration) error {
	if ttl <= 0 {
		return apperrors.Validationf("session ttl must be positive")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = sessionEntry{session: session, expiresAt: r.now().Add(ttl)}
	return nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}
