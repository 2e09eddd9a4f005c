package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
)

// SessionReader reads session markers.
type SessionReader interface {
	// FindSession returns apperrors.ErrNotFound when the session is unknown or expired.
	FindSession(ctx context.Context, sessionID string) (*domain.Session, error)
}

// SessionWriter stores and removes session markers.
type SessionWriter interface {
	// SaveSession stores the session; it expires after ttl.
	SaveSession(ctx context.Context, session domain.Session, ttl time.Duration) error
	// DeleteSession removes the session. Deleting an unknown session is not an error.
	DeleteSession(ctx context.Context, sessionID string) error
}

// SessionRepositoryFacade combines all session repository interfaces.
type SessionRepositoryFacade interface {
	SessionReader
	SessionWriter
}
