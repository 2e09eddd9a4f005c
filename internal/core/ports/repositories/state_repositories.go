package repositories

import (
	"context"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
)

// StateReader loads the persisted aggregate.
type StateReader interface {
	// LoadState returns the stored state, or an empty AppState when nothing
	// has been saved yet. Back-filling defaults is the caller's job.
	LoadState(ctx context.Context) (domain.AppState, error)
}

// StateWriter persists the aggregate.
type StateWriter interface {
	// SaveState replaces the stored state as a whole.
	SaveState(ctx context.Context, state domain.AppState) error
}

// StateRepositoryFacade combines all state repository interfaces.
type StateRepositoryFacade interface {
	StateReader
	StateWriter
}
