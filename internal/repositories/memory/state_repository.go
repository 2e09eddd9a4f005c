// Package memory holds process-local repositories, used for development and tests.
package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/club_manager_app/internal/core/ports/repositories"
)

// StateRepository keeps the last saved state in memory. Saved states are
// never modified afterwards, so no copy is taken.
type StateRepository struct {
	mu    sync.RWMutex
	state domain.AppState
	saves int
}

func NewStateRepository() *StateRepository {
	return &StateRepository{}
}

// NewStateRepositoryWith seeds the repository with an initial state.
func NewStateRepositoryWith(initial domain.AppState) *StateRepository {
	return &StateRepository{state: initial}
}

var _ portsrepo.StateRepositoryFacade = (*StateRepository)(nil)

func (r *StateRepository) LoadState(ctx context.Context) (domain.AppState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state, nil
}

func (r *StateRepository) SaveState(ctx context.Context, state domain.AppState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = state
	r.saves++
	return nil
}

// Saves reports how many times SaveState succeeded.
func (r *StateRepository) Saves() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saves
}
