package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/club_manager_app/internal/core/ports/repositories"
	"github.com/SscSPs/club_manager_app/internal/platform/metrics"
)

// StateContainer owns the single in-memory AppState. Every mutation is a
// reducer pass followed by a full write-through save; the new state becomes
// visible only once the save succeeded.
type StateContainer struct {
	BaseService
	mu      sync.RWMutex
	writeMu sync.Mutex
	state   domain.AppState
	repo    portsrepo.StateRepositoryFacade
	metrics *metrics.Metrics
}

// StateContainerOption is a function that configures a StateContainer.
type StateContainerOption func(*StateContainer)

// WithStateMetrics records save outcomes.
func WithStateMetrics(m *metrics.Metrics) StateContainerOption {
	return func(c *StateContainer) {
		c.metrics = m
	}
}

// NewStateContainer loads the persisted state once and back-fills defaults.
func NewStateContainer(ctx context.Context, repo portsrepo.StateRepositoryFacade, defaults domain.StateDefaults, opts ...StateContainerOption) (*StateContainer, error) {
	loaded, err := repo.LoadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	c := &StateContainer{
		state: loaded.WithDefaults(defaults),
		repo:  repo,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.LogInfo(ctx, "State loaded",
		slog.Int("transactions", len(c.state.Transactions)),
		slog.Int("members", len(c.state.Members)),
		slog.Int("matches", len(c.state.Matches)),
		slog.Int("reports", len(c.state.MonthlyReports)))
	return c, nil
}

// Snapshot returns the current state. Reducers never modify slices in place,
// so the snapshot stays consistent while later updates happen.
func (c *StateContainer) Snapshot() domain.AppState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Update runs fn against the current state and applies the actions it
// returns. If fn fails nothing is applied. Updates are serialised.
func (c *StateContainer) Update(ctx context.Context, fn func(domain.AppState) ([]domain.Action, error)) (domain.AppState, error) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	current := c.Snapshot()
	actions, err := fn(current)
	if err != nil {
		return current, err
	}
	if len(actions) == 0 {
		return current, nil
	}

	next := domain.ReduceAll(current, actions...)
	if err := c.repo.SaveState(ctx, next); err != nil {
		c.metrics.StateSaved(metrics.OutcomeFailure)
		c.LogError(ctx, err, "Failed to persist state")
		return current, fmt.Errorf("failed to persist state: %w", err)
	}
	c.metrics.StateSaved(metrics.OutcomeSuccess)

	c.mu.Lock()
	c.state = next
	c.mu.Unlock()
	return next, nil
}

// Dispatch applies actions unconditionally.
func (c *StateContainer) Dispatch(ctx context.Context, actions ...domain.Action) (domain.AppState, error) {
	return c.Update(ctx, func(domain.AppState) ([]domain.Action, error) {
		return actions, nil
	})
}
