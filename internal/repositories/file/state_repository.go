// Package file persists the application state as a single JSON document on disk.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/club_manager_app/internal/core/ports/repositories"
)

// StateRepository rewrites the whole file on every save.
type StateRepository struct {
	mu   sync.Mutex
	file *os.File
	path string
}

// OpenStateRepository opens (or creates) the state file at path.
func OpenStateRepository(path string) (*StateRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open state file: %w", err)
	}
	return &StateRepository{file: f, path: path}, nil
}

var _ portsrepo.StateRepositoryFacade = (*StateRepository)(nil)

func (r *StateRepository) Close() error { return r.file.Close() }

// LoadState returns an empty state for an empty file.
func (r *StateRepository) LoadState(ctx context.Context) (domain.AppState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, err := r.file.Stat()
	if err != nil {
		return domain.AppState{}, fmt.Errorf("failed to stat state file: %w", err)
	}
	if info.Size() == 0 {
		return domain.AppState{}, nil
	}
	if _, err := r.file.Seek(0, io.SeekStart); err != nil {
		return domain.AppState{}, err
	}
	var state domain.AppState
	if err := json.NewDecoder(r.file).Decode(&state); err != nil {
		return domain.AppState{}, fmt.Errorf("failed to decode state file %s: %w", r.path, err)
	}
	return state, nil
}

func (r *StateRepository) SaveState(ctx context.Context, state domain.AppState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.flushLocked(state)
}

func (r *StateRepository) flushLocked(state domain.AppState) error {
	if _, err := r.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	enc := json.NewEncoder(r.file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	// truncate in case new content is shorter
	pos, err := r.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	if err := r.file.Truncate(pos); err != nil {
		return err
	}
	return r.file.Sync()
}
