package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/club_manager_app/internal/core/ports/repositories"
	"github.com/SscSPs/club_manager_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// stateRowID is the only row app_state ever holds.
const stateRowID = 1

// PgxStateRepository stores the whole aggregate as one JSONB document.
type PgxStateRepository struct {
	BaseRepository
}

func newPgxStateRepository(db *pgxpool.Pool) portsrepo.StateRepositoryFacade {
	return &PgxStateRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxStateRepository implements portsrepo.StateRepositoryFacade
var _ portsrepo.StateRepositoryFacade = (*PgxStateRepository)(nil)

func (r *PgxStateRepository) LoadState(ctx context.Context) (domain.AppState, error) {
	query := `SELECT id, document, updated_at FROM app_state WHERE id = $1;`

	var row models.AppStateRow
	err := r.Pool.QueryRow(ctx, query, stateRowID).Scan(&row.ID, &row.Document, &row.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.AppState{}, nil
		}
		return domain.AppState{}, fmt.Errorf("failed to load app state: %w", err)
	}

	var state domain.AppState
	if err := json.Unmarshal(row.Document, &state); err != nil {
		return domain.AppState{}, fmt.Errorf("failed to decode app state: %w", err)
	}
	return state, nil
}

// SaveState upserts the document. There is no version check, so two
// processes sharing the table overwrite each other.
func (r *PgxStateRepository) SaveState(ctx context.Context, state domain.AppState) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode app state: %w", err)
	}
	row := models.AppStateRow{ID: stateRowID, Document: doc, UpdatedAt: time.Now().UTC()}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO app_state (id, document, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at;
	`
	if _, err := tx.Exec(ctx, query, row.ID, row.Document, row.UpdatedAt); err != nil {
		return fmt.Errorf("failed to save app state: %w", err)
	}
	return r.Commit(ctx, tx)
}
