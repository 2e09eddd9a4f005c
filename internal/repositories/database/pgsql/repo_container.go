package pgsql

import (
	portsrepo "github.com/SscSPs/club_manager_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider keeps the state in PostgreSQL. Sessions live wherever
// sessionRepo stores them.
func NewRepositoryProvider(dbPool *pgxpool.Pool, sessionRepo portsrepo.SessionRepositoryFacade) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		StateRepo:   newPgxStateRepository(dbPool),
		SessionRepo: sessionRepo,
	}
}
