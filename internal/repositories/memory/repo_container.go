package memory

import (
	portsrepo "github.com/SscSPs/club_manager_app/internal/core/ports/repositories"
)

// NewRepositoryProvider returns a provider whose state lives in memory.
// sessionRepo may come from another driver; nil means in-memory sessions.
func NewRepositoryProvider(sessionRepo portsrepo.SessionRepositoryFacade) portsrepo.RepositoryProvider {
	if sessionRepo == nil {
		sessionRepo = NewSessionRepository()
	}
	return portsrepo.RepositoryProvider{
		StateRepo:   NewStateRepository(),
		SessionRepo: sessionRepo,
	}
}
