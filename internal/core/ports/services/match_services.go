package services

import (
	"context"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/SscSPs/club_manager_app/internal/dto"
)

// MatchReaderSvc defines read operations over the match log.
type MatchReaderSvc interface {
	GetMatch(ctx context.Context, matchID string) (*domain.Match, error)
	ListMatches(ctx context.Context, params dto.ListMatchesParams) ([]domain.Match, error)
	MatchStats(ctx context.Context) (*domain.MatchStats, error)
}

// MatchWriterSvc defines write operations over the match log.
type MatchWriterSvc interface {
	AddMatch(ctx context.Context, req dto.CreateMatchRequest) (*domain.Match, error)
	UpdateMatch(ctx context.Context, matchID string, req dto.UpdateMatchRequest) (*domain.Match, error)
	DeleteMatch(ctx context.Context, matchID string) error

	// CompleteMatch marks the match COMPLETED. It does not touch the ledger.
	CompleteMatch(ctx context.Context, matchID string, req dto.CompleteMatchRequest) (*domain.Match, error)

	// RecordMatchExpenses adds one expense per positive fee. It is independent
	// of CompleteMatch; either may succeed without the other.
	RecordMatchExpenses(ctx context.Context, matchID string, req dto.RecordMatchExpensesRequest, actor string) ([]domain.Transaction, error)
}

// MatchSvcFacade combines all match service interfaces.
type MatchSvcFacade interface {
	MatchReaderSvc
	MatchWriterSvc
}
