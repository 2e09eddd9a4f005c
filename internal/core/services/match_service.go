package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/SscSPs/club_manager_app/internal/apperrors"
	"github.com/SscSPs/club_manager_app/internal/core/domain"
	portssvc "github.com/SscSPs/club_manager_app/internal/core/ports/services"
	"github.com/SscSPs/club_manager_app/internal/dto"
	"github.com/SscSPs/club_manager_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type matchService struct {
	BaseService
	state *StateContainer
}

// NewMatchService creates the match log service.
func NewMatchService(state *StateContainer) portssvc.MatchSvcFacade {
	return &matchService{state: state}
}

var _ portssvc.MatchSvcFacade = (*matchService)(nil)

func (s *matchService) GetMatch(ctx context.Context, matchID string) (*domain.Match, error) {
	match, ok := s.state.Snapshot().FindMatch(matchID)
	if !ok {
		return nil, fmt.Errorf("match %s: %w", matchID, apperrors.ErrNotFound)
	}
	return &match, nil
}

// ListMatches returns matches, latest kick-off first.
func (s *matchService) ListMatches(ctx context.Context, params dto.ListMatchesParams) ([]domain.Match, error) {
	out := make([]domain.Match, 0)
	for _, m := range s.state.Snapshot().Matches {
		if params.Month != "" && !domain.InMonth(m.Date, params.Month) {
			continue
		}
		if params.Status != "" && string(m.Status) != params.Status {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Time > out[j].Time
	})
	return out, nil
}

func (s *matchService) MatchStats(ctx context.Context) (*domain.MatchStats, error) {
	snap := s.state.Snapshot()
	stats := &domain.MatchStats{
		TotalMatchExpense:   accounting.SumMatchExpenses(snap.Transactions),
		AverageCostPerMatch: decimal.Zero,
	}
	for _, m := range snap.Matches {
		if !m.IsCompleted() {
			continue
		}
		stats.CompletedCount++
		if m.Type == domain.MatchExternal {
			stats.ExternalCount++
		} else {
			stats.InternalCount++
		}
		switch m.Outcome() {
		case domain.OutcomeWin:
			stats.WinCount++
		case domain.OutcomeDraw:
			stats.DrawCount++
		case domain.OutcomeLoss:
			stats.LossCount++
		}
	}
	if stats.CompletedCount > 0 {
		stats.AverageCostPerMatch = stats.TotalMatchExpense.Div(decimal.NewFromInt(int64(stats.CompletedCount))).Round(2)
	}
	return stats, nil
}

func (s *matchService) AddMatch(ctx context.Context, req dto.CreateMatchRequest) (*domain.Match, error) {
	match := domain.Match{
		ID:             uuid.NewString(),
		Date:           req.Date,
		Time:           strings.TrimSpace(req.Time),
		Location:       strings.TrimSpace(req.Location),
		Type:           req.Type,
		Status:         domain.MatchScheduled,
		Opponent:       nonEmpty(req.Opponent),
		Description:    nonEmpty(req.Description),
		ParticipantIDs: uniqueIDs(req.ParticipantIDs),
		Result:         resultFrom(req.Result, req.HomeScore, req.AwayScore),
	}
	if err := normalizeOpponent(&match); err != nil {
		return nil, err
	}

	if _, err := s.state.Dispatch(ctx, domain.AddMatch{Match: match}); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Match scheduled", slog.String("match_id", match.ID), slog.String("date", match.Date))
	return &match, nil
}

func (s *matchService) UpdateMatch(ctx context.Context, matchID string, req dto.UpdateMatchRequest) (*domain.Match, error) {
	return s.mutate(ctx, matchID, func(m *domain.Match) error {
		if req.Date != nil {
			m.Date = *req.Date
		}
		if req.Time != nil {
			m.Time = strings.TrimSpace(*req.Time)
		}
		if req.Location != nil {
			m.Location = strings.TrimSpace(*req.Location)
		}
		if req.Type != nil {
			m.Type = *req.Type
		}
		if req.Status != nil {
			m.Status = *req.Status
		}
		if req.Opponent != nil {
			m.Opponent = nonEmpty(req.Opponent)
		}
		if req.Description != nil {
			m.Description = nonEmpty(req.Description)
		}
		if req.ParticipantIDs != nil {
			m.ParticipantIDs = uniqueIDs(*req.ParticipantIDs)
		}
		if r := resultFrom(req.Result, req.HomeScore, req.AwayScore); r != nil {
			m.Result = r
		}
		return normalizeOpponent(m)
	})
}

func (s *matchService) DeleteMatch(ctx context.Context, matchID string) error {
	_, err := s.state.Update(ctx, func(st domain.AppState) ([]domain.Action, error) {
		if _, ok := st.FindMatch(matchID); !ok {
			return nil, fmt.Errorf("match %s: %w", matchID, apperrors.ErrNotFound)
		}
		return []domain.Action{domain.DeleteMatch{ID: matchID}}, nil
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Match deleted", slog.String("match_id", matchID))
	return nil
}

func (s *matchService) CompleteMatch(ctx context.Context, matchID string, req dto.CompleteMatchRequest) (*domain.Match, error) {
	return s.mutate(ctx, matchID, func(m *domain.Match) error {
		m.Status = domain.MatchCompleted
		if r := resultFrom(req.Result, req.HomeScore, req.AwayScore); r != nil {
			m.Result = r
		}
		if m.Result == nil {
			r := domain.DefaultMatchResult
			m.Result = &r
		}
		return nil
	})
}

type matchFee struct {
	amount   decimal.Decimal
	category domain.Category
	label    string
}

func (s *matchService) RecordMatchExpenses(ctx context.Context, matchID string, req dto.RecordMatchExpensesRequest, actor string) ([]domain.Transaction, error) {
	fees := []matchFee{
		{amount: req.PitchFee, category: domain.CategoryPitch, label: "Tiền sân"},
		{amount: req.WaterFee, category: domain.CategoryWater, label: "Nước uống"},
		{amount: req.OtherFee, category: domain.CategoryOther, label: "Chi phí khác"},
	}

	created := make([]domain.Transaction, 0, len(fees))
	_, err := s.state.Update(ctx, func(st domain.AppState) ([]domain.Action, error) {
		match, ok := st.FindMatch(matchID)
		if !ok {
			return nil, fmt.Errorf("match %s: %w", matchID, apperrors.ErrNotFound)
		}
		actions := make([]domain.Action, 0, len(fees))
		for _, fee := range fees {
			if fee.amount.IsNegative() {
				return nil, apperrors.Validationf("%s must not be negative", fee.category)
			}
			if !fee.amount.IsPositive() {
				continue
			}
			id := match.ID
			txn := domain.Transaction{
				ID:             uuid.NewString(),
				Date:           match.Date,
				Amount:         fee.amount,
				Type:           domain.TransactionExpense,
				Category:       fee.category,
				Description:    matchExpenseDescription(fee.label, match),
				CreatedBy:      actor,
				RelatedMatchID: &id,
			}
			if err := txn.Validate(); err != nil {
				return nil, err
			}
			created = append(created, txn)
			actions = append(actions, domain.AddTransaction{Transaction: txn})
		}
		return actions, nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Match expenses recorded", slog.String("match_id", matchID), slog.Int("count", len(created)))
	return created, nil
}

func matchExpenseDescription(label string, m domain.Match) string {
	if m.Type == domain.MatchInternal {
		return label + " trận Nội bộ"
	}
	return label + " trận vs " + m.OpponentName()
}

func (s *matchService) mutate(ctx context.Context, matchID string, change func(*domain.Match) error) (*domain.Match, error) {
	var updated domain.Match
	_, err := s.state.Update(ctx, func(st domain.AppState) ([]domain.Action, error) {
		existing, ok := st.FindMatch(matchID)
		if !ok {
			return nil, fmt.Errorf("match %s: %w", matchID, apperrors.ErrNotFound)
		}
		updated = existing
		if err := change(&updated); err != nil {
			return nil, err
		}
		if _, err := domain.ParseDate(updated.Date); err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		return []domain.Action{domain.UpdateMatch{Match: updated}}, nil
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Match updated", slog.String("match_id", matchID), slog.String("status", string(updated.Status)))
	return &updated, nil
}

// normalizeOpponent drops the opponent of internal matches and requires one
// for external matches.
func normalizeOpponent(m *domain.Match) error {
	if m.Type != domain.MatchExternal {
		m.Opponent = nil
		return nil
	}
	if m.Opponent == nil {
		return apperrors.Validationf("opponent is required for external matches")
	}
	return nil
}

// resultFrom prefers explicit scores over a free-text result.
func resultFrom(result *string, home, away *int) *string {
	if home != nil && away != nil {
		r := fmt.Sprintf("%d - %d", *home, *away)
		return &r
	}
	return nonEmpty(result)
}

func uniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
