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
	"github.com/SscSPs/club_manager_app/internal/utils/pagination"
	"github.com/google/uuid"
)

const defaultTransactionPageSize = 50

type ledgerService struct {
	BaseService
	state *StateContainer
}

// NewLedgerService creates the ledger service over the shared state.
func NewLedgerService(state *StateContainer) portssvc.LedgerSvcFacade {
	return &ledgerService{state: state}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, ok := s.state.Snapshot().FindTransaction(transactionID)
	if !ok {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return &txn, nil
}

// ListTransactions filters, orders by date then id (both descending) and pages
// with an opaque cursor token.
func (s *ledgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}

	var cursor *pagination.Cursor
	if params.NextToken != nil && *params.NextToken != "" {
		c, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		cursor = &c
	}

	matched := make([]domain.Transaction, 0)
	for _, t := range s.state.Snapshot().Transactions {
		if matchesTransactionFilter(t, params) {
			matched = append(matched, t)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Date != matched[j].Date {
			return matched[i].Date > matched[j].Date
		}
		return matched[i].ID > matched[j].ID
	})

	page := make([]domain.Transaction, 0, limit)
	hasMore := false
	for _, t := range matched {
		if cursor != nil && !cursor.After(t.Date, t.ID) {
			continue
		}
		if len(page) == limit {
			hasMore = true
			break
		}
		page = append(page, t)
	}

	resp := &dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponses(page)}
	if hasMore {
		last := page[len(page)-1]
		token := pagination.EncodeToken(pagination.Cursor{Date: last.Date, ID: last.ID})
		resp.NextToken = &token
	}
	s.LogDebug(ctx, "Transactions listed", slog.Int("count", len(page)), slog.Bool("has_more", hasMore))
	return resp, nil
}

func matchesTransactionFilter(t domain.Transaction, p dto.ListTransactionsParams) bool {
	if p.Month != "" && !domain.InMonth(t.Date, p.Month) {
		return false
	}
	if p.Type != "" && string(t.Type) != p.Type {
		return false
	}
	if p.Category != "" && string(t.Category) != p.Category {
		return false
	}
	if p.MemberID != "" && (t.RelatedMemberID == nil || *t.RelatedMemberID != p.MemberID) {
		return false
	}
	if p.MatchID != "" && (t.RelatedMatchID == nil || *t.RelatedMatchID != p.MatchID) {
		return false
	}
	return true
}

func (s *ledgerService) ListCategories(ctx context.Context) []domain.CategoryInfo {
	return domain.Categories()
}

func (s *ledgerService) AddTransaction(ctx context.Context, req dto.CreateTransactionRequest, actor string) (*domain.Transaction, error) {
	txn := domain.Transaction{
		ID:              uuid.NewString(),
		Date:            req.Date,
		Amount:          req.Amount,
		Type:            req.Type,
		Category:        req.Category,
		Description:     strings.TrimSpace(req.Description),
		CreatedBy:       actor,
		RelatedMemberID: nonEmpty(req.RelatedMemberID),
		RelatedMatchID:  nonEmpty(req.RelatedMatchID),
	}

	_, err := s.state.Update(ctx, func(st domain.AppState) ([]domain.Action, error) {
		if err := txn.Validate(); err != nil {
			return nil, err
		}
		attachMemberName(&txn, st.Members)
		return []domain.Action{domain.AddTransaction{Transaction: txn}}, nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Transaction added",
		slog.String("transaction_id", txn.ID),
		slog.String("type", string(txn.Type)),
		slog.String("category", string(txn.Category)))
	return &txn, nil
}

func (s *ledgerService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	var updated domain.Transaction
	_, err := s.state.Update(ctx, func(st domain.AppState) ([]domain.Action, error) {
		existing, ok := st.FindTransaction(transactionID)
		if !ok {
			return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		updated = existing
		if req.Date != nil {
			updated.Date = *req.Date
		}
		if req.Amount != nil {
			updated.Amount = *req.Amount
		}
		if req.Type != nil {
			updated.Type = *req.Type
		}
		if req.Category != nil {
			updated.Category = *req.Category
		}
		if req.Description != nil {
			updated.Description = strings.TrimSpace(*req.Description)
		}
		if req.RelatedMemberID != nil {
			updated.RelatedMemberID = nonEmpty(req.RelatedMemberID)
			updated.RelatedMemberName = nil
		}
		if req.RelatedMatchID != nil {
			updated.RelatedMatchID = nonEmpty(req.RelatedMatchID)
		}
		if err := updated.Validate(); err != nil {
			return nil, err
		}
		attachMemberName(&updated, st.Members)
		return []domain.Action{domain.UpdateTransaction{Transaction: updated}}, nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return &updated, nil
}

func (s *ledgerService) DeleteTransaction(ctx context.Context, transactionID string) error {
	_, err := s.state.Update(ctx, func(st domain.AppState) ([]domain.Action, error) {
		if _, ok := st.FindTransaction(transactionID); !ok {
			return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		return []domain.Action{domain.DeleteTransaction{ID: transactionID}}, nil
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// attachMemberName copies the referenced member's name onto the transaction and
// into its description. Dangling references are left as they are.
func attachMemberName(txn *domain.Transaction, members []domain.Member) {
	if txn.RelatedMemberID == nil {
		return
	}
	member, ok := domain.FindMember(members, *txn.RelatedMemberID)
	if !ok {
		return
	}
	name := member.Name
	txn.RelatedMemberName = &name
	if !strings.Contains(txn.Description, name) {
		if txn.Description == "" {
			txn.Description = name
		} else {
			txn.Description = fmt.Sprintf("%s (%s)", txn.Description, name)
		}
	}
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
