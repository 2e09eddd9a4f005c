package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/club_manager_app/internal/apperrors"
	"github.com/SscSPs/club_manager_app/internal/core/domain"
	portssvc "github.com/SscSPs/club_manager_app/internal/core/ports/services"
	"github.com/SscSPs/club_manager_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// duesPaymentDay is the day of month dues payments are booked on.
const duesPaymentDay = "05"

type fundService struct {
	BaseService
	state *StateContainer
}

// NewFundService creates the monthly dues service.
func NewFundService(state *StateContainer) portssvc.FundSvcFacade {
	return &fundService{state: state}
}

var _ portssvc.FundSvcFacade = (*fundService)(nil)

// FundStatus is derived from the ledger, not from the members' monthlyFeePaid flag.
func (s *fundService) FundStatus(ctx context.Context, month string) (*domain.FundStatus, error) {
	if _, err := domain.ParseMonth(month); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	snap := s.state.Snapshot()

	status := &domain.FundStatus{
		Month:          month,
		Lines:          make([]domain.FundLine, 0, len(snap.Members)),
		TotalCollected: decimal.Zero,
	}
	for _, member := range snap.Members {
		line := domain.FundLine{Member: member, PaidAmount: decimal.Zero}
		if txn, ok := findDuesPayment(snap.Transactions, member.ID, month); ok {
			id := txn.ID
			line.IsPaid = true
			line.PaidAmount = txn.Amount
			line.TransactionID = &id
		}
		status.Lines = append(status.Lines, line)

		if !member.IsActive() {
			continue
		}
		status.ActiveCount++
		status.TotalCollected = status.TotalCollected.Add(line.PaidAmount)
		if line.IsPaid {
			status.PaidCount++
		}
	}
	return status, nil
}

func findDuesPayment(txns []domain.Transaction, memberID, month string) (domain.Transaction, bool) {
	for _, t := range txns {
		if t.Category != domain.CategoryMonthlyDues || !t.IsIncome() || !domain.InMonth(t.Date, month) {
			continue
		}
		if t.RelatedMemberID != nil && *t.RelatedMemberID == memberID {
			return t, true
		}
	}
	return domain.Transaction{}, false
}

func (s *fundService) RecordDuesPayment(ctx context.Context, req dto.RecordDuesPaymentRequest, actor string) (*domain.Transaction, error) {
	monthStart, err := domain.ParseMonth(req.Month)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	var txn domain.Transaction
	_, err = s.state.Update(ctx, func(st domain.AppState) ([]domain.Action, error) {
		member, ok := domain.FindMember(st.Members, req.MemberID)
		if !ok {
			return nil, fmt.Errorf("member %s: %w", req.MemberID, apperrors.ErrNotFound)
		}
		if !member.IsActive() {
			return nil, apperrors.Validationf("member %s is inactive", member.ID)
		}
		if paid, ok := findDuesPayment(st.Transactions, member.ID, req.Month); ok {
			return nil, fmt.Errorf("dues for %s in %s already recorded as %s: %w", member.ID, req.Month, paid.ID, apperrors.ErrDuplicate)
		}
		amount := member.SupportLevel
		if req.Amount != nil {
			amount = *req.Amount
		}
		memberID, memberName := member.ID, member.Name
		txn = domain.Transaction{
			ID:                uuid.NewString(),
			Date:              req.Month + "-" + duesPaymentDay,
			Amount:            amount,
			Type:              domain.TransactionIncome,
			Category:          domain.CategoryMonthlyDues,
			Description:       fmt.Sprintf("Thu quỹ tháng %d/%d (%s)", int(monthStart.Month()), monthStart.Year(), member.Name),
			CreatedBy:         actor,
			RelatedMemberID:   &memberID,
			RelatedMemberName: &memberName,
		}
		if err := txn.Validate(); err != nil {
			return nil, err
		}
		return []domain.Action{domain.AddTransaction{Transaction: txn}}, nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Dues payment recorded",
		slog.String("member_id", req.MemberID),
		slog.String("month", req.Month),
		slog.String("transaction_id", txn.ID))
	return &txn, nil
}

func (s *fundService) DeleteDuesPayment(ctx context.Context, transactionID string) error {
	_, err := s.state.Update(ctx, func(st domain.AppState) ([]domain.Action, error) {
		txn, ok := st.FindTransaction(transactionID)
		if !ok {
			return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		if txn.Category != domain.CategoryMonthlyDues {
			return nil, apperrors.Validationf("transaction %s is not a dues payment", transactionID)
		}
		return []domain.Action{domain.DeleteTransaction{ID: transactionID}}, nil
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Dues payment deleted", slog.String("transaction_id", transactionID))
	return nil
}
