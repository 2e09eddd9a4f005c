package services

import (
	"fmt"

	"github.com/SscSPs/club_manager_app/internal/apperrors"
	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/SscSPs/club_manager_app/internal/utils/accounting"
)

// ReconcileMonth computes the rollup of month from the full collections.
// It never modifies its inputs.
func ReconcileMonth(transactions []domain.Transaction, members []domain.Member, matches []domain.Match, month string) (domain.MonthlySummary, error) {
	if _, err := domain.ParseMonth(month); err != nil {
		return domain.MonthlySummary{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	totals := accounting.CalculateTotals(domain.FilterTransactionsByMonth(transactions, month))
	played := domain.FilterCompletedMatchesByMonth(matches, month)

	summary := domain.MonthlySummary{
		Month:           month,
		TotalIncome:     totals.Income,
		TotalExpense:    totals.Expense,
		Balance:         totals.Balance,
		MatchCount:      len(played),
		MemberStats:     make([]domain.MemberMonthlyStat, 0),
		UnpaidMemberIDs: make([]string, 0),
	}

	// unparsable results count as played but not toward the tally
	for _, m := range played {
		switch m.Outcome() {
		case domain.OutcomeWin:
			summary.WinCount++
		case domain.OutcomeDraw:
			summary.DrawCount++
		case domain.OutcomeLoss:
			summary.LossCount++
		}
	}

	for _, member := range members {
		if !member.IsActive() {
			continue
		}
		attended := 0
		for _, m := range played {
			if m.HasParticipant(member.ID) {
				attended++
			}
		}
		summary.MemberStats = append(summary.MemberStats, domain.MemberMonthlyStat{
			MemberID:            member.ID,
			MemberName:          member.Name,
			MatchesPlayed:       attended,
			TotalMatchesInMonth: len(played),
			IsPaid:              member.MonthlyFeePaid,
			MissedCount:         len(played) - attended,
		})
		if !member.MonthlyFeePaid {
			summary.UnpaidMemberIDs = append(summary.UnpaidMemberIDs, member.ID)
		}
	}

	return summary, nil
}
