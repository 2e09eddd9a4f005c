package services

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	portssvc "github.com/SscSPs/club_manager_app/internal/core/ports/services"
	"github.com/SscSPs/club_manager_app/internal/utils/accounting"
)

const (
	topAttendanceSize      = 8
	recentTransactionsSize = 5
	overviewMonths         = 6
)

type dashboardService struct {
	BaseService
	state *StateContainer
}

// NewDashboardService creates the read-only overview service.
func NewDashboardService(state *StateContainer) portssvc.DashboardSvc {
	return &dashboardService{state: state}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

func (s *dashboardService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	snap := s.state.Snapshot()
	totals := accounting.CalculateTotals(snap.Transactions)

	completed := make([]domain.Match, 0)
	for _, m := range snap.Matches {
		if m.IsCompleted() {
			completed = append(completed, m)
		}
	}

	active := domain.ActiveMembers(snap.Members)
	attendance := make([]domain.AttendanceEntry, 0, len(active))
	for _, member := range active {
		played := 0
		for _, m := range completed {
			if m.HasParticipant(member.ID) {
				played++
			}
		}
		attendance = append(attendance, domain.AttendanceEntry{
			MemberID:      member.ID,
			MemberName:    member.Name,
			MatchesPlayed: played,
		})
	}
	sort.SliceStable(attendance, func(i, j int) bool {
		return attendance[i].MatchesPlayed > attendance[j].MatchesPlayed
	})
	if len(attendance) > topAttendanceSize {
		attendance = attendance[:topAttendanceSize]
	}

	recent := make([]domain.Transaction, len(snap.Transactions))
	copy(recent, snap.Transactions)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date > recent[j].Date
	})
	if len(recent) > recentTransactionsSize {
		recent = recent[:recentTransactionsSize]
	}

	return &domain.Dashboard{
		TotalIncome:        totals.Income,
		TotalExpense:       totals.Expense,
		Balance:            totals.Balance,
		ActiveMemberCount:  len(active),
		CompletedMatches:   len(completed),
		MatchExpenses:      accounting.SumMatchExpenses(snap.Transactions),
		ExpenseByCategory:  toCategoryTotals(accounting.SumByCategory(snap.Transactions, domain.TransactionExpense)),
		TopAttendance:      attendance,
		RecentTransactions: recent,
	}, nil
}

func (s *dashboardService) FinancialOverview(ctx context.Context, now time.Time) (*domain.FinancialOverview, error) {
	snap := s.state.Snapshot()

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	months := make([]domain.MonthlyFlow, 0, overviewMonths)
	for i := overviewMonths - 1; i >= 0; i-- {
		key := domain.MonthOf(first.AddDate(0, -i, 0))
		totals := accounting.CalculateTotals(domain.FilterTransactionsByMonth(snap.Transactions, key))
		months = append(months, domain.MonthlyFlow{Month: key, Income: totals.Income, Expense: totals.Expense})
	}

	year := strconv.Itoa(now.Year())
	// a year key is a prefix of every date in that year
	yearTxns := domain.FilterTransactionsByMonth(snap.Transactions, year)
	yearTotals := accounting.CalculateTotals(yearTxns)

	return &domain.FinancialOverview{
		Months:               months,
		ExpenseDistribution:  toCategoryTotals(accounting.SumByCategory(snap.Transactions, domain.TransactionExpense)),
		Year:                 now.Year(),
		YearIncome:           yearTotals.Income,
		YearExpense:          yearTotals.Expense,
		YearBalance:          yearTotals.Balance,
		YearTransactionCount: len(yearTxns),
	}, nil
}

func toCategoryTotals(in []accounting.CategoryAmount) []domain.CategoryTotal {
	out := make([]domain.CategoryTotal, len(in))
	for i, c := range in {
		out[i] = domain.CategoryTotal{Category: c.Category, Label: c.Label, Amount: c.Amount}
	}
	return out
}
