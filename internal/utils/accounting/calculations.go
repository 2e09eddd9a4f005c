package accounting

import (
	"sort"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Totals holds the income/expense rollup of a set of transactions.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// SignedAmount returns the amount with the sign implied by the transaction type.
// The stored amount is always positive; the type alone decides the direction.
func SignedAmount(txn domain.Transaction) decimal.Decimal {
	if txn.Type == domain.TransactionExpense {
		return txn.Amount.Neg()
	}
	return txn.Amount
}

// CalculateTotals sums transactions by type. Balance is income minus expense.
func CalculateTotals(txns []domain.Transaction) Totals {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range txns {
		switch t.Type {
		case domain.TransactionIncome:
			income = income.Add(t.Amount)
		case domain.TransactionExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return Totals{Income: income, Expense: expense, Balance: income.Sub(expense)}
}

// CategoryAmount is one slice of a category breakdown.
type CategoryAmount struct {
	Category domain.Category `json:"category"`
	Label    string          `json:"label"`
	Amount   decimal.Decimal `json:"amount"`
}

// SumByCategory totals transactions of the given type per category, largest first.
func SumByCategory(txns []domain.Transaction, txnType domain.TransactionType) []CategoryAmount {
	sums := make(map[domain.Category]decimal.Decimal)
	for _, t := range txns {
		if t.Type != txnType {
			continue
		}
		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}

	out := make([]CategoryAmount, 0, len(sums))
	for c, amount := range sums {
		out = append(out, CategoryAmount{Category: c, Label: c.Label(), Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if cmp := out[i].Amount.Cmp(out[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// SumMatchExpenses totals expenses that reference a match.
func SumMatchExpenses(txns []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.Type == domain.TransactionExpense && t.RelatedMatchID != nil {
			total = total.Add(t.Amount)
		}
	}
	return total
}
