package accounting_test

import (
	"testing"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/SscSPs/club_manager_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(t domain.TransactionType, c domain.Category, amount int64) domain.Transaction {
	return domain.Transaction{Type: t, Category: c, Amount: decimal.NewFromInt(amount)}
}

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name        string
		txns        []domain.Transaction
		wantIncome  int64
		wantExpense int64
		wantBalance int64
	}{
		{name: "empty", txns: nil},
		{
			name: "mixed",
			txns: []domain.Transaction{
				txn(domain.TransactionIncome, domain.CategoryMonthlyDues, 100000),
				txn(domain.TransactionExpense, domain.CategoryPitch, 50000),
				txn(domain.TransactionIncome, domain.CategorySponsorship, 25000),
			},
			wantIncome: 125000, wantExpense: 50000, wantBalance: 75000,
		},
		{
			name:        "overspent",
			txns:        []domain.Transaction{txn(domain.TransactionExpense, domain.CategoryParty, 30000)},
			wantExpense: 30000,
			wantBalance: -30000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.CalculateTotals(tt.txns)
			assert.True(t, decimal.NewFromInt(tt.wantIncome).Equal(got.Income), "income %s", got.Income)
			assert.True(t, decimal.NewFromInt(tt.wantExpense).Equal(got.Expense), "expense %s", got.Expense)
			assert.True(t, decimal.NewFromInt(tt.wantBalance).Equal(got.Balance), "balance %s", got.Balance)

			signed := decimal.Zero
			for _, tx := range tt.txns {
				signed = signed.Add(accounting.SignedAmount(tx))
			}
			assert.True(t, signed.Equal(got.Balance))
		})
	}
}

func TestSumByCategory(t *testing.T) {
	matchID := "m1"
	withMatch := txn(domain.TransactionExpense, domain.CategoryPitch, 500000)
	withMatch.RelatedMatchID = &matchID

	txns := []domain.Transaction{
		withMatch,
		txn(domain.TransactionExpense, domain.CategoryWater, 50000),
		txn(domain.TransactionExpense, domain.CategoryWater, 60000),
		txn(domain.TransactionIncome, domain.CategoryMonthlyDues, 200000),
	}

	got := accounting.SumByCategory(txns, domain.TransactionExpense)

	require.Len(t, got, 2)
	assert.Equal(t, domain.CategoryPitch, got[0].Category)
	assert.Equal(t, "Sân bãi", got[0].Label)
	assert.True(t, decimal.NewFromInt(110000).Equal(got[1].Amount))
	assert.True(t, decimal.NewFromInt(500000).Equal(accounting.SumMatchExpenses(txns)))
}
