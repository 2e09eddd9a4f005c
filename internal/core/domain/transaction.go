package domain

import (
	"fmt"

	"github.com/SscSPs/club_manager_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType is the ledger direction of a transaction.
type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// Transaction is one ledger entry. Member and match references are weak:
// they are never checked for existence and may dangle after deletes.
type Transaction struct {
	ID                string          `json:"id"`
	Date              string          `json:"date"` // YYYY-MM-DD
	Amount            decimal.Decimal `json:"amount"`
	Type              TransactionType `json:"type"`
	Category          Category        `json:"category"`
	Description       string          `json:"description"`
	CreatedBy         string          `json:"createdBy"`
	RelatedMemberID   *string         `json:"relatedMemberId,omitempty"`
	RelatedMemberName *string         `json:"relatedMemberName,omitempty"`
	RelatedMatchID    *string         `json:"relatedMatchId,omitempty"`
}

// Validate checks the shape of a transaction against the category table.
func (t Transaction) Validate() error {
	if t.ID == "" {
		return apperrors.Validationf("transaction id is required")
	}
	if _, err := ParseDate(t.Date); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if !t.Amount.IsPositive() {
		return apperrors.Validationf("amount must be greater than zero")
	}
	if t.Type != TransactionIncome && t.Type != TransactionExpense {
		return apperrors.Validationf("unknown transaction type %q", t.Type)
	}
	info, ok := LookupCategory(t.Category)
	if !ok {
		return apperrors.Validationf("unknown category %q", t.Category)
	}
	if !info.Allows(t.Type) {
		return apperrors.Validationf("category %s cannot be used for %s", t.Category, t.Type)
	}
	if info.RequiresMember && (t.RelatedMemberID == nil || *t.RelatedMemberID == "") {
		return apperrors.Validationf("category %s requires a member reference", t.Category)
	}
	return nil
}

// IsIncome reports whether the transaction is an income.
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionIncome
}

// FilterTransactionsByMonth returns transactions whose date falls in month.
func FilterTransactionsByMonth(txns []Transaction, month string) []Transaction {
	out := make([]Transaction, 0)
	for _, t := range txns {
		if InMonth(t.Date, month) {
			out = append(out, t)
		}
	}
	return out
}
