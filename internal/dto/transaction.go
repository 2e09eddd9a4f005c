package dto

import (
	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the payload for a new ledger entry.
type CreateTransactionRequest struct {
	Date            string                 `json:"date" binding:"required,isodate" example:"2024-05-03"`
	Amount          decimal.Decimal        `json:"amount" binding:"gt=0" swaggertype:"string" example:"100000"`
	Type            domain.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Category        domain.Category        `json:"category" binding:"required,category"`
	Description     string                 `json:"description" binding:"max=500"`
	RelatedMemberID *string                `json:"relatedMemberId"`
	RelatedMatchID  *string                `json:"relatedMatchId"`
}

// UpdateTransactionRequest defines the editable fields of a ledger entry.
type UpdateTransactionRequest struct {
	Date            *string                 `json:"date" binding:"omitempty,isodate"`
	Amount          *decimal.Decimal        `json:"amount" binding:"omitempty,gt=0" swaggertype:"string"`
	Type            *domain.TransactionType `json:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Category        *domain.Category        `json:"category" binding:"omitempty,category"`
	Description     *string                 `json:"description" binding:"omitempty,max=500"`
	RelatedMemberID *string                 `json:"relatedMemberId"`
	RelatedMatchID  *string                 `json:"relatedMatchId"`
}

// ListTransactionsParams defines query parameters for listing ledger entries.
type ListTransactionsParams struct {
	Month     string  `form:"month" binding:"omitempty,yearmonth"`
	Type      string  `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Category  string  `form:"category" binding:"omitempty,category"`
	MemberID  string  `form:"memberId"`
	MatchID   string  `form:"matchId"`
	Limit     int     `form:"limit,default=50" binding:"min=1,max=200"`
	NextToken *string `form:"nextToken"`
}

// TransactionResponse is the API view of a ledger entry.
type TransactionResponse struct {
	ID                string                 `json:"id"`
	Date              string                 `json:"date"`
	Amount            decimal.Decimal        `json:"amount" swaggertype:"string"`
	Type              domain.TransactionType `json:"type"`
	Category          domain.Category        `json:"category"`
	CategoryLabel     string                 `json:"categoryLabel"`
	Description       string                 `json:"description"`
	CreatedBy         string                 `json:"createdBy"`
	RelatedMemberID   *string                `json:"relatedMemberId,omitempty"`
	RelatedMemberName *string                `json:"relatedMemberName,omitempty"`
	RelatedMatchID    *string                `json:"relatedMatchId,omitempty"`
}

// ListTransactionsResponse wraps a page of ledger entries.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ListCategoriesResponse wraps the category table.
type ListCategoriesResponse struct {
	Categories []domain.CategoryInfo `json:"categories"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                t.ID,
		Date:              t.Date,
		Amount:            t.Amount,
		Type:              t.Type,
		Category:          t.Category,
		CategoryLabel:     t.Category.Label(),
		Description:       t.Description,
		CreatedBy:         t.CreatedBy,
		RelatedMemberID:   t.RelatedMemberID,
		RelatedMemberName: t.RelatedMemberName,
		RelatedMatchID:    t.RelatedMatchID,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		out[i] = ToTransactionResponse(t)
	}
	return out
}
