package dto

import "github.com/shopspring/decimal"

// RecordDuesPaymentRequest records a member's monthly dues. Amount defaults to
// the member's supportLevel.
type RecordDuesPaymentRequest struct {
	Month    string           `json:"month" binding:"required,yearmonth" example:"2024-05"`
	MemberID string           `json:"memberId" binding:"required"`
	Amount   *decimal.Decimal `json:"amount" binding:"omitempty,gt=0" swaggertype:"string"`
}
