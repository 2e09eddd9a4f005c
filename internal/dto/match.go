package dto

import (
	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMatchRequest defines the payload for scheduling a match.
// Either Result or both scores may be given; scores win when both are set.
type CreateMatchRequest struct {
	Date           string           `json:"date" binding:"required,isodate" example:"2024-05-04"`
	Time           string           `json:"time" binding:"max=10" example:"19:30"`
	Location       string           `json:"location" binding:"required,max=200"`
	Type           domain.MatchType `json:"type" binding:"required,oneof=INTERNAL EXTERNAL"`
	Opponent       *string          `json:"opponent" binding:"omitempty,max=100"`
	Description    *string          `json:"description" binding:"omitempty,max=500"`
	ParticipantIDs []string         `json:"participantIds"`
	Result         *string          `json:"result" binding:"omitempty,max=20"`
	HomeScore      *int             `json:"homeScore" binding:"omitempty,min=0"`
	AwayScore      *int             `json:"awayScore" binding:"omitempty,min=0"`
}

// UpdateMatchRequest defines the editable fields of a match.
type UpdateMatchRequest struct {
	Date           *string             `json:"date" binding:"omitempty,isodate"`
	Time           *string             `json:"time" binding:"omitempty,max=10"`
	Location       *string             `json:"location" binding:"omitempty,min=1,max=200"`
	Type           *domain.MatchType   `json:"type" binding:"omitempty,oneof=INTERNAL EXTERNAL"`
	Status         *domain.MatchStatus `json:"status" binding:"omitempty,oneof=SCHEDULED COMPLETED CANCELLED"`
	Opponent       *string             `json:"opponent" binding:"omitempty,max=100"`
	Description    *string             `json:"description" binding:"omitempty,max=500"`
	ParticipantIDs *[]string           `json:"participantIds"`
	Result         *string             `json:"result" binding:"omitempty,max=20"`
	HomeScore      *int                `json:"homeScore" binding:"omitempty,min=0"`
	AwayScore      *int                `json:"awayScore" binding:"omitempty,min=0"`
}

// CompleteMatchRequest optionally carries the final score.
type CompleteMatchRequest struct {
	Result    *string `json:"result" binding:"omitempty,max=20"`
	HomeScore *int    `json:"homeScore" binding:"omitempty,min=0"`
	AwayScore *int    `json:"awayScore" binding:"omitempty,min=0"`
}

// RecordMatchExpensesRequest lists the fees of a played match. Zero fees are skipped.
type RecordMatchExpensesRequest struct {
	PitchFee decimal.Decimal `json:"pitchFee" binding:"gte=0" swaggertype:"string" example:"500000"`
	WaterFee decimal.Decimal `json:"waterFee" binding:"gte=0" swaggertype:"string" example:"50000"`
	OtherFee decimal.Decimal `json:"otherFee" binding:"gte=0" swaggertype:"string" example:"0"`
}

// ListMatchesParams defines query parameters for listing matches.
type ListMatchesParams struct {
	Month  string `form:"month" binding:"omitempty,yearmonth"`
	Status string `form:"status" binding:"omitempty,oneof=SCHEDULED COMPLETED CANCELLED"`
}

// MatchResponse is the API view of a match.
type MatchResponse struct {
	domain.Match
}

// ListMatchesResponse wraps a list of matches.
type ListMatchesResponse struct {
	Matches []MatchResponse `json:"matches"`
}

// RecordMatchExpensesResponse lists the created expenses.
type RecordMatchExpensesResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToMatchResponse converts a domain.Match.
func ToMatchResponse(m domain.Match) MatchResponse {
	if m.ParticipantIDs == nil {
		m.ParticipantIDs = []string{}
	}
	return MatchResponse{Match: m}
}

// ToListMatchesResponse converts a slice of domain.Match.
func ToListMatchesResponse(matches []domain.Match) ListMatchesResponse {
	out := make([]MatchResponse, len(matches))
	for i, m := range matches {
		out[i] = ToMatchResponse(m)
	}
	return ListMatchesResponse{Matches: out}
}
