package dto

import (
	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMemberRequest defines the payload for adding a member to the roster.
type CreateMemberRequest struct {
	Name           string              `json:"name" binding:"required,max=100"`
	Position       string              `json:"position" binding:"max=50"`
	Department     string              `json:"department" binding:"max=100"`
	SupportLevel   decimal.Decimal     `json:"supportLevel" binding:"gte=0" swaggertype:"string" example:"200000"`
	PhoneNumber    string              `json:"phoneNumber" binding:"max=20"`
	Status         domain.MemberStatus `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	Type           domain.MemberType   `json:"type" binding:"omitempty,oneof=INTERNAL EXTERNAL"`
	MonthlyFeePaid bool                `json:"monthlyFeePaid"`
	Notes          *string             `json:"notes" binding:"omitempty,max=500"`
}

// UpdateMemberRequest defines the fields that can be changed on a member.
// Nil fields are left untouched.
type UpdateMemberRequest struct {
	Name           *string              `json:"name" binding:"omitempty,min=1,max=100"`
	Position       *string              `json:"position" binding:"omitempty,max=50"`
	Department     *string              `json:"department" binding:"omitempty,max=100"`
	SupportLevel   *decimal.Decimal     `json:"supportLevel" binding:"omitempty,gte=0" swaggertype:"string"`
	PhoneNumber    *string              `json:"phoneNumber" binding:"omitempty,max=20"`
	Status         *domain.MemberStatus `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	Type           *domain.MemberType   `json:"type" binding:"omitempty,oneof=INTERNAL EXTERNAL"`
	MonthlyFeePaid *bool                `json:"monthlyFeePaid"`
	Notes          *string              `json:"notes" binding:"omitempty,max=500"`
}

// ListMembersParams defines query parameters for listing members.
type ListMembersParams struct {
	Status string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	Type   string `form:"type" binding:"omitempty,oneof=INTERNAL EXTERNAL"`
}

// MemberResponse is the API view of a member.
type MemberResponse struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Position       string              `json:"position"`
	Department     string              `json:"department"`
	SupportLevel   decimal.Decimal     `json:"supportLevel" swaggertype:"string"`
	PhoneNumber    string              `json:"phoneNumber"`
	Status         domain.MemberStatus `json:"status"`
	Type           domain.MemberType   `json:"type"`
	MonthlyFeePaid bool                `json:"monthlyFeePaid"`
	Notes          *string             `json:"notes,omitempty"`
}

// ListMembersResponse wraps the roster.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

// ToMemberResponse converts a domain.Member to MemberResponse.
func ToMemberResponse(m domain.Member) MemberResponse {
	return MemberResponse{
		ID:             m.ID,
		Name:           m.Name,
		Position:       m.Position,
		Department:     m.Department,
		SupportLevel:   m.SupportLevel,
		PhoneNumber:    m.PhoneNumber,
		Status:         m.Status,
		Type:           m.Type,
		MonthlyFeePaid: m.MonthlyFeePaid,
		Notes:          m.Notes,
	}
}

// ToListMembersResponse converts a slice of domain.Member.
func ToListMembersResponse(members []domain.Member) ListMembersResponse {
	out := make([]MemberResponse, len(members))
	for i, m := range members {
		out[i] = ToMemberResponse(m)
	}
	return ListMembersResponse{Members: out}
}
