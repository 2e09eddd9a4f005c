package domain

import "github.com/shopspring/decimal"

// MemberStatus marks whether a member counts toward attendance and dues.
type MemberStatus string

const (
	MemberActive   MemberStatus = "ACTIVE"
	MemberInactive MemberStatus = "INACTIVE"
)

// MemberType distinguishes the club's own players from guests.
type MemberType string

const (
	MemberInternal MemberType = "INTERNAL"
	MemberExternal MemberType = "EXTERNAL"
)

// UnknownMemberName is shown when a weak reference no longer resolves.
const UnknownMemberName = "Thành viên cũ"

// Member is a roster entry.
type Member struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Position       string          `json:"position"`
	Department     string          `json:"department"`
	SupportLevel   decimal.Decimal `json:"supportLevel"` // monthly due
	PhoneNumber    string          `json:"phoneNumber"`
	Status         MemberStatus    `json:"status"`
	Type           MemberType      `json:"type"`
	MonthlyFeePaid bool            `json:"monthlyFeePaid"`
	Notes          *string         `json:"notes,omitempty"`
}

// IsActive reports whether the member is ACTIVE.
func (m Member) IsActive() bool {
	return m.Status == MemberActive
}

// FindMember looks a member up by id.
func FindMember(members []Member, id string) (Member, bool) {
	for _, m := range members {
		if m.ID == id {
			return m, true
		}
	}
	return Member{}, false
}

// MemberName resolves a member id to a display name, falling back to UnknownMemberName.
func MemberName(members []Member, id string) string {
	if m, ok := FindMember(members, id); ok {
		return m.Name
	}
	return UnknownMemberName
}

// ActiveMembers returns the ACTIVE subset, preserving order.
func ActiveMembers(members []Member) []Member {
	out := make([]Member, 0, len(members))
	for _, m := range members {
		if m.IsActive() {
			out = append(out, m)
		}
	}
	return out
}
