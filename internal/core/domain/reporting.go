package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MemberMonthlyStat is one member's attendance line in a monthly report.
type MemberMonthlyStat struct {
	MemberID            string `json:"memberId"`
	MemberName          string `json:"memberName"`
	MatchesPlayed       int    `json:"matchesPlayed"`
	TotalMatchesInMonth int    `json:"totalMatchesInMonth"`
	IsPaid              bool   `json:"isPaid"`
	MissedCount         int    `json:"missedCount"`
}

// AttendanceWarningThreshold is the number of missed matches above which a
// member is flagged.
const AttendanceWarningThreshold = 3

// HasAttendanceWarning reports whether the member missed more than the threshold.
func (s MemberMonthlyStat) HasAttendanceWarning() bool {
	return s.MissedCount > AttendanceWarningThreshold
}

// MonthlySummary is the computed rollup of a month, before it is archived.
type MonthlySummary struct {
	Month           string              `json:"month"`
	TotalIncome     decimal.Decimal     `json:"totalIncome"`
	TotalExpense    decimal.Decimal     `json:"totalExpense"`
	Balance         decimal.Decimal     `json:"balance"`
	MatchCount      int                 `json:"matchCount"`
	WinCount        int                 `json:"winCount"`
	DrawCount       int                 `json:"drawCount"`
	LossCount       int                 `json:"lossCount"`
	MemberStats     []MemberMonthlyStat `json:"memberStats"`
	UnpaidMemberIDs []string            `json:"unpaidMemberIds"`
}

// MonthlyReport is a frozen, immutable monthly snapshot. At most one report
// per month is kept; saving another replaces it.
type MonthlyReport struct {
	ID string `json:"id"`
	MonthlySummary
	AISummary *string   `json:"aiSummary,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewMonthlyReport freezes a summary.
func NewMonthlyReport(id string, summary MonthlySummary, aiSummary *string, createdAt time.Time) MonthlyReport {
	return MonthlyReport{
		ID:             id,
		MonthlySummary: summary,
		AISummary:      aiSummary,
		CreatedAt:      createdAt,
	}
}

// NarrativeInput is what the narrative generator gets to look at.
type NarrativeInput struct {
	Transactions []Transaction
	Members      []Member
	Matches      []Match
}

// NarrativeFallbackText replaces the narrative when generation fails.
const NarrativeFallbackText = "Xin lỗi, hiện tại tôi không thể kết nối với AI để phân tích dữ liệu chuyên cần. Vui lòng thử lại sau."
