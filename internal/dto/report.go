package dto

import (
	"time"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FreezeMonthRequest asks for a month to be reconciled and archived.
type FreezeMonthRequest struct {
	Month         string `json:"month" binding:"required,yearmonth" example:"2024-05"`
	WithNarrative *bool  `json:"withNarrative"`
}

// NarrativeEnabled defaults to true when the flag is omitted.
func (r FreezeMonthRequest) NarrativeEnabled() bool {
	return r.WithNarrative == nil || *r.WithNarrative
}

// MonthQuery is the month selector used by read endpoints.
type MonthQuery struct {
	Month string `form:"month" binding:"required,yearmonth"`
}

// MemberStatResponse is one member's attendance line.
type MemberStatResponse struct {
	domain.MemberMonthlyStat
	Warning bool `json:"warning"`
}

// MonthlySummaryResponse is the computed rollup of a month.
type MonthlySummaryResponse struct {
	Month           string               `json:"month"`
	TotalIncome     decimal.Decimal      `json:"totalIncome" swaggertype:"string"`
	TotalExpense    decimal.Decimal      `json:"totalExpense" swaggertype:"string"`
	Balance         decimal.Decimal      `json:"balance" swaggertype:"string"`
	MatchCount      int                  `json:"matchCount"`
	WinCount        int                  `json:"winCount"`
	DrawCount       int                  `json:"drawCount"`
	LossCount       int                  `json:"lossCount"`
	WinRate         float64              `json:"winRate"`
	MemberStats     []MemberStatResponse `json:"memberStats"`
	UnpaidMemberIDs []string             `json:"unpaidMemberIds"`
}

// MonthlyReportResponse is the API view of a frozen report.
type MonthlyReportResponse struct {
	ID string `json:"id"`
	MonthlySummaryResponse
	AISummary     *string   `json:"aiSummary,omitempty"`
	AISummaryHTML *string   `json:"aiSummaryHtml,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ListReportsResponse wraps the archive.
type ListReportsResponse struct {
	Reports []MonthlyReportResponse `json:"reports"`
}

// UnpaidReminderResponse carries the reminder text for a report's unpaid members.
type UnpaidReminderResponse struct {
	ReportID    string   `json:"reportId"`
	Month       string   `json:"month"`
	MemberNames []string `json:"memberNames"`
	Text        string   `json:"text"`
}

// InsightsResponse is an ad-hoc narrative over the whole club.
type InsightsResponse struct {
	Narrative     string `json:"narrative"`
	NarrativeHTML string `json:"narrativeHtml"`
	Fallback      bool   `json:"fallback"`
}

// ToMonthlySummaryResponse converts a domain.MonthlySummary.
func ToMonthlySummaryResponse(s domain.MonthlySummary) MonthlySummaryResponse {
	stats := make([]MemberStatResponse, len(s.MemberStats))
	for i, st := range s.MemberStats {
		stats[i] = MemberStatResponse{MemberMonthlyStat: st, Warning: st.HasAttendanceWarning()}
	}
	unpaid := s.UnpaidMemberIDs
	if unpaid == nil {
		unpaid = []string{}
	}
	var winRate float64
	if s.MatchCount > 0 {
		winRate = float64(s.WinCount) / float64(s.MatchCount) * 100
	}
	return MonthlySummaryResponse{
		Month:           s.Month,
		TotalIncome:     s.TotalIncome,
		TotalExpense:    s.TotalExpense,
		Balance:         s.Balance,
		MatchCount:      s.MatchCount,
		WinCount:        s.WinCount,
		DrawCount:       s.DrawCount,
		LossCount:       s.LossCount,
		WinRate:         winRate,
		MemberStats:     stats,
		UnpaidMemberIDs: unpaid,
	}
}

// ToMonthlyReportResponse converts a domain.MonthlyReport. summaryHTML is the
// rendered narrative, if any.
func ToMonthlyReportResponse(r domain.MonthlyReport, summaryHTML *string) MonthlyReportResponse {
	return MonthlyReportResponse{
		ID:                     r.ID,
		MonthlySummaryResponse: ToMonthlySummaryResponse(r.MonthlySummary),
		AISummary:              r.AISummary,
		AISummaryHTML:          summaryHTML,
		CreatedAt:              r.CreatedAt,
	}
}
