package domain_test

import (
	"testing"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseMatchResult(t *testing.T) {
	tests := []struct {
		result   string
		wantOK   bool
		wantHome int
		wantAway int
	}{
		{result: "2 - 1", wantOK: true, wantHome: 2, wantAway: 1},
		{result: "1-2", wantOK: true, wantHome: 1, wantAway: 2},
		{result: " 10 -  10 ", wantOK: true, wantHome: 10, wantAway: 10},
		{result: "TBD"},
		{result: ""},
		{result: "2 - 1 - 0"},
		{result: "a - 1"},
		{result: "2 - x"},
		{result: "-1 - 2"},
	}

	for _, tt := range tests {
		t.Run(tt.result, func(t *testing.T) {
			home, away, ok := domain.ParseMatchResult(tt.result)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantHome, home)
				assert.Equal(t, tt.wantAway, away)
			}
		})
	}
}

func TestMatch_Outcome(t *testing.T) {
	tests := []struct {
		name   string
		result *string
		want   domain.MatchOutcome
	}{
		{name: "win", result: stringPtr("2 - 1"), want: domain.OutcomeWin},
		{name: "loss", result: stringPtr("1 - 2"), want: domain.OutcomeLoss},
		{name: "draw", result: stringPtr("2 - 2"), want: domain.OutcomeDraw},
		{name: "malformed", result: stringPtr("TBD"), want: domain.OutcomeUnknown},
		{name: "missing", result: nil, want: domain.OutcomeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := domain.Match{Result: tt.result}
			assert.Equal(t, tt.want, m.Outcome())
		})
	}
}

func TestFilterCompletedMatchesByMonth(t *testing.T) {
	matches := []domain.Match{
		{ID: "1", Date: "2024-05-04", Status: domain.MatchCompleted},
		{ID: "2", Date: "2024-05-11", Status: domain.MatchScheduled},
		{ID: "3", Date: "2024-05-18", Status: domain.MatchCancelled},
		{ID: "4", Date: "2024-06-01", Status: domain.MatchCompleted},
	}

	got := domain.FilterCompletedMatchesByMonth(matches, "2024-05")
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
	assert.Len(t, domain.FilterMatchesByMonth(matches, "2024-05"), 3)
}

func TestMatch_OpponentName(t *testing.T) {
	assert.Equal(t, "FC Hà Nội", domain.Match{Opponent: stringPtr("FC Hà Nội")}.OpponentName())
	assert.Equal(t, "Đội bạn", domain.Match{}.OpponentName())
	assert.Equal(t, "Đội bạn", domain.Match{Opponent: stringPtr("  ")}.OpponentName())
}
