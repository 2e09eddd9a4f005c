package domain

import (
	"strconv"
	"strings"
)

// MatchType is INTERNAL (intra-squad) or EXTERNAL (against an opponent).
type MatchType string

const (
	MatchInternal MatchType = "INTERNAL"
	MatchExternal MatchType = "EXTERNAL"
)

// MatchStatus is the lifecycle state of a match.
type MatchStatus string

const (
	MatchScheduled MatchStatus = "SCHEDULED"
	MatchCompleted MatchStatus = "COMPLETED"
	MatchCancelled MatchStatus = "CANCELLED"
)

// DefaultMatchResult is stored when a match is completed without a score.
const DefaultMatchResult = "0 - 0"

// Match is a scheduled or played game.
type Match struct {
	ID             string      `json:"id"`
	Date           string      `json:"date"` // YYYY-MM-DD
	Time           string      `json:"time"`
	Opponent       *string     `json:"opponent,omitempty"`
	Location       string      `json:"location"`
	Type           MatchType   `json:"type"`
	Result         *string     `json:"result,omitempty"` // "<home> - <away>"
	Status         MatchStatus `json:"status"`
	Description    *string     `json:"description,omitempty"`
	ParticipantIDs []string    `json:"participantIds,omitempty"`
}

// IsCompleted reports whether the match has been played.
func (m Match) IsCompleted() bool {
	return m.Status == MatchCompleted
}

// HasParticipant reports whether memberID played in the match.
func (m Match) HasParticipant(memberID string) bool {
	for _, id := range m.ParticipantIDs {
		if id == memberID {
			return true
		}
	}
	return false
}

// OpponentName returns the opponent or a generic label.
func (m Match) OpponentName() string {
	if m.Opponent != nil && strings.TrimSpace(*m.Opponent) != "" {
		return *m.Opponent
	}
	return "Đội bạn"
}

// MatchOutcome is the home side's result.
type MatchOutcome int

const (
	OutcomeUnknown MatchOutcome = iota
	OutcomeWin
	OutcomeDraw
	OutcomeLoss
)

// ParseMatchResult parses "<home> - <away>". ok is false for anything that is
// not exactly two dash-separated integers; callers skip such results.
func ParseMatchResult(result string) (home, away int, ok bool) {
	parts := strings.Split(result, "-")
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	a, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return h, a, true
}

// Outcome derives the home-side outcome from the result string.
func (m Match) Outcome() MatchOutcome {
	if m.Result == nil {
		return OutcomeUnknown
	}
	h, a, ok := ParseMatchResult(*m.Result)
	if !ok {
		return OutcomeUnknown
	}
	switch {
	case h > a:
		return OutcomeWin
	case h < a:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}

// FilterCompletedMatchesByMonth returns the COMPLETED matches dated in month.
func FilterCompletedMatchesByMonth(matches []Match, month string) []Match {
	out := make([]Match, 0)
	for _, m := range matches {
		if InMonth(m.Date, month) && m.IsCompleted() {
			out = append(out, m)
		}
	}
	return out
}

// FilterMatchesByMonth returns every match dated in month regardless of status.
func FilterMatchesByMonth(matches []Match, month string) []Match {
	out := make([]Match, 0)
	for _, m := range matches {
		if InMonth(m.Date, month) {
			out = append(out, m)
		}
	}
	return out
}
