package domain_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_TransactionsPrependAndDoNotAlias(t *testing.T) {
	initial := domain.AppState{Transactions: []domain.Transaction{{ID: "old"}}}

	next := domain.Reduce(initial, domain.AddTransaction{Transaction: domain.Transaction{ID: "new"}})

	require.Len(t, next.Transactions, 2)
	assert.Equal(t, "new", next.Transactions[0].ID)
	assert.Equal(t, "old", next.Transactions[1].ID)
	assert.Len(t, initial.Transactions, 1, "input state must not change")

	updated := domain.Reduce(next, domain.UpdateTransaction{Transaction: domain.Transaction{ID: "old", Description: "edited"}})
	assert.Equal(t, "edited", updated.Transactions[1].Description)
	assert.Empty(t, next.Transactions[1].Description, "update must copy, not write through")
}

func TestReduce_UpdateMissingIsNoop(t *testing.T) {
	initial := domain.AppState{
		Members: []domain.Member{{ID: "a", Name: "A"}},
		Matches: []domain.Match{{ID: "m1"}},
	}

	next := domain.ReduceAll(initial,
		domain.UpdateMember{Member: domain.Member{ID: "ghost", Name: "Ghost"}},
		domain.UpdateMatch{Match: domain.Match{ID: "ghost"}},
		domain.UpdateTransaction{Transaction: domain.Transaction{ID: "ghost"}},
	)

	assert.Equal(t, initial.Members, next.Members)
	assert.Equal(t, initial.Matches, next.Matches)
	assert.Empty(t, next.Transactions)
}

func TestReduce_MembersAppendAndDelete(t *testing.T) {
	s := domain.AppState{}
	s = domain.ReduceAll(s,
		domain.AddMember{Member: domain.Member{ID: "a"}},
		domain.AddMember{Member: domain.Member{ID: "b"}},
	)
	require.Len(t, s.Members, 2)
	assert.Equal(t, "a", s.Members[0].ID)

	s = domain.Reduce(s, domain.DeleteMember{ID: "a"})
	require.Len(t, s.Members, 1)
	assert.Equal(t, "b", s.Members[0].ID)
}

func TestReduce_DeleteMemberLeavesReferencesDangling(t *testing.T) {
	memberID := "a"
	s := domain.AppState{
		Members:      []domain.Member{{ID: memberID}},
		Transactions: []domain.Transaction{{ID: "t", RelatedMemberID: &memberID}},
		Matches:      []domain.Match{{ID: "m", ParticipantIDs: []string{memberID}}},
	}

	s = domain.Reduce(s, domain.DeleteMember{ID: memberID})

	assert.Empty(t, s.Members)
	assert.Equal(t, memberID, *s.Transactions[0].RelatedMemberID)
	assert.Equal(t, []string{memberID}, s.Matches[0].ParticipantIDs)
	assert.Equal(t, domain.UnknownMemberName, domain.MemberName(s.Members, memberID))
}

func TestReduce_SaveReportReplacesSameMonth(t *testing.T) {
	s := domain.AppState{MonthlyReports: []domain.MonthlyReport{
		{ID: "april", MonthlySummary: domain.MonthlySummary{Month: "2024-04"}},
	}}

	s = domain.Reduce(s, domain.SaveReport{Report: domain.MonthlyReport{ID: "may-1", MonthlySummary: domain.MonthlySummary{Month: "2024-05", MatchCount: 1}}})
	s = domain.Reduce(s, domain.SaveReport{Report: domain.MonthlyReport{ID: "may-2", MonthlySummary: domain.MonthlySummary{Month: "2024-05", MatchCount: 2}}})

	require.Len(t, s.MonthlyReports, 2)
	assert.Equal(t, "may-2", s.MonthlyReports[0].ID)
	assert.Equal(t, 2, s.MonthlyReports[0].MatchCount)
	assert.Equal(t, "april", s.MonthlyReports[1].ID)

	s = domain.Reduce(s, domain.DeleteReport{ID: "april"})
	require.Len(t, s.MonthlyReports, 1)
}

func TestReduce_RecordAccessCapsHistory(t *testing.T) {
	s := domain.AppState{}
	for i := 0; i < domain.MaxAccessHistory+5; i++ {
		s = domain.Reduce(s, domain.RecordAccess{Record: domain.AccessRecord{
			ID:        fmt.Sprintf("r%d", i),
			Timestamp: time.Unix(int64(i), 0),
		}})
	}

	require.Len(t, s.AccessHistory, domain.MaxAccessHistory)
	assert.Equal(t, fmt.Sprintf("r%d", domain.MaxAccessHistory+4), s.AccessHistory[0].ID, "newest first")
	assert.Equal(t, "r5", s.AccessHistory[domain.MaxAccessHistory-1].ID, "oldest dropped first")
}

func TestReduce_AdminEmails(t *testing.T) {
	s := domain.AppState{AdminEmails: []string{"admin@jcunited.com"}}

	s = domain.ReduceAll(s,
		domain.AddAdminEmail{Email: "  Coach@JCUnited.com "},
		domain.AddAdminEmail{Email: "coach@jcunited.com"},
		domain.AddAdminEmail{Email: "   "},
	)
	assert.Equal(t, []string{"admin@jcunited.com", "coach@jcunited.com"}, s.AdminEmails)

	s = domain.Reduce(s, domain.RemoveAdminEmail{Email: "ADMIN@jcunited.com"})
	assert.Equal(t, []string{"coach@jcunited.com"}, s.AdminEmails)

	s = domain.Reduce(s, domain.SetSystemPassword{Password: "s3cret"})
	assert.Equal(t, "s3cret", s.SystemPassword)
}

func TestAppState_WithDefaults(t *testing.T) {
	defaults := domain.StateDefaults{AdminEmails: []string{" Admin@JCUnited.com"}, SystemPassword: "123456"}

	s := domain.AppState{}.WithDefaults(defaults)

	assert.Equal(t, []string{"admin@jcunited.com"}, s.AdminEmails)
	assert.Equal(t, "123456", s.SystemPassword)
	assert.NotNil(t, s.Transactions)
	assert.NotNil(t, s.AccessHistory)
	assert.NotNil(t, s.MonthlyReports)

	kept := domain.AppState{AdminEmails: []string{"boss@club.vn"}, SystemPassword: "keep"}.WithDefaults(defaults)
	assert.Equal(t, []string{"boss@club.vn"}, kept.AdminEmails)
	assert.Equal(t, "keep", kept.SystemPassword)
}

func TestNameFromEmail(t *testing.T) {
	assert.Equal(t, "Nguyen Van A", domain.NameFromEmail("nguyen.van.a@gmail.com"))
	assert.Equal(t, "Admin", domain.NameFromEmail("admin@jcunited.com"))
	assert.Equal(t, "Trinhdanghoang16kdhkthn", domain.NameFromEmail("trinhdanghoang16kdhkthn@gmail.com"))
	assert.Equal(t, "Đặng Việt", domain.NameFromEmail("đặng.việt@x.com"))
	assert.Equal(t, "Ánh", domain.NameFromEmail("ánh@x.com"))
}

func TestIsAdminEmail(t *testing.T) {
	list := []string{"admin@jcunited.com"}
	assert.True(t, domain.IsAdminEmail(list, " ADMIN@jcunited.com "))
	assert.False(t, domain.IsAdminEmail(list, "guest@jcunited.com"))
	assert.False(t, domain.IsAdminEmail(list, ""))
}
