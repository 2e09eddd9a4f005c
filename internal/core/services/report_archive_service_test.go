package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/club_manager_app/internal/apperrors"
	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/SscSPs/club_manager_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frozen(id, month string, unpaid ...string) domain.MonthlyReport {
	return domain.NewMonthlyReport(id, domain.MonthlySummary{Month: month, UnpaidMemberIDs: unpaid}, nil,
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
}

func TestReportArchive_ListAndLookup(t *testing.T) {
	ctx := context.Background()
	state, _ := newContainer(may2024State())
	archive := services.NewReportArchiveService(state)

	require.NoError(t, archive.SaveReport(ctx, frozen("r-apr", "2024-04")))
	require.NoError(t, archive.SaveReport(ctx, frozen("r-may", "2024-05", "B")))

	reports, err := archive.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "2024-05", reports[0].Month)

	byMonth, err := archive.GetReportByMonth(ctx, "2024-04")
	require.NoError(t, err)
	assert.Equal(t, "r-apr", byMonth.ID)

	_, err = archive.GetReportByMonth(ctx, "2024-03")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = archive.GetReportByMonth(ctx, "bad")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	require.NoError(t, archive.DeleteReport(ctx, "r-apr"))
	assert.ErrorIs(t, archive.DeleteReport(ctx, "r-apr"), apperrors.ErrNotFound)
}

func TestReportArchive_UnpaidReminder(t *testing.T) {
	ctx := context.Background()
	state, _ := newContainer(may2024State())
	archive := services.NewReportArchiveService(state)
	members := services.NewMemberService(state)

	require.NoError(t, archive.SaveReport(ctx, frozen("r-may", "2024-05", "B", "A")))
	require.NoError(t, members.DeleteMember(ctx, "A"))

	reminder, err := archive.UnpaidReminder(ctx, "r-may")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bảo", domain.UnknownMemberName}, reminder.MemberNames)
	assert.Equal(t, "Dòng thông báo nhắc nợ quỹ tháng 2024-05: Bảo, Thành viên cũ. Đề nghị anh em nộp quỹ đúng hạn!", reminder.Text)

	_, err = archive.UnpaidReminder(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
