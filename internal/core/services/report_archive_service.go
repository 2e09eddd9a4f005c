package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/SscSPs/club_manager_app/internal/apperrors"
	"github.com/SscSPs/club_manager_app/internal/core/domain"
	portssvc "github.com/SscSPs/club_manager_app/internal/core/ports/services"
	"github.com/SscSPs/club_manager_app/internal/dto"
)

type reportArchiveService struct {
	BaseService
	state *StateContainer
}

// NewReportArchiveService creates the frozen report archive.
func NewReportArchiveService(state *StateContainer) portssvc.ReportArchiveSvcFacade {
	return &reportArchiveService{state: state}
}

var _ portssvc.ReportArchiveSvcFacade = (*reportArchiveService)(nil)

// ListReports returns the archive, newest month first.
func (s *reportArchiveService) ListReports(ctx context.Context) ([]domain.MonthlyReport, error) {
	snap := s.state.Snapshot()
	reports := make([]domain.MonthlyReport, len(snap.MonthlyReports))
	copy(reports, snap.MonthlyReports)
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Month > reports[j].Month
	})
	return reports, nil
}

func (s *reportArchiveService) GetReport(ctx context.Context, reportID string) (*domain.MonthlyReport, error) {
	report, ok := s.state.Snapshot().FindReport(reportID)
	if !ok {
		return nil, fmt.Errorf("report %s: %w", reportID, apperrors.ErrNotFound)
	}
	return &report, nil
}

func (s *reportArchiveService) GetReportByMonth(ctx context.Context, month string) (*domain.MonthlyReport, error) {
	if _, err := domain.ParseMonth(month); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	report, ok := s.state.Snapshot().FindReportByMonth(month)
	if !ok {
		return nil, fmt.Errorf("report for %s: %w", month, apperrors.ErrNotFound)
	}
	return &report, nil
}

// UnpaidReminder resolves names against the current roster; members deleted
// since the freeze show up under a placeholder name.
func (s *reportArchiveService) UnpaidReminder(ctx context.Context, reportID string) (*dto.UnpaidReminderResponse, error) {
	snap := s.state.Snapshot()
	report, ok := snap.FindReport(reportID)
	if !ok {
		return nil, fmt.Errorf("report %s: %w", reportID, apperrors.ErrNotFound)
	}

	names := make([]string, 0, len(report.UnpaidMemberIDs))
	for _, id := range report.UnpaidMemberIDs {
		names = append(names, domain.MemberName(snap.Members, id))
	}
	return &dto.UnpaidReminderResponse{
		ReportID:    report.ID,
		Month:       report.Month,
		MemberNames: names,
		Text: fmt.Sprintf("Dòng thông báo nhắc nợ quỹ tháng %s: %s. Đề nghị anh em nộp quỹ đúng hạn!",
			report.Month, strings.Join(names, ", ")),
	}, nil
}

func (s *reportArchiveService) SaveReport(ctx context.Context, report domain.MonthlyReport) error {
	if _, err := s.state.Dispatch(ctx, domain.SaveReport{Report: report}); err != nil {
		return err
	}
	s.LogDebug(ctx, "Report archived", slog.String("report_id", report.ID), slog.String("month", report.Month))
	return nil
}

func (s *reportArchiveService) DeleteReport(ctx context.Context, reportID string) error {
	_, err := s.state.Update(ctx, func(st domain.AppState) ([]domain.Action, error) {
		if _, ok := st.FindReport(reportID); !ok {
			return nil, fmt.Errorf("report %s: %w", reportID, apperrors.ErrNotFound)
		}
		return []domain.Action{domain.DeleteReport{ID: reportID}}, nil
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Report deleted", slog.String("report_id", reportID))
	return nil
}
