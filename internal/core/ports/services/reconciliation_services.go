package services

import (
	"context"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/SscSPs/club_manager_app/internal/dto"
)

// FreezeOptions tune a freeze.
type FreezeOptions struct {
	WithNarrative bool
}

// ReconciliationSvc computes and freezes monthly reports.
type ReconciliationSvc interface {
	// PreviewMonth computes the rollup for month without archiving it.
	PreviewMonth(ctx context.Context, month string) (*domain.MonthlySummary, error)

	// FreezeMonth computes the rollup, optionally attaches a narrative and
	// archives it, replacing any report for the same month.
	FreezeMonth(ctx context.Context, month string, opts FreezeOptions) (*domain.MonthlyReport, error)
}

// ReportArchiveReaderSvc reads frozen reports.
type ReportArchiveReaderSvc interface {
	ListReports(ctx context.Context) ([]domain.MonthlyReport, error)
	GetReport(ctx context.Context, reportID string) (*domain.MonthlyReport, error)
	GetReportByMonth(ctx context.Context, month string) (*domain.MonthlyReport, error)
	// UnpaidReminder builds the dues reminder for a report's unpaid list.
	UnpaidReminder(ctx context.Context, reportID string) (*dto.UnpaidReminderResponse, error)
}

// ReportArchiveWriterSvc stores and removes frozen reports.
type ReportArchiveWriterSvc interface {
	// SaveReport archives report, replacing any report for the same month.
	SaveReport(ctx context.Context, report domain.MonthlyReport) error
	DeleteReport(ctx context.Context, reportID string) error
}

// ReportArchiveSvcFacade combines all report archive interfaces.
type ReportArchiveSvcFacade interface {
	ReportArchiveReaderSvc
	ReportArchiveWriterSvc
}

// InsightsSvc produces an ad-hoc narrative over the whole club.
type InsightsSvc interface {
	GenerateInsights(ctx context.Context) (*dto.InsightsResponse, error)
}
