package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	portssvc "github.com/SscSPs/club_manager_app/internal/core/ports/services"
	"github.com/SscSPs/club_manager_app/internal/middleware"
	"github.com/SscSPs/club_manager_app/internal/platform/metrics"
	"github.com/SscSPs/club_manager_app/internal/utils"
	"github.com/google/uuid"
)

type reconciliationService struct {
	BaseService
	state     *StateContainer
	archive   portssvc.ReportArchiveWriterSvc
	narrator  portssvc.NarrativeGenerator
	metrics   *metrics.Metrics
	analytics *utils.PosthogClientWrapper
	now       func() time.Time
}

// ReconciliationServiceOption is a function that configures a reconciliationService.
type ReconciliationServiceOption func(*reconciliationService)

// WithNarrativeGenerator sets the generator used for report narratives.
// Without one, every requested narrative is the fallback text.
func WithNarrativeGenerator(g portssvc.NarrativeGenerator) ReconciliationServiceOption {
	return func(s *reconciliationService) {
		s.narrator = g
	}
}

func WithReconciliationMetrics(m *metrics.Metrics) ReconciliationServiceOption {
	return func(s *reconciliationService) {
		s.metrics = m
	}
}

func WithReconciliationAnalytics(a *utils.PosthogClientWrapper) ReconciliationServiceOption {
	return func(s *reconciliationService) {
		s.analytics = a
	}
}

// WithReconciliationClock overrides the report timestamp source.
func WithReconciliationClock(now func() time.Time) ReconciliationServiceOption {
	return func(s *reconciliationService) {
		s.now = now
	}
}

// NewReconciliationService creates the monthly freeze workflow.
func NewReconciliationService(state *StateContainer, archive portssvc.ReportArchiveWriterSvc, opts ...ReconciliationServiceOption) portssvc.ReconciliationSvc {
	s := &reconciliationService{
		state:   state,
		archive: archive,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ReconciliationSvc = (*reconciliationService)(nil)

func (s *reconciliationService) PreviewMonth(ctx context.Context, month string) (*domain.MonthlySummary, error) {
	snap := s.state.Snapshot()
	summary, err := ReconcileMonth(snap.Transactions, snap.Members, snap.Matches, month)
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Month previewed", slog.String("month", month))
	return &summary, nil
}

func (s *reconciliationService) FreezeMonth(ctx context.Context, month string, opts portssvc.FreezeOptions) (*domain.MonthlyReport, error) {
	snap := s.state.Snapshot()
	summary, err := ReconcileMonth(snap.Transactions, snap.Members, snap.Matches, month)
	if err != nil {
		return nil, err
	}

	// The narrative call runs outside any lock. A concurrent freeze of the
	// same month may finish first; the later save wins.
	var aiSummary *string
	if opts.WithNarrative {
		text := s.narrate(ctx, snap, month)
		aiSummary = &text
	}

	report := domain.NewMonthlyReport(uuid.NewString(), summary, aiSummary, s.now())
	if err := s.archive.SaveReport(ctx, report); err != nil {
		s.metrics.ReportFrozen(metrics.OutcomeFailure)
		s.LogError(ctx, err, "Failed to archive monthly report", slog.String("month", month))
		return nil, fmt.Errorf("failed to freeze month %s: %w", month, err)
	}
	s.metrics.ReportFrozen(metrics.OutcomeSuccess)

	if session, ok := middleware.GetSessionFromCtx(ctx); ok {
		s.analytics.Enqueue(session.User.Email, "report_frozen", map[string]any{
			"month":          month,
			"with_narrative": opts.WithNarrative,
			"match_count":    summary.MatchCount,
		})
	}

	s.LogInfo(ctx, "Monthly report frozen",
		slog.String("month", month),
		slog.String("report_id", report.ID),
		slog.Int("unpaid", len(summary.UnpaidMemberIDs)))
	return &report, nil
}

// narrate never fails; errors become the fallback text.
func (s *reconciliationService) narrate(ctx context.Context, snap domain.AppState, month string) string {
	if s.narrator == nil {
		s.metrics.NarrativeRequested(metrics.OutcomeSkipped)
		return domain.NarrativeFallbackText
	}
	text, err := s.narrator.GenerateNarrative(ctx, domain.NarrativeInput{
		Transactions: domain.FilterTransactionsByMonth(snap.Transactions, month),
		Members:      snap.Members,
		Matches:      domain.FilterMatchesByMonth(snap.Matches, month),
	})
	if err != nil {
		s.metrics.NarrativeRequested(metrics.OutcomeFallback)
		s.GetLogger(ctx).Warn("Narrative generation failed, using fallback",
			slog.String("month", month), slog.String("error", err.Error()))
		return domain.NarrativeFallbackText
	}
	s.metrics.NarrativeRequested(metrics.OutcomeSuccess)
	return text
}
