package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	portssvc "github.com/SscSPs/club_manager_app/internal/core/ports/services"
	"github.com/SscSPs/club_manager_app/internal/dto"
	"github.com/SscSPs/club_manager_app/internal/platform/metrics"
	"github.com/SscSPs/club_manager_app/internal/utils"
)

type insightsService struct {
	BaseService
	state    *StateContainer
	narrator portssvc.NarrativeGenerator
	metrics  *metrics.Metrics
}

// NewInsightsService creates the whole-club narrative service. narrator may be nil.
func NewInsightsService(state *StateContainer, narrator portssvc.NarrativeGenerator, m *metrics.Metrics) portssvc.InsightsSvc {
	return &insightsService{state: state, narrator: narrator, metrics: m}
}

var _ portssvc.InsightsSvc = (*insightsService)(nil)

func (s *insightsService) GenerateInsights(ctx context.Context) (*dto.InsightsResponse, error) {
	snap := s.state.Snapshot()

	text := domain.NarrativeFallbackText
	fallback := true
	if s.narrator != nil {
		generated, err := s.narrator.GenerateNarrative(ctx, domain.NarrativeInput{
			Transactions: snap.Transactions,
			Members:      snap.Members,
			Matches:      snap.Matches,
		})
		if err != nil {
			s.metrics.NarrativeRequested(metrics.OutcomeFallback)
			s.GetLogger(ctx).Warn("Insights generation failed", slog.String("error", err.Error()))
		} else {
			s.metrics.NarrativeRequested(metrics.OutcomeSuccess)
			text, fallback = generated, false
		}
	} else {
		s.metrics.NarrativeRequested(metrics.OutcomeSkipped)
	}

	html, err := utils.RenderMarkdown(text)
	if err != nil {
		s.LogError(ctx, err, "Failed to render insights markdown")
		html = ""
	}
	return &dto.InsightsResponse{Narrative: text, NarrativeHTML: html, Fallback: fallback}, nil
}
