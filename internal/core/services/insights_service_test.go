package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/SscSPs/club_manager_app/internal/core/services"
	"github.com/SscSPs/club_manager_app/internal/platform/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInsightsService_Generated(t *testing.T) {
	state, _ := newContainer(may2024State())
	narrator := new(MockNarrativeGenerator)
	m := metrics.New()
	narrator.On("GenerateNarrative", mock.Anything, mock.MatchedBy(func(in domain.NarrativeInput) bool {
		return len(in.Members) == 2 && len(in.Transactions) == 2 && len(in.Matches) == 1
	})).Return("Quỹ **ổn**", nil).Once()

	resp, err := services.NewInsightsService(state, narrator, m).GenerateInsights(context.Background())
	require.NoError(t, err)
	assert.False(t, resp.Fallback)
	assert.Equal(t, "Quỹ **ổn**", resp.Narrative)
	assert.Contains(t, resp.NarrativeHTML, "<strong>ổn</strong>")
	assert.Contains(t, scrape(m), `club_narrative_requests_total{outcome="success"} 1`)
	narrator.AssertExpectations(t)
}

func TestInsightsService_Fallback(t *testing.T) {
	state, _ := newContainer(may2024State())
	narrator := new(MockNarrativeGenerator)
	m := metrics.New()
	narrator.On("GenerateNarrative", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded")).Once()

	resp, err := services.NewInsightsService(state, narrator, m).GenerateInsights(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Fallback)
	assert.Equal(t, domain.NarrativeFallbackText, resp.Narrative)
	assert.Contains(t, scrape(m), `club_narrative_requests_total{outcome="fallback"} 1`)
}

func TestInsightsService_NoNarrator(t *testing.T) {
	state, _ := newContainer(domain.AppState{})

	resp, err := services.NewInsightsService(state, nil, nil).GenerateInsights(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Fallback)
	assert.Equal(t, domain.NarrativeFallbackText, resp.Narrative)
}
