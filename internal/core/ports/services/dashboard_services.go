package services

import (
	"context"
	"time"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
)

// DashboardSvc builds the read-only overviews.
type DashboardSvc interface {
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
	// FinancialOverview covers the six months up to and including now's month.
	FinancialOverview(ctx context.Context, now time.Time) (*domain.FinancialOverview, error)
}
