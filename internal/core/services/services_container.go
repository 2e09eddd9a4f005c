package services

import (
	"context"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/club_manager_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/club_manager_app/internal/core/ports/services"
	"github.com/SscSPs/club_manager_app/internal/platform/config"
	"github.com/SscSPs/club_manager_app/internal/platform/metrics"
	"github.com/SscSPs/club_manager_app/internal/utils"
)

// ServiceDependencies carries the optional collaborators shared by services.
// Any of them may be nil.
type ServiceDependencies struct {
	Narrator  portssvc.NarrativeGenerator
	Metrics   *metrics.Metrics
	Analytics *utils.PosthogClientWrapper
}

// NewServiceContainer loads the application state and wires every service around it.
func NewServiceContainer(ctx context.Context, cfg *config.Config, repos portsrepo.RepositoryProvider, deps ServiceDependencies) (*portssvc.ServiceContainer, error) {
	state, err := NewStateContainer(ctx, repos.StateRepo, domain.StateDefaults{
		AdminEmails:    cfg.DefaultAdminEmails,
		SystemPassword: cfg.DefaultSystemPassword,
	}, WithStateMetrics(deps.Metrics))
	if err != nil {
		return nil, err
	}

	container := &portssvc.ServiceContainer{}

	container.ReportArchive = NewReportArchiveService(state)
	container.Reconciliation = NewReconciliationService(
		state,
		container.ReportArchive,
		WithNarrativeGenerator(deps.Narrator),
		WithReconciliationMetrics(deps.Metrics),
		WithReconciliationAnalytics(deps.Analytics),
	)
	container.Insights = NewInsightsService(state, deps.Narrator, deps.Metrics)

	container.Ledger = NewLedgerService(state)
	container.Member = NewMemberService(state)
	container.Match = NewMatchService(state)
	container.Fund = NewFundService(state)
	container.Dashboard = NewDashboardService(state)
	container.Settings = NewSettingsService(state)
	container.Auth = NewAuthService(
		cfg,
		state,
		repos.SessionRepo,
		WithAuthMetrics(deps.Metrics),
		WithAuthAnalytics(deps.Analytics),
	)

	return container, nil
}
