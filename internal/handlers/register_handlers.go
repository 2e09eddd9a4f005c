package handlers

import (
	"log/slog"

	"github.com/SscSPs/club_manager_app/cmd/docs"
	portssvc "github.com/SscSPs/club_manager_app/internal/core/ports/services"
	"github.com/SscSPs/club_manager_app/internal/middleware"
	"github.com/SscSPs/club_manager_app/internal/platform/config"
	"github.com/SscSPs/club_manager_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// m may be nil, in which case /metrics is not exposed.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	m *metrics.Metrics,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// Register public authentication routes
	registerAuthRoutes(r, services.Auth, loginLimiter(cfg))

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// loginLimiter builds the per-IP limiter for the login route. A malformed
// rate disables limiting instead of failing startup.
func loginLimiter(cfg *config.Config) gin.HandlerFunc {
	if cfg.LoginRateLimit == "" {
		return nil
	}
	l, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		slog.Error("Invalid login rate limit, login is not rate limited",
			slog.String("rate", cfg.LoginRateLimit), slog.String("error", err.Error()))
		return nil
	}
	return middleware.RateLimit(l)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, service *portssvc.ServiceContainer) {
	// Every v1 route needs a session; mutations additionally require an admin.
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(service.Auth))

	registerMemberRoutes(v1, service.Member)
	registerTransactionRoutes(v1, service.Ledger)
	registerMatchRoutes(v1, service.Match)
	registerFundRoutes(v1, service.Fund)
	registerReportRoutes(v1, service.Reconciliation, service.ReportArchive, service.Insights)
	registerDashboardRoutes(v1, service.Dashboard)
	registerSettingsRoutes(v1, service.Settings)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
