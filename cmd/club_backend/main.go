package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/club_manager_app/internal/adapters/narrative/gemini"
	portsrepo "github.com/SscSPs/club_manager_app/internal/core/ports/repositories"
	"github.com/SscSPs/club_manager_app/internal/core/services"
	"github.com/SscSPs/club_manager_app/internal/handlers"
	"github.com/SscSPs/club_manager_app/internal/middleware"
	"github.com/SscSPs/club_manager_app/internal/platform/config"
	"github.com/SscSPs/club_manager_app/internal/platform/metrics"
	"github.com/SscSPs/club_manager_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/club_manager_app/internal/repositories/file"
	"github.com/SscSPs/club_manager_app/internal/repositories/memory"
	"github.com/SscSPs/club_manager_app/internal/repositories/redis"
	"github.com/SscSPs/club_manager_app/internal/utils"
	"github.com/SscSPs/club_manager_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Club Manager API
// @version 1.0
// @description Backend for a football club: members, ledger, matches, dues and monthly reconciliation.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := middleware.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	sessionRepo, closeSessions, err := openSessionRepository(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize session store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeSessions()

	repos, closeRepos, err := openRepositories(ctx, cfg, sessionRepo, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRepos()

	narrator, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:   cfg.GeminiAPIKey,
		Model:    cfg.GeminiModel,
		Endpoint: cfg.GeminiEndpoint,
		Timeout:  cfg.NarrativeTimeout,
	})
	if err != nil {
		logger.Error("Failed to initialize narrative client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	m := metrics.New()
	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	serviceContainer, err := services.NewServiceContainer(ctx, cfg, repos, services.ServiceDependencies{
		Narrator:  narrator,
		Metrics:   m,
		Analytics: posthogClient,
	})
	if err != nil {
		logger.Error("Failed to initialize services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")

	// Global middleware
	r.Use(
		gin.Recovery(),
		cors.New(corsConfig),
		middleware.StructuredLoggingMiddleware(logger),
		middleware.MetricsMiddleware(m),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, m)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second, // freezing a month waits on the narrative generator
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			slog.String("port", cfg.Port),
			slog.String("storage", cfg.StorageDriver),
			slog.String("sessions", cfg.SessionDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
	logger.Info("Server exited")
}

// openSessionRepository returns the session store selected by SESSION_DRIVER.
func openSessionRepository(cfg *config.Config, logger *slog.Logger) (portsrepo.SessionRepositoryFacade, func(), error) {
	if cfg.SessionDriver != config.SessionRedis {
		return memory.NewSessionRepository(), func() {}, nil
	}

	client, err := redis.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Redis session store connected", slog.String("addr", cfg.RedisAddr))
	return redis.NewSessionRepository(client.Client), func() {
		if err := client.Close(); err != nil {
			logger.Error("Error closing redis client", slog.String("error", err.Error()))
		}
	}, nil
}

// openRepositories returns the state store selected by STORAGE_DRIVER.
func openRepositories(ctx context.Context, cfg *config.Config, sessionRepo portsrepo.SessionRepositoryFacade, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Database connection pool established.")

		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, database.DefaultMigrationsPath, logger); err != nil {
			dbPool.Close()
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(dbPool, sessionRepo), func() { database.ClosePgxPool(dbPool) }, nil

	case config.StorageFile:
		stateRepo, err := file.OpenStateRepository(cfg.StateFilePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Using file state store", slog.String("path", cfg.StateFilePath))
		return portsrepo.RepositoryProvider{StateRepo: stateRepo, SessionRepo: sessionRepo}, func() {
			if err := stateRepo.Close(); err != nil {
				logger.Error("Error closing state file", slog.String("error", err.Error()))
			}
		}, nil

	default:
		logger.Warn("Using in-memory state store; data is lost on restart")
		return memory.NewRepositoryProvider(sessionRepo), func() {}, nil
	}
}
