package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/club_manager_app/internal/apperrors"
	"github.com/SscSPs/club_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/club_manager_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/club_manager_app/internal/core/ports/services"
	"github.com/SscSPs/club_manager_app/internal/dto"
	"github.com/SscSPs/club_manager_app/internal/platform/config"
	"github.com/SscSPs/club_manager_app/internal/platform/metrics"
	"github.com/SscSPs/club_manager_app/internal/utils"
	"github.com/google/uuid"
)

// authService is the login gate. Admins are identified by an allow-listed
// email plus the shared system password, compared as stored (plaintext).
type authService struct {
	BaseService
	cfg       *config.Config
	state     *StateContainer
	sessions  portsrepo.SessionRepositoryFacade
	metrics   *metrics.Metrics
	analytics *utils.PosthogClientWrapper
	now       func() time.Time
}

// AuthServiceOption is a function that configures an authService.
type AuthServiceOption func(*authService)

func WithAuthMetrics(m *metrics.Metrics) AuthServiceOption {
	return func(s *authService) {
		s.metrics = m
	}
}

func WithAuthAnalytics(a *utils.PosthogClientWrapper) AuthServiceOption {
	return func(s *authService) {
		s.analytics = a
	}
}

// WithAuthClock overrides the clock used for sessions and access records.
func WithAuthClock(now func() time.Time) AuthServiceOption {
	return func(s *authService) {
		s.now = now
	}
}

// NewAuthService creates the login gate.
func NewAuthService(cfg *config.Config, state *StateContainer, sessions portsrepo.SessionRepositoryFacade, opts ...AuthServiceOption) portssvc.AuthSvcFacade {
	s := &authService{
		cfg:      cfg,
		state:    state,
		sessions: sessions,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	switch req.Mode {
	case domain.RoleGuest:
		return s.loginGuest(ctx, req)
	case domain.RoleAdmin:
		return s.loginAdmin(ctx, req)
	default:
		return nil, apperrors.Validationf("unknown login mode %q", req.Mode)
	}
}

func (s *authService) loginGuest(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		s.metrics.LoginAttempted(string(domain.RoleGuest), metrics.OutcomeFailure)
		return nil, apperrors.Validationf("guest name is required")
	}

	now := s.now()
	record := domain.AccessRecord{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     domain.GuestAccessEmail,
		Timestamp: now,
		Role:      domain.RoleGuest,
		Succeeded: true,
	}
	if _, err := s.state.Dispatch(ctx, domain.RecordAccess{Record: record}); err != nil {
		return nil, err
	}

	user := domain.User{
		Name:  name,
		Email: fmt.Sprintf("guest_%d", now.UnixMilli()),
	}
	return s.startSession(ctx, user, domain.RoleGuest)
}

func (s *authService) loginAdmin(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := domain.NormalizeEmail(req.Email)
	if email == "" {
		s.metrics.LoginAttempted(string(domain.RoleAdmin), metrics.OutcomeFailure)
		return nil, apperrors.Validationf("email is required")
	}
	name := domain.NameFromEmail(email)

	// A rejected attempt is still logged, labeled as guest access.
	var rejected bool
	_, err := s.state.Update(ctx, func(st domain.AppState) ([]domain.Action, error) {
		record := domain.AccessRecord{
			ID:        uuid.NewString(),
			Name:      name,
			Timestamp: s.now(),
		}
		if !domain.IsAdminEmail(st.AdminEmails, email) || req.Password != st.SystemPassword {
			rejected = true
			record.Email = domain.GuestAccessEmail
			record.Role = domain.RoleGuest
		} else {
			record.Email = email
			record.Role = domain.RoleAdmin
			record.Succeeded = true
		}
		return []domain.Action{domain.RecordAccess{Record: record}}, nil
	})
	if err != nil {
		return nil, err
	}
	if rejected {
		s.metrics.LoginAttempted(string(domain.RoleAdmin), metrics.OutcomeFailure)
		s.GetLogger(ctx).Warn("Admin login rejected", slog.String("email", email))
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.startSession(ctx, domain.User{Name: name, Email: email, IsAdmin: true}, domain.RoleAdmin)
}

func (s *authService) startSession(ctx context.Context, user domain.User, role domain.Role) (*dto.LoginResponse, error) {
	sessionID, err := utils.GenerateSessionID()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate session id")
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	now := s.now()
	session := domain.Session{
		ID:        sessionID,
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.JWTExpiryDuration),
	}
	if err := s.sessions.SaveSession(ctx, session, s.cfg.JWTExpiryDuration); err != nil {
		s.LogError(ctx, err, "Failed to store session")
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := utils.GenerateSessionJWT(sessionID, user.Email, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign session token")
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.metrics.LoginAttempted(string(role), metrics.OutcomeSuccess)
	s.analytics.Enqueue(user.Email, "user_logged_in", map[string]any{"role": string(role)})
	s.LogInfo(ctx, "User logged in", slog.String("email", user.Email), slog.String("role", string(role)))
	return &dto.LoginResponse{Token: token, ExpiresAt: session.ExpiresAt, User: user}, nil
}

// RestoreSession re-evaluates the admin role against the current allow-list,
// so removing an email takes effect on the next request.
func (s *authService) RestoreSession(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnauthorized, err.Error())
	}

	session, err := s.sessions.FindSession(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: session not found", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to load session")
		return nil, err
	}

	session.User.IsAdmin = domain.IsAdminEmail(s.state.Snapshot().AdminEmails, session.User.Email)
	return session, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret)
	if err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrUnauthorized, err.Error())
	}
	if err := s.sessions.DeleteSession(ctx, claims.ID); err != nil {
		s.LogError(ctx, err, "Failed to delete session")
		return err
	}
	s.LogInfo(ctx, "User logged out", slog.String("email", claims.Subject))
	return nil
}
