package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/club_manager_app/internal/apperrors"
	"github.com/SscSPs/club_manager_app/internal/core/domain"
	portssvc "github.com/SscSPs/club_manager_app/internal/core/ports/services"
	"github.com/SscSPs/club_manager_app/internal/dto"
)

const minSystemPasswordLength = 4

type settingsService struct {
	BaseService
	state *StateContainer
}

// NewSettingsService creates the admin settings service.
func NewSettingsService(state *StateContainer) portssvc.SettingsSvcFacade {
	return &settingsService{state: state}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (*dto.SettingsResponse, error) {
	snap := s.state.Snapshot()
	resp := dto.ToSettingsResponse(snap.AdminEmails, snap.SystemPassword)
	return &resp, nil
}

func (s *settingsService) AddAdminEmail(ctx context.Context, email string) ([]string, error) {
	normalized := domain.NormalizeEmail(email)
	if normalized == "" {
		return nil, apperrors.Validationf("email is required")
	}
	st, err := s.state.Dispatch(ctx, domain.AddAdminEmail{Email: normalized})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Admin email added", slog.String("email", normalized))
	return st.AdminEmails, nil
}

func (s *settingsService) RemoveAdminEmail(ctx context.Context, email string, actorEmail string) ([]string, error) {
	normalized := domain.NormalizeEmail(email)
	if normalized == domain.NormalizeEmail(actorEmail) {
		return nil, apperrors.Validationf("you cannot remove your own admin email")
	}
	st, err := s.state.Update(ctx, func(st domain.AppState) ([]domain.Action, error) {
		if !domain.IsAdminEmail(st.AdminEmails, normalized) {
			return nil, fmt.Errorf("admin email %s: %w", normalized, apperrors.ErrNotFound)
		}
		return []domain.Action{domain.RemoveAdminEmail{Email: normalized}}, nil
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Admin email removed", slog.String("email", normalized))
	return st.AdminEmails, nil
}

// UpdatePassword stores the new password as given.
func (s *settingsService) UpdatePassword(ctx context.Context, password string) error {
	if len(password) < minSystemPasswordLength {
		return apperrors.Validationf("password must be at least %d characters", minSystemPasswordLength)
	}
	if _, err := s.state.Dispatch(ctx, domain.SetSystemPassword{Password: password}); err != nil {
		return err
	}
	s.LogInfo(ctx, "System password updated")
	return nil
}

func (s *settingsService) ListAccessHistory(ctx context.Context, limit int) ([]domain.AccessRecord, error) {
	history := s.state.Snapshot().AccessHistory
	if limit <= 0 || limit > len(history) {
		limit = len(history)
	}
	out := make([]domain.AccessRecord, limit)
	copy(out, history[:limit])
	return out, nil
}
