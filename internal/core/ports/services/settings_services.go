package services

import (
	"context"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/SscSPs/club_manager_app/internal/dto"
)

// SettingsSvcFacade manages the admin allow-list, the shared password and the access log.
type SettingsSvcFacade interface {
	GetSettings(ctx context.Context) (*dto.SettingsResponse, error)
	AddAdminEmail(ctx context.Context, email string) ([]string, error)
	// RemoveAdminEmail refuses to remove actorEmail itself.
	RemoveAdminEmail(ctx context.Context, email string, actorEmail string) ([]string, error)
	UpdatePassword(ctx context.Context, password string) error
	ListAccessHistory(ctx context.Context, limit int) ([]domain.AccessRecord, error)
}
