package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/club_manager_app/internal/apperrors"
	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/SscSPs/club_manager_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_AdminEmails(t *testing.T) {
	ctx := context.Background()
	state, _ := newContainer(domain.AppState{})
	settings := services.NewSettingsService(state)

	emails, err := settings.AddAdminEmail(ctx, " Coach@JCUnited.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"admin@jcunited.com", "coach@jcunited.com"}, emails)

	_, err = settings.AddAdminEmail(ctx, "  ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = settings.RemoveAdminEmail(ctx, "ADMIN@jcunited.com", "admin@jcunited.com")
	assert.ErrorIs(t, err, apperrors.ErrValidation, "an admin cannot remove their own email")

	_, err = settings.RemoveAdminEmail(ctx, "nobody@jcunited.com", "admin@jcunited.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	emails, err = settings.RemoveAdminEmail(ctx, "coach@jcunited.com", "admin@jcunited.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"admin@jcunited.com"}, emails)
}

func TestSettingsService_Password(t *testing.T) {
	ctx := context.Background()
	state, _ := newContainer(domain.AppState{})
	settings := services.NewSettingsService(state)

	assert.ErrorIs(t, settings.UpdatePassword(ctx, "abc"), apperrors.ErrValidation)
	require.NoError(t, settings.UpdatePassword(ctx, "s3cret!"))
	assert.Equal(t, "s3cret!", state.Snapshot().SystemPassword)

	resp, err := settings.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "*******", resp.PasswordMasked)
}

func TestSettingsService_AccessHistory(t *testing.T) {
	ctx := context.Background()
	state, _ := newContainer(domain.AppState{})
	settings := services.NewSettingsService(state)

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < domain.MaxAccessHistory+5; i++ {
		_, err := state.Dispatch(ctx, domain.RecordAccess{Record: domain.AccessRecord{
			ID:        fmt.Sprintf("r%d", i),
			Name:      "Khách",
			Email:     domain.GuestAccessEmail,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Role:      domain.RoleGuest,
			Succeeded: true,
		}})
		require.NoError(t, err)
	}

	all, err := settings.ListAccessHistory(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, domain.MaxAccessHistory)
	assert.Equal(t, fmt.Sprintf("r%d", domain.MaxAccessHistory+4), all[0].ID, "newest first")

	some, err := settings.ListAccessHistory(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, some, 3)
}
