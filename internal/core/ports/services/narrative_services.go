package services

import (
	"context"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
)

// NarrativeGenerator turns period data into a markdown narrative.
// Implementations return apperrors.ErrNarrativeUnavailable on connectivity or
// configuration failures; callers decide how to degrade.
type NarrativeGenerator interface {
	GenerateNarrative(ctx context.Context, input domain.NarrativeInput) (string, error)
}
