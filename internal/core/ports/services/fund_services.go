package services

import (
	"context"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/SscSPs/club_manager_app/internal/dto"
)

// FundSvcFacade manages monthly dues collection.
type FundSvcFacade interface {
	// FundStatus reports, per member, whether dues were recorded for month.
	FundStatus(ctx context.Context, month string) (*domain.FundStatus, error)

	// RecordDuesPayment adds a MONTHLY_DUES income for an active member.
	// A second payment for the same member and month is rejected with ErrDuplicate.
	RecordDuesPayment(ctx context.Context, req dto.RecordDuesPaymentRequest, actor string) (*domain.Transaction, error)

	// DeleteDuesPayment removes a dues transaction.
	DeleteDuesPayment(ctx context.Context, transactionID string) error
}
