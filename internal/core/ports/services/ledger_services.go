package services

import (
	"context"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/SscSPs/club_manager_app/internal/dto"
)

// LedgerReaderSvc defines read operations over the ledger.
type LedgerReaderSvc interface {
	// GetTransaction retrieves a transaction by id.
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns a page of transactions, newest date first.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// ListCategories returns the category table.
	ListCategories(ctx context.Context) []domain.CategoryInfo
}

// LedgerWriterSvc defines write operations over the ledger.
type LedgerWriterSvc interface {
	// AddTransaction validates and records a new transaction.
	AddTransaction(ctx context.Context, req dto.CreateTransactionRequest, actor string) (*domain.Transaction, error)

	// UpdateTransaction replaces the fields given in req.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// LedgerSvcFacade combines all ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
