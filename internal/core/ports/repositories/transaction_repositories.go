package repositories

import (
	"context"

	"github.com/SscSPs/hisab_manager/internal/core/domain"
)

// TransactionReader defines read operations for transaction records
type TransactionReader interface {
	// FindTransactionByID retrieves one record of the owner. Returns apperrors.ErrNotFound when absent.
	FindTransactionByID(ctx context.Context, ownerID string, id string) (*domain.Transaction, error)

	// ListTransactions retrieves the full collection of the owner in insertion order.
	ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction records
type TransactionWriter interface {
	// SaveTransaction creates or fully replaces the record with the same id.
	SaveTransaction(ctx context.Context, ownerID string, record domain.Transaction) error

	// DeleteTransaction removes the record. Returns apperrors.ErrNotFound when absent.
	DeleteTransaction(ctx context.Context, ownerID string, id string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
