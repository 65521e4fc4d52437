package services

import (
	"context"

	"github.com/SscSPs/hisab_manager/internal/core/domain"
	"github.com/SscSPs/hisab_manager/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	// GetTransaction retrieves one transaction of the owner.
	GetTransaction(ctx context.Context, ownerID string, id string) (*domain.Transaction, error)

	// ListTransactions retrieves every transaction of the owner in store order.
	ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transactions
type TransactionWriterSvc interface {
	// SaveTransaction creates or replaces a transaction. When its linkedId names an existing debt or
	// goal, the amount is added to that record too and the applied update is returned.
	SaveTransaction(ctx context.Context, ownerID string, req dto.SaveTransactionRequest) (*domain.Transaction, *domain.LinkUpdate, error)

	// DeleteTransaction removes a transaction. Linked records are left as they are.
	DeleteTransaction(ctx context.Context, ownerID string, id string) error
}

// TransactionSvcFacade combines all transaction service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
