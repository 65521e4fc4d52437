package repositories

import (
	"context"

	"github.com/SscSPs/hisab_manager/internal/core/domain"
)

// AccountRecordReader defines read operations for account opening balances
type AccountRecordReader interface {
	// FindAccountRecordByID retrieves one record of the owner. Returns apperrors.ErrNotFound when absent.
	FindAccountRecordByID(ctx context.Context, ownerID string, id string) (*domain.AccountRecord, error)

	// ListAccountRecords retrieves the full collection of the owner in insertion order.
	ListAccountRecords(ctx context.Context, ownerID string) ([]domain.AccountRecord, error)
}

// AccountRecordWriter defines write operations for account opening balances
type AccountRecordWriter interface {
	// SaveAccountRecord creates or fully replaces the record with the same id.
	SaveAccountRecord(ctx context.Context, ownerID string, record domain.AccountRecord) error

	// DeleteAccountRecord removes the record. Returns apperrors.ErrNotFound when absent.
	DeleteAccountRecord(ctx context.Context, ownerID string, id string) error
}

// AccountRecordRepositoryFacade combines all account record repository interfaces
type AccountRecordRepositoryFacade interface {
	AccountRecordReader
	AccountRecordWriter
}
