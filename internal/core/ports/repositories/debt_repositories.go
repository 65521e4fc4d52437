package repositories

import (
	"context"

	"github.com/SscSPs/hisab_manager/internal/core/domain"
)

// DebtReader defines read operations for debts
type DebtReader interface {
	// FindDebtByID retrieves one record of the owner. Returns apperrors.ErrNotFound when absent.
	FindDebtByID(ctx context.Context, ownerID string, id string) (*domain.Debt, error)

	// ListDebts retrieves the full collection of the owner in insertion order.
	ListDebts(ctx context.Context, ownerID string) ([]domain.Debt, error)
}

// DebtWriter defines write operations for debts
type DebtWriter interface {
	// SaveDebt creates or fully replaces the record with the same id.
	SaveDebt(ctx context.Context, ownerID string, record domain.Debt) error

	// DeleteDebt removes the record. Returns apperrors.ErrNotFound when absent.
	DeleteDebt(ctx context.Context, ownerID string, id string) error
}

// DebtRepositoryFacade combines all debt repository interfaces
type DebtRepositoryFacade interface {
	DebtReader
	DebtWriter
}
