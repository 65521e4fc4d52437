package repositories

import (
	"context"

	"github.com/SscSPs/hisab_manager/internal/core/domain"
)

// GoalReader defines read operations for goal records
type GoalReader interface {
	// FindGoalByID retrieves one record of the owner. Returns apperrors.ErrNotFound when absent.
	FindGoalByID(ctx context.Context, ownerID string, id string) (*domain.Goal, error)

	// ListGoals retrieves the full collection of the owner in insertion order.
	ListGoals(ctx context.Context, ownerID string) ([]domain.Goal, error)
}

// GoalWriter defines write operations for goal records
type GoalWriter interface {
	// SaveGoal creates or fully replaces the record with the same id.
	SaveGoal(ctx context.Context, ownerID string, record domain.Goal) error

	// DeleteGoal removes the record. Returns apperrors.ErrNotFound when absent.
	DeleteGoal(ctx context.Context, ownerID string, id string) error
}

// GoalRepositoryFacade combines all goal repository interfaces
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
}
