package services

import (
	"context"

	"github.com/SscSPs/hisab_manager/internal/core/domain"
	"github.com/SscSPs/hisab_manager/internal/dto"
)

// DebtSvcFacade manages the owner's debts.
type DebtSvcFacade interface {
	GetDebt(ctx context.Context, ownerID string, id string) (*domain.Debt, error)
	ListDebts(ctx context.Context, ownerID string) ([]domain.Debt, error)
	SaveDebt(ctx context.Context, ownerID string, req dto.SaveDebtRequest) (*domain.Debt, error)
	DeleteDebt(ctx context.Context, ownerID string, id string) error
}

// GoalSvcFacade manages the owner's savings goals.
type GoalSvcFacade interface {
	GetGoal(ctx context.Context, ownerID string, id string) (*domain.Goal, error)
	ListGoals(ctx context.Context, ownerID string) ([]domain.Goal, error)
	SaveGoal(ctx context.Context, ownerID string, req dto.SaveGoalRequest) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, ownerID string, id string) error
}

// AccountRecordSvcFacade manages the opening balances of named accounts.
type AccountRecordSvcFacade interface {
	GetAccountRecord(ctx context.Context, ownerID string, id string) (*domain.AccountRecord, error)
	ListAccountRecords(ctx context.Context, ownerID string) ([]domain.AccountRecord, error)
	SaveAccountRecord(ctx context.Context, ownerID string, req dto.SaveAccountRecordRequest) (*domain.AccountRecord, error)
	DeleteAccountRecord(ctx context.Context, ownerID string, id string) error
}
