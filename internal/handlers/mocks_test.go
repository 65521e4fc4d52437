package handlers_test

import (
	"context"

	"github.com/SscSPs/hisab_manager/internal/core/domain"
	portssvc "github.com/SscSPs/hisab_manager/internal/core/ports/services"
	"github.com/SscSPs/hisab_manager/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, ownerID string, id string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) SaveTransaction(ctx context.Context, ownerID string, req dto.SaveTransactionRequest) (*domain.Transaction, *domain.LinkUpdate, error) {
	args := m.Called(ctx, ownerID, req)
	var tx *domain.Transaction
	if v := args.Get(0); v != nil {
		tx = v.(*domain.Transaction)
	}
	var link *domain.LinkUpdate
	if v := args.Get(1); v != nil {
		link = v.(*domain.LinkUpdate)
	}
	return tx, link, args.Error(2)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, ownerID string, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock DebtService ---
type MockDebtService struct {
	mock.Mock
}

func (m *MockDebtService) GetDebt(ctx context.Context, ownerID string, id string) (*domain.Debt, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtService) ListDebts(ctx context.Context, ownerID string) ([]domain.Debt, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *MockDebtService) SaveDebt(ctx context.Context, ownerID string, req dto.SaveDebtRequest) (*domain.Debt, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtService) DeleteDebt(ctx context.Context, ownerID string, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

var _ portssvc.DebtSvcFacade = (*MockDebtService)(nil)

// --- Mock GoalService ---
type MockGoalService struct {
	mock.Mock
}

func (m *MockGoalService) GetGoal(ctx context.Context, ownerID string, id string) (*domain.Goal, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalService) ListGoals(ctx context.Context, ownerID string) ([]domain.Goal, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalService) SaveGoal(ctx context.Context, ownerID string, req dto.SaveGoalRequest) (*domain.Goal, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalService) DeleteGoal(ctx context.Context, ownerID string, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

var _ portssvc.GoalSvcFacade = (*MockGoalService)(nil)

// --- Mock AccountRecordService ---
type MockAccountRecordService struct {
	mock.Mock
}

func (m *MockAccountRecordService) GetAccountRecord(ctx context.Context, ownerID string, id string) (*domain.AccountRecord, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountRecord), args.Error(1)
}

func (m *MockAccountRecordService) ListAccountRecords(ctx context.Context, ownerID string) ([]domain.AccountRecord, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountRecord), args.Error(1)
}

func (m *MockAccountRecordService) SaveAccountRecord(ctx context.Context, ownerID string, req dto.SaveAccountRecordRequest) (*domain.AccountRecord, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountRecord), args.Error(1)
}

func (m *MockAccountRecordService) DeleteAccountRecord(ctx context.Context, ownerID string, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

var _ portssvc.AccountRecordSvcFacade = (*MockAccountRecordService)(nil)

// --- Mock ViewService ---
type MockViewService struct {
	mock.Mock
}

func (m *MockViewService) Totals(ctx context.Context, ownerID string) (*domain.Totals, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Totals), args.Error(1)
}

func (m *MockViewService) NameLedgers(ctx context.Context, ownerID string) ([]domain.NameLedger, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NameLedger), args.Error(1)
}

func (m *MockViewService) GoalReport(ctx context.Context, ownerID string) ([]domain.GoalView, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GoalView), args.Error(1)
}

func (m *MockViewService) FilteredTransactions(ctx context.Context, ownerID string, query string, typeFilter string) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, query, typeFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockViewService) Dashboard(ctx context.Context, ownerID string, query string, typeFilter string) (*domain.Dashboard, error) {
	args := m.Called(ctx, ownerID, query, typeFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

func (m *MockViewService) KnownAccounts(ctx context.Context, ownerID string) ([]string, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ portssvc.ViewSvc = (*MockViewService)(nil)
