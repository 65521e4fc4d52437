package services_test

import (
	"context"
	"sync"

	"github.com/SscSPs/hisab_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/hisab_manager/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, ownerID string, id string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, ownerID string, record domain.Transaction) error {
	args := m.Called(ctx, ownerID, record)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, ownerID string, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

// --- Mock DebtRepository ---
type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) FindDebtByID(ctx context.Context, ownerID string, id string) (*domain.Debt, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) ListDebts(ctx context.Context, ownerID string) ([]domain.Debt, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) SaveDebt(ctx context.Context, ownerID string, record domain.Debt) error {
	args := m.Called(ctx, ownerID, record)
	return args.Error(0)
}

func (m *MockDebtRepository) DeleteDebt(ctx context.Context, ownerID string, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

var _ portsrepo.DebtRepositoryFacade = (*MockDebtRepository)(nil)

// --- Mock GoalRepository ---
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, ownerID string, id string) (*domain.Goal, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) ListGoals(ctx context.Context, ownerID string) ([]domain.Goal, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, ownerID string, record domain.Goal) error {
	args := m.Called(ctx, ownerID, record)
	return args.Error(0)
}

func (m *MockGoalRepository) DeleteGoal(ctx context.Context, ownerID string, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

var _ portsrepo.GoalRepositoryFacade = (*MockGoalRepository)(nil)

// --- Mock LinkedCommitter ---
type MockLinkedCommitter struct {
	mock.Mock
}

func (m *MockLinkedCommitter) SaveTransactionWithLink(ctx context.Context, ownerID string, tx domain.Transaction, link domain.LinkUpdate) error {
	args := m.Called(ctx, ownerID, tx, link)
	return args.Error(0)
}

var _ portsrepo.LinkedCommitter = (*MockLinkedCommitter)(nil)

// recordingNotifier keeps every published event.
type recordingNotifier struct {
	mu     sync.Mutex
	events []domain.ChangeEvent
}

func (n *recordingNotifier) Publish(event domain.ChangeEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) Subscribe(string) (<-chan domain.ChangeEvent, func()) {
	ch := make(chan domain.ChangeEvent)
	return ch, func() {}
}

func (n *recordingNotifier) Events() []domain.ChangeEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]domain.ChangeEvent(nil), n.events...)
}
