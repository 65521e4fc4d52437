package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/SscSPs/hisab_manager/internal/apperrors"
	"github.com/SscSPs/hisab_manager/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_UpsertKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.SaveDebt(ctx, "u1", domain.Debt{ID: "a", Name: "A"}))
	require.NoError(t, s.SaveDebt(ctx, "u1", domain.Debt{ID: "b", Name: "B"}))
	require.NoError(t, s.SaveDebt(ctx, "u1", domain.Debt{ID: "a", Name: "A2"}))

	debts, err := s.ListDebts(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, debts, 2)
	assert.Equal(t, "A2", debts[0].Name)
	assert.Equal(t, "b", debts[1].ID)
}

func TestStore_OwnersAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.SaveGoal(ctx, "u1", domain.Goal{ID: "g1"}))

	_, err := s.FindGoalByID(ctx, "u2", "g1")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	goals, err := s.ListGoals(ctx, "u2")
	require.NoError(t, err)
	assert.NotNil(t, goals)
	assert.Empty(t, goals)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.SaveTransaction(ctx, "u1", domain.Transaction{ID: "t1"}))
	require.NoError(t, s.SaveTransaction(ctx, "u1", domain.Transaction{ID: "t2"}))

	require.NoError(t, s.DeleteTransaction(ctx, "u1", "t1"))
	assert.ErrorIs(t, s.DeleteTransaction(ctx, "u1", "t1"), apperrors.ErrNotFound)

	txs, err := s.ListTransactions(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "t2", txs[0].ID)
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.SaveAccountRecord(ctx, "u1", domain.AccountRecord{ID: "r1", Name: "Bank", Balance: decimal.NewFromInt(10)}))

	rec, err := s.FindAccountRecordByID(ctx, "u1", "r1")
	require.NoError(t, err)
	rec.Name = "changed"

	again, err := s.FindAccountRecordByID(ctx, "u1", "r1")
	require.NoError(t, err)
	assert.Equal(t, "Bank", again.Name)
}

func TestStore_SaveRequiresID(t *testing.T) {
	err := NewStore().SaveDebt(context.Background(), "u1", domain.Debt{Name: "x"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestStore_SaveTransactionWithLink(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.SaveGoal(ctx, "u1", domain.Goal{ID: "g1", Current: decimal.NewFromInt(5)}))

	updated := domain.Goal{ID: "g1", Current: decimal.NewFromInt(15)}
	err := s.SaveTransactionWithLink(ctx, "u1",
		domain.Transaction{ID: "t1", LinkedID: "g1", Amount: decimal.NewFromInt(10)},
		domain.LinkUpdate{Collection: domain.CollectionGoals, ID: "g1", Goal: &updated})
	require.NoError(t, err)

	g, err := s.FindGoalByID(ctx, "u1", "g1")
	require.NoError(t, err)
	assert.Equal(t, "15", g.Current.String())
	_, err = s.FindTransactionByID(ctx, "u1", "t1")
	assert.NoError(t, err)

	err = s.SaveTransactionWithLink(ctx, "u1", domain.Transaction{ID: "t2"}, domain.LinkUpdate{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = s.FindTransactionByID(ctx, "u1", "t2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "nothing is written when the link is empty")
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStore().ListDebts(ctx, "u1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.SaveTransaction(ctx, "u1", domain.Transaction{ID: string(rune('A' + i))})
			_, _ = s.ListTransactions(ctx, "u1")
		}(i)
	}
	wg.Wait()

	txs, err := s.ListTransactions(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, txs, 50)
}
