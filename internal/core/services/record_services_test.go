package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/hisab_manager/internal/apperrors"
	"github.com/SscSPs/hisab_manager/internal/core/domain"
	"github.com/SscSPs/hisab_manager/internal/core/services"
	"github.com/SscSPs/hisab_manager/internal/dto"
	"github.com/SscSPs/hisab_manager/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebtService_SaveAndList(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider()
	notifier := &recordingNotifier{}
	svc := services.NewDebtService(repos.DebtRepo, services.WithChangeNotifier(notifier))

	debt, err := svc.SaveDebt(ctx, ownerID, dto.SaveDebtRequest{
		Name:  "Ravi",
		Type:  domain.Given,
		Total: dto.NewAmount(decimal.NewFromInt(5000)),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, debt.ID)

	debts, err := svc.ListDebts(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, debts, 1)
	assert.Equal(t, "Ravi", debts[0].Name)
	assert.True(t, debts[0].Outstanding().Equal(decimal.NewFromInt(5000)))

	events := notifier.Events()
	require.Len(t, events, 1)
	assert.Equal(t, domain.CollectionDebts, events[0].Collection)
	assert.Equal(t, domain.ChangeUpserted, events[0].Kind)

	other, err := svc.ListDebts(ctx, "someone-else")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestDebtService_Validation(t *testing.T) {
	ctx := context.Background()
	svc := services.NewDebtService(memory.NewRepositoryProvider().DebtRepo)

	_, err := svc.SaveDebt(ctx, ownerID, dto.SaveDebtRequest{Name: "  ", Type: domain.Given})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.SaveDebt(ctx, ownerID, dto.SaveDebtRequest{Name: "Ravi", Type: "Loan"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDebtService_ReplaceAndDelete(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	svc := services.NewDebtService(memory.NewRepositoryProvider().DebtRepo, services.WithChangeNotifier(notifier))

	first, err := svc.SaveDebt(ctx, ownerID, dto.SaveDebtRequest{Name: "Netflix", Type: domain.Subscription})
	require.NoError(t, err)

	_, err = svc.SaveDebt(ctx, ownerID, dto.SaveDebtRequest{
		ID:   first.ID,
		Name: "Netflix",
		Type: domain.Subscription,
		Paid: dto.NewAmount(decimal.NewFromInt(649)),
	})
	require.NoError(t, err)

	got, err := svc.GetDebt(ctx, ownerID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "649", got.Paid.String())

	require.NoError(t, svc.DeleteDebt(ctx, ownerID, first.ID))
	_, err = svc.GetDebt(ctx, ownerID, first.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteDebt(ctx, ownerID, first.ID), apperrors.ErrNotFound)

	events := notifier.Events()
	require.Len(t, events, 3)
	assert.Equal(t, domain.ChangeDeleted, events[2].Kind)
}

func TestGoalService(t *testing.T) {
	ctx := context.Background()
	svc := services.NewGoalService(memory.NewRepositoryProvider().GoalRepo)

	_, err := svc.SaveGoal(ctx, ownerID, dto.SaveGoalRequest{Name: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	goal, err := svc.SaveGoal(ctx, ownerID, dto.SaveGoalRequest{
		Name:       "Bike",
		Target:     dto.NewAmount(decimal.NewFromInt(60000)),
		TargetDate: "2026-07-01",
	})
	require.NoError(t, err)

	goals, err := svc.ListGoals(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, goal.ID, goals[0].ID)
	assert.Equal(t, "2026-07-01", goals[0].TargetDate)

	require.NoError(t, svc.DeleteGoal(ctx, ownerID, goal.ID))
	_, err = svc.GetGoal(ctx, ownerID, goal.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAccountRecordService(t *testing.T) {
	ctx := context.Background()
	svc := services.NewAccountRecordService(memory.NewRepositoryProvider().AccountRecordRepo)

	_, err := svc.SaveAccountRecord(ctx, ownerID, dto.SaveAccountRecordRequest{Name: " "})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	record, err := svc.SaveAccountRecord(ctx, ownerID, dto.SaveAccountRecordRequest{
		Name:    "HDFC",
		Balance: dto.NewAmount(decimal.NewFromInt(12000)),
	})
	require.NoError(t, err)

	got, err := svc.GetAccountRecord(ctx, ownerID, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "HDFC", got.Name)
	assert.Equal(t, "12000", got.Balance.String())

	records, err := svc.ListAccountRecords(ctx, ownerID)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	require.NoError(t, svc.DeleteAccountRecord(ctx, ownerID, record.ID))
	records, err = svc.ListAccountRecords(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, records)
}
