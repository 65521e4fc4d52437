package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/SscSPs/hisab_manager/internal/apperrors"
	"github.com/SscSPs/hisab_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/hisab_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hisab_manager/internal/core/ports/services"
	"github.com/SscSPs/hisab_manager/internal/dto"
	"github.com/google/uuid"
)

// debtService implements the DebtSvcFacade interface
type debtService struct {
	BaseService
	debtRepo portsrepo.DebtRepositoryFacade
}

// NewDebtService creates a new debt service with the provided options
func NewDebtService(repo portsrepo.DebtRepositoryFacade, options ...ServiceOption) portssvc.DebtSvcFacade {
	return &debtService{
		BaseService: newBaseService(options),
		debtRepo:    repo,
	}
}

var _ portssvc.DebtSvcFacade = (*debtService)(nil)

func (s *debtService) GetDebt(ctx context.Context, ownerID string, id string) (*domain.Debt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get debt %s: %w", id, err)
	}
	return debt, nil
}

func (s *debtService) ListDebts(ctx context.Context, ownerID string) ([]domain.Debt, error) {
	debts, err := s.debtRepo.ListDebts(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list debts", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	return debts, nil
}

func (s *debtService) SaveDebt(ctx context.Context, ownerID string, req dto.SaveDebtRequest) (*domain.Debt, error) {
	debt := req.ToDomain()
	if strings.TrimSpace(debt.Name) == "" {
		return nil, fmt.Errorf("debt name is required: %w", apperrors.ErrValidation)
	}
	if !slices.Contains(domain.DebtTypes, debt.Type) {
		return nil, fmt.Errorf("unknown debt type %q: %w", debt.Type, apperrors.ErrValidation)
	}
	if debt.ID == "" {
		debt.ID = uuid.NewString()
	}

	if err := s.debtRepo.SaveDebt(ctx, ownerID, debt); err != nil {
		s.LogError(ctx, err, "Failed to save debt",
			slog.String("owner_id", ownerID),
			slog.String("debt_id", debt.ID))
		return nil, fmt.Errorf("failed to save debt: %w", err)
	}
	s.publish(ownerID, domain.CollectionDebts, debt.ID, domain.ChangeUpserted)

	s.LogInfo(ctx, "Debt saved", slog.String("debt_id", debt.ID))
	return &debt, nil
}

func (s *debtService) DeleteDebt(ctx context.Context, ownerID string, id string) error {
	if err := s.debtRepo.DeleteDebt(ctx, ownerID, id); err != nil {
		s.LogError(ctx, err, "Failed to delete debt", slog.String("debt_id", id))
		return fmt.Errorf("failed to delete debt %s: %w", id, err)
	}
	s.publish(ownerID, domain.CollectionDebts, id, domain.ChangeDeleted)
	s.LogInfo(ctx, "Debt deleted", slog.String("debt_id", id))
	return nil
}
