package memory

import (
	"context"

	"github.com/SscSPs/hisab_manager/internal/apperrors"
	"github.com/SscSPs/hisab_manager/internal/core/domain"
)

func (s *Store) FindDebtByID(ctx context.Context, ownerID string, id string) (*domain.Debt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	o := s.owner(ownerID)
	if o == nil {
		return nil, apperrors.ErrNotFound
	}
	v, ok := o.debts.get(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &v, nil
}

func (s *Store) ListDebts(ctx context.Context, ownerID string) ([]domain.Debt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	o := s.owner(ownerID)
	if o == nil {
		return []domain.Debt{}, nil
	}
	return o.debts.list(), nil
}

func (s *Store) SaveDebt(ctx context.Context, ownerID string, record domain.Debt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if record.ID == "" {
		return apperrors.NewValidationFailedError("debt id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ownerForWrite(ownerID).debts.put(record.ID, record)
	return nil
}

func (s *Store) DeleteDebt(ctx context.Context, ownerID string, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.owner(ownerID)
	if o == nil || !o.debts.remove(id) {
		return apperrors.ErrNotFound
	}
	return nil
}
