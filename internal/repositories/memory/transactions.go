package memory

import (
	"context"

	"github.com/SscSPs/hisab_manager/internal/apperrors"
	"github.com/SscSPs/hisab_manager/internal/core/domain"
)

func (s *Store) FindTransactionByID(ctx context.Context, ownerID string, id string) (*domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	o := s.owner(ownerID)
	if o == nil {
		return nil, apperrors.ErrNotFound
	}
	v, ok := o.transactions.get(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &v, nil
}

func (s *Store) ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	o := s.owner(ownerID)
	if o == nil {
		return []domain.Transaction{}, nil
	}
	return o.transactions.list(), nil
}

func (s *Store) SaveTransaction(ctx context.Context, ownerID string, record domain.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if record.ID == "" {
		return apperrors.NewValidationFailedError("transaction id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ownerForWrite(ownerID).transactions.put(record.ID, record)
	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, ownerID string, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.owner(ownerID)
	if o == nil || !o.transactions.remove(id) {
		return apperrors.ErrNotFound
	}
	return nil
}
