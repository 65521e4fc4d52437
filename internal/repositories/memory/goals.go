package memory

import (
	"context"

	"github.com/SscSPs/hisab_manager/internal/apperrors"
	"github.com/SscSPs/hisab_manager/internal/core/domain"
)

func (s *Store) FindGoalByID(ctx context.Context, ownerID string, id string) (*domain.Goal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	o := s.owner(ownerID)
	if o == nil {
		return nil, apperrors.ErrNotFound
	}
	v, ok := o.goals.get(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &v, nil
}

func (s *Store) ListGoals(ctx context.Context, ownerID string) ([]domain.Goal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	o := s.owner(ownerID)
	if o == nil {
		return []domain.Goal{}, nil
	}
	return o.goals.list(), nil
}

func (s *Store) SaveGoal(ctx context.Context, ownerID string, record domain.Goal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if record.ID == "" {
		return apperrors.NewValidationFailedError("goal id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ownerForWrite(ownerID).goals.put(record.ID, record)
	return nil
}

func (s *Store) DeleteGoal(ctx context.Context, ownerID string, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.owner(ownerID)
	if o == nil || !o.goals.remove(id) {
		return apperrors.ErrNotFound
	}
	return nil
}
