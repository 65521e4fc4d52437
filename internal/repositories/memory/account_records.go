package memory

import (
	"context"

	"github.com/SscSPs/hisab_manager/internal/apperrors"
	"github.com/SscSPs/hisab_manager/internal/core/domain"
)

func (s *Store) FindAccountRecordByID(ctx context.Context, ownerID string, id string) (*domain.AccountRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	o := s.owner(ownerID)
	if o == nil {
		return nil, apperrors.ErrNotFound
	}
	v, ok := o.records.get(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &v, nil
}

func (s *Store) ListAccountRecords(ctx context.Context, ownerID string) ([]domain.AccountRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	o := s.owner(ownerID)
	if o == nil {
		return []domain.AccountRecord{}, nil
	}
	return o.records.list(), nil
}

func (s *Store) SaveAccountRecord(ctx context.Context, ownerID string, record domain.AccountRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if record.ID == "" {
		return apperrors.NewValidationFailedError("account record id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ownerForWrite(ownerID).records.put(record.ID, record)
	return nil
}

func (s *Store) DeleteAccountRecord(ctx context.Context, ownerID string, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.owner(ownerID)
	if o == nil || !o.records.remove(id) {
		return apperrors.ErrNotFound
	}
	return nil
}
