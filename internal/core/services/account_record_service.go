package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/hisab_manager/internal/apperrors"
	"github.com/SscSPs/hisab_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/hisab_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hisab_manager/internal/core/ports/services"
	"github.com/SscSPs/hisab_manager/internal/dto"
	"github.com/google/uuid"
)

// accountRecordService manages opening balances. The computed balances live in the view service.
type accountRecordService struct {
	BaseService
	recordRepo portsrepo.AccountRecordRepositoryFacade
}

// NewAccountRecordService creates a new account record service with the provided options
func NewAccountRecordService(repo portsrepo.AccountRecordRepositoryFacade, options ...ServiceOption) portssvc.AccountRecordSvcFacade {
	return &accountRecordService{
		BaseService: newBaseService(options),
		recordRepo:  repo,
	}
}

var _ portssvc.AccountRecordSvcFacade = (*accountRecordService)(nil)

func (s *accountRecordService) GetAccountRecord(ctx context.Context, ownerID string, id string) (*domain.AccountRecord, error) {
	record, err := s.recordRepo.FindAccountRecordByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get account record %s: %w", id, err)
	}
	return record, nil
}

func (s *accountRecordService) ListAccountRecords(ctx context.Context, ownerID string) ([]domain.AccountRecord, error) {
	records, err := s.recordRepo.ListAccountRecords(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account records", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list account records: %w", err)
	}
	return records, nil
}

func (s *accountRecordService) SaveAccountRecord(ctx context.Context, ownerID string, req dto.SaveAccountRecordRequest) (*domain.AccountRecord, error) {
	record := req.ToDomain()
	if strings.TrimSpace(record.Name) == "" {
		return nil, fmt.Errorf("account name is required: %w", apperrors.ErrValidation)
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	if err := s.recordRepo.SaveAccountRecord(ctx, ownerID, record); err != nil {
		s.LogError(ctx, err, "Failed to save account record",
			slog.String("owner_id", ownerID),
			slog.String("record_id", record.ID))
		return nil, fmt.Errorf("failed to save account record: %w", err)
	}
	s.publish(ownerID, domain.CollectionAccountRecords, record.ID, domain.ChangeUpserted)

	s.LogInfo(ctx, "Account record saved",
		slog.String("record_id", record.ID),
		slog.String("account", record.Name))
	return &record, nil
}

func (s *accountRecordService) DeleteAccountRecord(ctx context.Context, ownerID string, id string) error {
	if err := s.recordRepo.DeleteAccountRecord(ctx, ownerID, id); err != nil {
		s.LogError(ctx, err, "Failed to delete account record", slog.String("record_id", id))
		return fmt.Errorf("failed to delete account record %s: %w", id, err)
	}
	s.publish(ownerID, domain.CollectionAccountRecords, id, domain.ChangeDeleted)
	return nil
}
