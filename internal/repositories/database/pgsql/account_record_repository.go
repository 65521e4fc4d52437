package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/hisab_manager/internal/apperrors"
	"github.com/SscSPs/hisab_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/hisab_manager/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRecordRepository struct {
	BaseRepository
}

func newPgxAccountRecordRepository(pool *pgxpool.Pool) *PgxAccountRecordRepository {
	return &PgxAccountRecordRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRecordRepositoryFacade = (*PgxAccountRecordRepository)(nil)

func (r *PgxAccountRecordRepository) FindAccountRecordByID(ctx context.Context, ownerID string, id string) (*domain.AccountRecord, error) {
	query := `SELECT id, name, balance FROM account_records WHERE owner_id = $1 AND id = $2;`
	var rec domain.AccountRecord
	err := r.Pool.QueryRow(ctx, query, ownerID, id).Scan(&rec.ID, &rec.Name, &rec.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account record %s: %w", id, err)
	}
	return &rec, nil
}

func (r *PgxAccountRecordRepository) ListAccountRecords(ctx context.Context, ownerID string) ([]domain.AccountRecord, error) {
	query := `SELECT id, name, balance FROM account_records WHERE owner_id = $1 ORDER BY seq;`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query account records", err)
	}
	defer rows.Close()

	records := []domain.AccountRecord{}
	for rows.Next() {
		var rec domain.AccountRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan account record row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account record rows: %w", err)
	}
	return records, nil
}

func (r *PgxAccountRecordRepository) SaveAccountRecord(ctx context.Context, ownerID string, rec domain.AccountRecord) error {
	query := `
		INSERT INTO account_records (owner_id, id, name, balance)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (owner_id, id) DO UPDATE SET
			name = EXCLUDED.name,
			balance = EXCLUDED.balance,
			updated_at = now();
	`
	if _, err := r.Pool.Exec(ctx, query, ownerID, rec.ID, rec.Name, rec.Balance); err != nil {
		return writeError(err, "failed to save account record "+rec.ID)
	}
	return nil
}

func (r *PgxAccountRecordRepository) DeleteAccountRecord(ctx context.Context, ownerID string, id string) error {
	return deleteByID(ctx, r.Pool, "account_records", ownerID, id)
}
