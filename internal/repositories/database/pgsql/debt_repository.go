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

type PgxDebtRepository struct {
	BaseRepository
}

func newPgxDebtRepository(pool *pgxpool.Pool) *PgxDebtRepository {
	return &PgxDebtRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DebtRepositoryFacade = (*PgxDebtRepository)(nil)

const debtSelectQuery = `SELECT id, name, type, total, paid, due_date FROM debts `

func scanDebt(row pgx.Row) (domain.Debt, error) {
	var d domain.Debt
	err := row.Scan(&d.ID, &d.Name, &d.Type, &d.Total, &d.Paid, &d.DueDate)
	return d, err
}

func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, ownerID string, id string) (*domain.Debt, error) {
	d, err := scanDebt(r.Pool.QueryRow(ctx, debtSelectQuery+"WHERE owner_id = $1 AND id = $2", ownerID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find debt %s: %w", id, err)
	}
	return &d, nil
}

func (r *PgxDebtRepository) ListDebts(ctx context.Context, ownerID string) ([]domain.Debt, error) {
	rows, err := r.Pool.Query(ctx, debtSelectQuery+"WHERE owner_id = $1 ORDER BY seq", ownerID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query debts", err)
	}
	defer rows.Close()

	debts := []domain.Debt{}
	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt row: %w", err)
		}
		debts = append(debts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating debt rows: %w", err)
	}
	return debts, nil
}

func (r *PgxDebtRepository) SaveDebt(ctx context.Context, ownerID string, debt domain.Debt) error {
	return upsertDebt(ctx, r.Pool, ownerID, debt)
}

func upsertDebt(ctx context.Context, q querier, ownerID string, d domain.Debt) error {
	query := `
		INSERT INTO debts (owner_id, id, name, type, total, paid, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (owner_id, id) DO UPDATE SET
			name = EXCLUDED.name,
			type = EXCLUDED.type,
			total = EXCLUDED.total,
			paid = EXCLUDED.paid,
			due_date = EXCLUDED.due_date,
			updated_at = now();
	`
	if _, err := q.Exec(ctx, query, ownerID, d.ID, d.Name, d.Type, d.Total, d.Paid, d.DueDate); err != nil {
		return writeError(err, "failed to save debt "+d.ID)
	}
	return nil
}

func (r *PgxDebtRepository) DeleteDebt(ctx context.Context, ownerID string, id string) error {
	return deleteByID(ctx, r.Pool, "debts", ownerID, id)
}
