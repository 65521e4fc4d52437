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

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionSelectQuery = `
SELECT id, tx_date, type, category, subcategory, amount, account, to_account, linked_id, note, status, payment_name
FROM transactions
`

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var tx domain.Transaction
	err := row.Scan(
		&tx.ID,
		&tx.Date,
		&tx.Type,
		&tx.Category,
		&tx.Subcategory,
		&tx.Amount,
		&tx.Account,
		&tx.ToAccount,
		&tx.LinkedID,
		&tx.Note,
		&tx.Status,
		&tx.PaymentName,
	)
	return tx, err
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, ownerID string, id string) (*domain.Transaction, error) {
	row := r.Pool.QueryRow(ctx, transactionSelectQuery+"WHERE owner_id = $1 AND id = $2", ownerID, id)
	tx, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", id, err)
	}
	return &tx, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, transactionSelectQuery+"WHERE owner_id = $1 ORDER BY seq", ownerID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query transactions", err)
	}
	defer rows.Close()

	txs := []domain.Transaction{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txs, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, ownerID string, tx domain.Transaction) error {
	return upsertTransaction(ctx, r.Pool, ownerID, tx)
}

func upsertTransaction(ctx context.Context, q querier, ownerID string, tx domain.Transaction) error {
	query := `
		INSERT INTO transactions (
			owner_id, id, tx_date, type, category, subcategory, amount,
			account, to_account, linked_id, note, status, payment_name
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (owner_id, id) DO UPDATE SET
			tx_date = EXCLUDED.tx_date,
			type = EXCLUDED.type,
			category = EXCLUDED.category,
			subcategory = EXCLUDED.subcategory,
			amount = EXCLUDED.amount,
			account = EXCLUDED.account,
			to_account = EXCLUDED.to_account,
			linked_id = EXCLUDED.linked_id,
			note = EXCLUDED.note,
			status = EXCLUDED.status,
			payment_name = EXCLUDED.payment_name,
			updated_at = now();
	`
	_, err := q.Exec(ctx, query,
		ownerID,
		tx.ID,
		tx.Date,
		tx.Type,
		tx.Category,
		tx.Subcategory,
		tx.Amount,
		tx.Account,
		tx.ToAccount,
		tx.LinkedID,
		tx.Note,
		tx.Status,
		tx.PaymentName,
	)
	if err != nil {
		return writeError(err, "failed to save transaction "+tx.ID)
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, ownerID string, id string) error {
	return deleteByID(ctx, r.Pool, "transactions", ownerID, id)
}
