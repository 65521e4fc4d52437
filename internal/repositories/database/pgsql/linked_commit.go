package pgsql

import (
	"context"
	"log/slog"

	"github.com/SscSPs/hisab_manager/internal/apperrors"
	"github.com/SscSPs/hisab_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/hisab_manager/internal/core/ports/repositories"
	"github.com/SscSPs/hisab_manager/internal/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLinkedCommitter writes a transaction and its linked debt or goal in one database transaction.
type PgxLinkedCommitter struct {
	BaseRepository
}

func newPgxLinkedCommitter(pool *pgxpool.Pool) *PgxLinkedCommitter {
	return &PgxLinkedCommitter{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LinkedCommitter = (*PgxLinkedCommitter)(nil)

func (c *PgxLinkedCommitter) SaveTransactionWithLink(ctx context.Context, ownerID string, tx domain.Transaction, link domain.LinkUpdate) (err error) {
	if link.Debt == nil && link.Goal == nil {
		return apperrors.NewValidationFailedError("link update carries no record")
	}

	dbTx, err := c.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := c.Rollback(ctx, dbTx); rbErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to roll back linked write",
				slog.String("transaction_id", tx.ID),
				slog.String("error", rbErr.Error()))
		}
	}()

	if err = upsertTransaction(ctx, dbTx, ownerID, tx); err != nil {
		return err
	}
	if link.Debt != nil {
		if err = upsertDebt(ctx, dbTx, ownerID, *link.Debt); err != nil {
			return err
		}
	}
	if link.Goal != nil {
		if err = upsertGoal(ctx, dbTx, ownerID, *link.Goal); err != nil {
			return err
		}
	}
	return c.Commit(ctx, dbTx)
}
