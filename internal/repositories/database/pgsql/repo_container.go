package pgsql

import (
	portsrepo "github.com/SscSPs/hisab_manager/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo:   newPgxTransactionRepository(dbPool),
		DebtRepo:          newPgxDebtRepository(dbPool),
		GoalRepo:          newPgxGoalRepository(dbPool),
		AccountRecordRepo: newPgxAccountRecordRepository(dbPool),
		Committer:         newPgxLinkedCommitter(dbPool),
	}
}
