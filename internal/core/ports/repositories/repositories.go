package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Committer is nil when the store cannot write a linked pair atomically.
type RepositoryProvider struct {
	TransactionRepo   TransactionRepositoryFacade
	DebtRepo          DebtRepositoryFacade
	GoalRepo          GoalRepositoryFacade
	AccountRecordRepo AccountRecordRepositoryFacade
	Committer         LinkedCommitter
}
