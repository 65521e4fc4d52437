package services

import (
	"github.com/SscSPs/hisab_manager/internal/core/accounting"
	portsrepo "github.com/SscSPs/hisab_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hisab_manager/internal/core/ports/services"
	"github.com/SscSPs/hisab_manager/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	hub := NewChangeHub(DefaultSubscriberBuffer)
	options = append([]ServiceOption{WithChangeNotifier(hub)}, options...)

	ledgerOpts := accounting.DefaultLedgerOptions()
	ledgerOpts.ImplicitSubcategoryMatch = cfg.LedgerImplicitMatch

	return &portssvc.ServiceContainer{
		Transaction:   NewTransactionService(repos, options...),
		Debt:          NewDebtService(repos.DebtRepo, options...),
		Goal:          NewGoalService(repos.GoalRepo, options...),
		AccountRecord: NewAccountRecordService(repos.AccountRecordRepo, options...),
		View:          NewViewService(repos, ledgerOpts, options...),
		Changes:       hub,
	}
}
