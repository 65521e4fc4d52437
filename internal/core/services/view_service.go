package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/hisab_manager/internal/core/accounting"
	"github.com/SscSPs/hisab_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/hisab_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hisab_manager/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// collections selects what a snapshot load reads.
type collections uint8

const (
	withTransactions collections = 1 << iota
	withDebts
	withGoals
	withAccountRecords

	withAll = withTransactions | withDebts | withGoals | withAccountRecords
)

// snapshot is the full state of one owner at a point in time.
type snapshot struct {
	transactions []domain.Transaction
	debts        []domain.Debt
	goals        []domain.Goal
	records      []domain.AccountRecord
}

// viewService recomputes every view from a fresh snapshot per call.
type viewService struct {
	BaseService
	repos      portsrepo.RepositoryProvider
	ledgerOpts accounting.LedgerOptions
}

// NewViewService creates the view service.
func NewViewService(repos portsrepo.RepositoryProvider, ledgerOpts accounting.LedgerOptions, options ...ServiceOption) portssvc.ViewSvc {
	return &viewService{
		BaseService: newBaseService(options),
		repos:       repos,
		ledgerOpts:  ledgerOpts,
	}
}

var _ portssvc.ViewSvc = (*viewService)(nil)

// load reads the requested collections concurrently.
func (s *viewService) load(ctx context.Context, ownerID string, what collections) (*snapshot, error) {
	snap := &snapshot{}
	g, gctx := errgroup.WithContext(ctx)

	if what&withTransactions != 0 {
		g.Go(func() (err error) {
			snap.transactions, err = s.repos.TransactionRepo.ListTransactions(gctx, ownerID)
			return wrapLoad(domain.CollectionTransactions, err)
		})
	}
	if what&withDebts != 0 {
		g.Go(func() (err error) {
			snap.debts, err = s.repos.DebtRepo.ListDebts(gctx, ownerID)
			return wrapLoad(domain.CollectionDebts, err)
		})
	}
	if what&withGoals != 0 {
		g.Go(func() (err error) {
			snap.goals, err = s.repos.GoalRepo.ListGoals(gctx, ownerID)
			return wrapLoad(domain.CollectionGoals, err)
		})
	}
	if what&withAccountRecords != 0 {
		g.Go(func() (err error) {
			snap.records, err = s.repos.AccountRecordRepo.ListAccountRecords(gctx, ownerID)
			return wrapLoad(domain.CollectionAccountRecords, err)
		})
	}

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load snapshot", slog.String("owner_id", ownerID))
		return nil, err
	}
	return snap, nil
}

func wrapLoad(c domain.Collection, err error) error {
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", c, err)
	}
	return nil
}

func (s *viewService) Totals(ctx context.Context, ownerID string) (*domain.Totals, error) {
	snap, err := s.load(ctx, ownerID, withTransactions|withDebts|withAccountRecords)
	if err != nil {
		return nil, err
	}
	totals := accounting.Aggregate(snap.transactions, snap.debts, snap.records)
	return &totals, nil
}

func (s *viewService) NameLedgers(ctx context.Context, ownerID string) ([]domain.NameLedger, error) {
	snap, err := s.load(ctx, ownerID, withTransactions|withDebts)
	if err != nil {
		return nil, err
	}
	return accounting.GroupLedgers(snap.debts, snap.transactions, s.ledgerOpts), nil
}

func (s *viewService) GoalReport(ctx context.Context, ownerID string) ([]domain.GoalView, error) {
	snap, err := s.load(ctx, ownerID, withTransactions|withGoals)
	if err != nil {
		return nil, err
	}
	return accounting.ProjectGoals(snap.goals, snap.transactions, s.Now()), nil
}

func (s *viewService) FilteredTransactions(ctx context.Context, ownerID string, query string, typeFilter string) ([]domain.Transaction, error) {
	snap, err := s.load(ctx, ownerID, withTransactions)
	if err != nil {
		return nil, err
	}
	return accounting.FilterTransactions(snap.transactions, query, normalizeTypeFilter(typeFilter)), nil
}

func (s *viewService) Dashboard(ctx context.Context, ownerID string, query string, typeFilter string) (*domain.Dashboard, error) {
	snap, err := s.load(ctx, ownerID, withAll)
	if err != nil {
		return nil, err
	}

	dashboard := &domain.Dashboard{
		Totals:               accounting.Aggregate(snap.transactions, snap.debts, snap.records),
		NameLedgers:          accounting.GroupLedgers(snap.debts, snap.transactions, s.ledgerOpts),
		GoalReport:           accounting.ProjectGoals(snap.goals, snap.transactions, s.Now()),
		FilteredTransactions: accounting.FilterTransactions(snap.transactions, query, normalizeTypeFilter(typeFilter)),
	}
	s.LogDebug(ctx, "Dashboard computed",
		slog.Int("transactions", len(snap.transactions)),
		slog.Int("debts", len(snap.debts)),
		slog.Int("goals", len(snap.goals)))
	return dashboard, nil
}

func (s *viewService) KnownAccounts(ctx context.Context, ownerID string) ([]string, error) {
	snap, err := s.load(ctx, ownerID, withTransactions|withAccountRecords)
	if err != nil {
		return nil, err
	}
	return accounting.KnownAccounts(snap.transactions, snap.records), nil
}

// normalizeTypeFilter treats an empty filter as no filter.
func normalizeTypeFilter(typeFilter string) string {
	if typeFilter == "" {
		return accounting.AllTypes
	}
	return typeFilter
}
