package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/hisab_manager/internal/core/accounting"
	portsrepo "github.com/SscSPs/hisab_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hisab_manager/internal/core/ports/services"
	"github.com/SscSPs/hisab_manager/internal/core/services"
	"github.com/SscSPs/hisab_manager/internal/dto"
	"github.com/SscSPs/hisab_manager/internal/repositories/database/pgsql"
	"github.com/SscSPs/hisab_manager/internal/repositories/memory"
	"github.com/SscSPs/hisab_manager/pkg/database"
)

// DefaultOwner owns every record read from a snapshot file.
const DefaultOwner = "local"

// Snapshot is the export format of the four record collections. Amounts may be numbers or
// strings; unreadable ones count as zero.
type Snapshot struct {
	Transactions   []dto.SaveTransactionRequest   `json:"transactions"`
	Debts          []dto.SaveDebtRequest          `json:"debts"`
	Goals          []dto.SaveGoalRequest          `json:"goals"`
	AccountRecords []dto.SaveAccountRecordRequest `json:"accountRecords"`
}

// DecodeSnapshot reads a snapshot from r.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// Load copies the snapshot into a fresh in-memory store owned by ownerID.
func (s *Snapshot) Load(ctx context.Context, ownerID string) (portsrepo.RepositoryProvider, error) {
	repos := memory.NewRepositoryProvider()
	for i, req := range s.Transactions {
		tx := req.ToDomain()
		if tx.ID == "" {
			tx.ID = fmt.Sprintf("tx-%d", i+1)
		}
		if err := repos.TransactionRepo.SaveTransaction(ctx, ownerID, tx); err != nil {
			return repos, err
		}
	}
	for i, req := range s.Debts {
		d := req.ToDomain()
		if d.ID == "" {
			d.ID = fmt.Sprintf("debt-%d", i+1)
		}
		if err := repos.DebtRepo.SaveDebt(ctx, ownerID, d); err != nil {
			return repos, err
		}
	}
	for i, req := range s.Goals {
		g := req.ToDomain()
		if g.ID == "" {
			g.ID = fmt.Sprintf("goal-%d", i+1)
		}
		if err := repos.GoalRepo.SaveGoal(ctx, ownerID, g); err != nil {
			return repos, err
		}
	}
	for i, req := range s.AccountRecords {
		a := req.ToDomain()
		if a.ID == "" {
			a.ID = fmt.Sprintf("account-%d", i+1)
		}
		if err := repos.AccountRecordRepo.SaveAccountRecord(ctx, ownerID, a); err != nil {
			return repos, err
		}
	}
	return repos, nil
}

// sourceFlags are shared by every report command.
type sourceFlags struct {
	snapshot        string
	dbURL           string
	owner           string
	currency        string
	raw             bool
	noImplicitMatch bool
}

func (s *sourceFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&s.snapshot, "snapshot", "", "JSON snapshot file with transactions, debts, goals and accountRecords")
	f.StringVar(&s.dbURL, "db", os.Getenv("PGSQL_URL"), "PostgreSQL URL, used when -snapshot is not set")
	f.StringVar(&s.owner, "owner", "", "owner whose records are read from the database")
	f.StringVar(&s.currency, "c", "INR", "ISO currency code used to format amounts")
	f.BoolVar(&s.raw, "raw", false, "print markdown without terminal styling")
	f.BoolVar(&s.noImplicitMatch, "explicit-links", false, "attach transactions to ledgers by linkedId only")
}

// open builds a view service over the selected source. The returned func releases it.
func (s *sourceFlags) open(ctx context.Context) (portssvc.ViewSvc, string, func(), error) {
	ledgerOpts := accounting.DefaultLedgerOptions()
	ledgerOpts.ImplicitSubcategoryMatch = !s.noImplicitMatch

	switch {
	case s.snapshot != "":
		f, err := os.Open(s.snapshot)
		if err != nil {
			return nil, "", nil, err
		}
		defer f.Close()

		snap, err := DecodeSnapshot(f)
		if err != nil {
			return nil, "", nil, err
		}
		owner := s.owner
		if owner == "" {
			owner = DefaultOwner
		}
		repos, err := snap.Load(ctx, owner)
		if err != nil {
			return nil, "", nil, err
		}
		return services.NewViewService(repos, ledgerOpts), owner, func() {}, nil

	case s.dbURL != "":
		if s.owner == "" {
			return nil, "", nil, errors.New("-owner is required with -db")
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		pool, err := database.NewPgxPool(ctx, s.dbURL, logger)
		if err != nil {
			return nil, "", nil, err
		}
		svc := services.NewViewService(pgsql.NewRepositoryProvider(pool), ledgerOpts)
		return svc, s.owner, func() { database.ClosePgxPool(pool, logger) }, nil
	}
	return nil, "", nil, errors.New("either -snapshot or -db is required")
}
