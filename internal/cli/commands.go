// Package cli implements the hisabctl subcommands. Each one computes a view from a snapshot file
// or the database and prints it as markdown.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/SscSPs/hisab_manager/internal/core/accounting"
	portssvc "github.com/SscSPs/hisab_manager/internal/core/ports/services"
	"github.com/google/subcommands"
)

// Commands returns every subcommand, writing reports to out.
func Commands(out io.Writer) []subcommands.Command {
	return []subcommands.Command{
		&totalsCmd{out: out},
		&ledgersCmd{out: out},
		&goalsCmd{out: out},
		&transactionsCmd{out: out},
	}
}

// report opens the source, renders one view and prints it.
func report(ctx context.Context, src *sourceFlags, out io.Writer, render func(context.Context, portssvc.ViewSvc, string) (string, error)) subcommands.ExitStatus {
	views, owner, closeSource, err := src.open(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening records: %v\n", err)
		return subcommands.ExitUsageError
	}
	defer closeSource()

	md, err := render(ctx, views, owner)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing report: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := printMarkdown(out, md, src.raw); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type totalsCmd struct {
	sourceFlags
	out io.Writer
}

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "display net balance, receivables, payables and account balances" }
func (*totalsCmd) Usage() string {
	return `hisabctl totals (-snapshot <file> | -db <url> -owner <id>) [-c <currency>] [-raw]

  Displays the net balance across all accounts and the money owed in both directions.
`
}

func (c *totalsCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *totalsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return report(ctx, &c.sourceFlags, c.out, func(ctx context.Context, views portssvc.ViewSvc, owner string) (string, error) {
		totals, err := views.Totals(ctx, owner)
		if err != nil {
			return "", err
		}
		return TotalsMarkdown(*totals, c.currency), nil
	})
}

type ledgersCmd struct {
	sourceFlags
	out io.Writer
}

func (*ledgersCmd) Name() string     { return "ledgers" }
func (*ledgersCmd) Synopsis() string { return "display debts and payments grouped by person" }
func (*ledgersCmd) Usage() string {
	return `hisabctl ledgers (-snapshot <file> | -db <url> -owner <id>) [-explicit-links] [-raw]

  Groups debts by counterparty name and lists the transactions that belong to each.
`
}

func (c *ledgersCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *ledgersCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return report(ctx, &c.sourceFlags, c.out, func(ctx context.Context, views portssvc.ViewSvc, owner string) (string, error) {
		ledgers, err := views.NameLedgers(ctx, owner)
		if err != nil {
			return "", err
		}
		return LedgersMarkdown(ledgers, c.currency), nil
	})
}

type goalsCmd struct {
	sourceFlags
	out io.Writer
}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "display savings goals with the monthly amount still needed" }
func (*goalsCmd) Usage() string {
	return `hisabctl goals (-snapshot <file> | -db <url> -owner <id>) [-raw]
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *goalsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return report(ctx, &c.sourceFlags, c.out, func(ctx context.Context, views portssvc.ViewSvc, owner string) (string, error) {
		goals, err := views.GoalReport(ctx, owner)
		if err != nil {
			return "", err
		}
		return GoalsMarkdown(goals, c.currency), nil
	})
}

type transactionsCmd struct {
	sourceFlags
	out   io.Writer
	query string
	typ   string
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list transactions newest first" }
func (*transactionsCmd) Usage() string {
	return `hisabctl transactions (-snapshot <file> | -db <url> -owner <id>) [-q <text>] [-type <type>] [-raw]

  Lists transactions whose category, subcategory or note contains the query text.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.query, "q", "", "case-insensitive search text")
	f.StringVar(&c.typ, "type", accounting.AllTypes, "entry type to keep, or All")
}

func (c *transactionsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return report(ctx, &c.sourceFlags, c.out, func(ctx context.Context, views portssvc.ViewSvc, owner string) (string, error) {
		txs, err := views.FilteredTransactions(ctx, owner, c.query, c.typ)
		if err != nil {
			return "", err
		}
		return TransactionsMarkdown(txs, c.currency), nil
	})
}
