package accounting

import (
	"strings"

	"github.com/SscSPs/hisab_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerOptions tunes how transactions are attached to counterparty ledgers.
type LedgerOptions struct {
	// ImplicitSubcategoryMatch attaches a transaction to every ledger whose key equals the
	// transaction's normalized subcategory, even without a linkedId. It can over-include when a
	// subcategory happens to spell a counterparty's name.
	ImplicitSubcategoryMatch bool
}

// DefaultLedgerOptions keeps the implicit subcategory match on.
func DefaultLedgerOptions() LedgerOptions {
	return LedgerOptions{ImplicitSubcategoryMatch: true}
}

// MatchesBySubcategory is the implicit membership rule: the transaction's subcategory names the
// counterparty of the ledger identified by key.
func MatchesBySubcategory(tx domain.Transaction, key string) bool {
	return Normalize(tx.Subcategory) == key
}

type ledgerGroup struct {
	ledger  domain.NameLedger
	debtIDs map[string]struct{}
	txIDs   map[string]struct{}
}

// GroupLedgers builds one ledger per distinct normalized counterparty name found in debts,
// in first-seen order.
func GroupLedgers(debts []domain.Debt, transactions []domain.Transaction, opts LedgerOptions) []domain.NameLedger {
	var order []string
	groups := make(map[string]*ledgerGroup)

	for _, d := range debts {
		key := Normalize(d.Name)
		g, ok := groups[key]
		if !ok {
			g = &ledgerGroup{
				ledger: domain.NameLedger{
					Key:                key,
					Name:               strings.TrimSpace(d.Name),
					Receivables:        decimal.Zero,
					Payables:           decimal.Zero,
					Records:            []domain.Debt{},
					LinkedTransactions: []domain.Transaction{},
				},
				debtIDs: make(map[string]struct{}),
				txIDs:   make(map[string]struct{}),
			}
			groups[key] = g
			order = append(order, key)
		}

		switch {
		case d.IsReceivable():
			g.ledger.Receivables = g.ledger.Receivables.Add(d.Outstanding())
		case d.IsPayable():
			g.ledger.Payables = g.ledger.Payables.Add(d.Outstanding())
		}
		g.ledger.Records = append(g.ledger.Records, d)
		g.debtIDs[d.ID] = struct{}{}
	}

	for _, tx := range transactions {
		for _, key := range order {
			g := groups[key]
			if !g.includes(tx, opts) {
				continue
			}
			if _, dup := g.txIDs[tx.ID]; dup {
				continue
			}
			g.txIDs[tx.ID] = struct{}{}
			g.ledger.LinkedTransactions = append(g.ledger.LinkedTransactions, tx)
		}
	}

	ledgers := make([]domain.NameLedger, len(order))
	for i, key := range order {
		l := groups[key].ledger
		l.LinkedTransactions = sortNewestFirst(l.LinkedTransactions)
		l.Net = l.Receivables.Sub(l.Payables)
		ledgers[i] = l
	}
	return ledgers
}

func (g *ledgerGroup) includes(tx domain.Transaction, opts LedgerOptions) bool {
	if tx.LinkedID != "" {
		if _, ok := g.debtIDs[tx.LinkedID]; ok {
			return true
		}
	}
	return opts.ImplicitSubcategoryMatch && MatchesBySubcategory(tx, g.ledger.Key)
}
