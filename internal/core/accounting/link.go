package accounting

import "github.com/SscSPs/hisab_manager/internal/core/domain"

// ResolveLink proposes the update a transaction's linkedId implies, or nil when there is none.
//
// The amount is always added on top of the record's current total. Re-submitting an edited
// transaction adds its full amount again; the earlier contribution is never taken back.
// A linkedId that matches no debt or goal (for example one deleted since) yields nil and the
// transaction is saved on its own. Debts are looked up before goals.
func ResolveLink(tx domain.Transaction, debts []domain.Debt, goals []domain.Goal) *domain.LinkUpdate {
	if tx.LinkedID == "" {
		return nil
	}

	for _, d := range debts {
		if d.ID != tx.LinkedID {
			continue
		}
		updated := d
		updated.Paid = d.Paid.Add(tx.Amount)
		return &domain.LinkUpdate{Collection: domain.CollectionDebts, ID: d.ID, Debt: &updated}
	}

	for _, g := range goals {
		if g.ID != tx.LinkedID {
			continue
		}
		updated := g
		updated.Current = g.Current.Add(tx.Amount)
		return &domain.LinkUpdate{Collection: domain.CollectionGoals, ID: g.ID, Goal: &updated}
	}

	return nil
}
