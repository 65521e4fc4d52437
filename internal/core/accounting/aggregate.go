package accounting

import (
	"github.com/SscSPs/hisab_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// isExpenseLike reports whether the type lowers the net balance.
// Balance_Transfer is not one of them: it only moves money between accounts.
func isExpenseLike(t domain.TransactionType) bool {
	switch t {
	case domain.Expense, domain.EMIPayment, domain.InsurancePremium, domain.GoalDeposit, domain.Investment:
		return true
	}
	return false
}

// KnownAccounts lists the default accounts, then every account and destination account used by
// a transaction, then every account record name. Duplicates and empty names are dropped.
func KnownAccounts(transactions []domain.Transaction, records []domain.AccountRecord) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0, len(domain.DefaultAccounts)+len(records))
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, name := range domain.DefaultAccounts {
		add(name)
	}
	for _, tx := range transactions {
		add(tx.Account)
		add(tx.ToAccount)
	}
	for _, r := range records {
		add(r.Name)
	}
	return names
}

// Aggregate computes the net balance, receivable and payable totals and the per-account breakdown.
func Aggregate(transactions []domain.Transaction, debts []domain.Debt, records []domain.AccountRecord) domain.Totals {
	net := decimal.Zero
	for _, r := range records {
		net = net.Add(r.Balance)
	}
	for _, tx := range transactions {
		switch {
		case tx.Type == domain.Income:
			net = net.Add(tx.Amount)
		case isExpenseLike(tx.Type):
			net = net.Sub(tx.Amount)
		}
	}

	receivable, payable := decimal.Zero, decimal.Zero
	for _, d := range debts {
		switch {
		case d.IsReceivable():
			receivable = receivable.Add(d.Outstanding())
		case d.IsPayable():
			payable = payable.Add(d.Outstanding())
		}
	}

	return domain.Totals{
		NetBalance:      net,
		TotalReceivable: receivable,
		TotalPayable:    payable,
		Accounts:        accountBreakdown(transactions, records),
	}
}

func accountBreakdown(transactions []domain.Transaction, records []domain.AccountRecord) []domain.AccountBalance {
	names := KnownAccounts(transactions, records)

	balances := make(map[string]decimal.Decimal, len(names))
	opened := make(map[string]bool, len(records))
	for _, r := range records {
		// the first record of a name wins
		if opened[r.Name] {
			continue
		}
		opened[r.Name] = true
		balances[r.Name] = r.Balance
	}

	for _, tx := range transactions {
		if tx.Type == domain.Income {
			balances[tx.Account] = balances[tx.Account].Add(tx.Amount)
		} else {
			balances[tx.Account] = balances[tx.Account].Sub(tx.Amount)
		}
		if tx.Type == domain.BalanceTransfer && tx.ToAccount != "" {
			balances[tx.ToAccount] = balances[tx.ToAccount].Add(tx.Amount)
		}
	}

	breakdown := make([]domain.AccountBalance, len(names))
	for i, name := range names {
		breakdown[i] = domain.AccountBalance{Name: name, Balance: balances[name]}
	}
	return breakdown
}
