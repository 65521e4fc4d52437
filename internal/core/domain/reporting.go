package domain

import "github.com/shopspring/decimal"

// AccountBalance is the computed balance of one known account.
type AccountBalance struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// Totals is the dashboard summary across all accounts and debts.
type Totals struct {
	NetBalance      decimal.Decimal  `json:"netBalance"`
	TotalReceivable decimal.Decimal  `json:"totalReceivable"`
	TotalPayable    decimal.Decimal  `json:"totalPayable"`
	Accounts        []AccountBalance `json:"accountBreakdown"`
}

// NameLedger groups the debts and transactions of one counterparty.
type NameLedger struct {
	Key                string          `json:"key"`  // Normalized counterparty name
	Name               string          `json:"name"` // First-seen display name
	Receivables        decimal.Decimal `json:"receivables"`
	Payables           decimal.Decimal `json:"payables"`
	Net                decimal.Decimal `json:"net"` // Receivables - Payables, positive when they owe the user
	Records            []Debt          `json:"records"`
	LinkedTransactions []Transaction   `json:"linkedTransactions"`
}

// GoalView is a goal with its projection and deposit history.
type GoalView struct {
	Goal
	Remaining       decimal.Decimal `json:"remaining"`
	MonthsToTarget  int64           `json:"monthsToTarget"`
	MonthlyRequired decimal.Decimal `json:"monthlyRequired"`
	History         []Transaction   `json:"history"`
}

// LinkUpdate is the follow-up write proposed for a transaction carrying a linkedId.
// Exactly one of Debt or Goal is set, matching Collection.
type LinkUpdate struct {
	Collection Collection `json:"collection"`
	ID         string     `json:"id"`
	Debt       *Debt      `json:"debt,omitempty"`
	Goal       *Goal      `json:"goal,omitempty"`
}

// Dashboard bundles every computed view for one owner.
type Dashboard struct {
	Totals               Totals        `json:"totals"`
	NameLedgers          []NameLedger  `json:"nameLedgers"`
	GoalReport           []GoalView    `json:"goalReport"`
	FilteredTransactions []Transaction `json:"filteredTransactions"`
}
