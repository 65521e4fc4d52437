package domain

import "github.com/shopspring/decimal"

// DefaultAccounts are always part of the known account names, ahead of any user-defined one.
var DefaultAccounts = []string{"Bank", "Cash", "Credit Card", "UPI", "Wallet"}

// AccountRecord holds the opening balance entered for a named account.
type AccountRecord struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"` // Balance before any recorded transaction
}
