package domain

import "github.com/shopspring/decimal"

// DebtType tells in which direction money is owed.
type DebtType string

const (
	Given        DebtType = "Given"        // The user lent money; the counterparty owes it back
	Taken        DebtType = "Taken"        // The user borrowed money
	Subscription DebtType = "Subscription" // A recurring obligation, treated as payable
)

// DebtTypes lists every debt type in display order.
var DebtTypes = []DebtType{Given, Taken, Subscription}

// Debt is a person-to-person obligation ("hisab" entry).
type Debt struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"` // Counterparty, free text
	Type    DebtType        `json:"type"`
	Total   decimal.Decimal `json:"total"`
	Paid    decimal.Decimal `json:"paid"`
	DueDate string          `json:"dueDate,omitempty"`
}

// Outstanding is total minus paid. It is negative when the debt was overpaid.
func (d Debt) Outstanding() decimal.Decimal {
	return d.Total.Sub(d.Paid)
}

// IsReceivable reports whether the outstanding amount is owed to the user.
func (d Debt) IsReceivable() bool {
	return d.Type == Given
}

// IsPayable reports whether the outstanding amount is owed by the user.
func (d Debt) IsPayable() bool {
	return d.Type == Taken || d.Type == Subscription
}
