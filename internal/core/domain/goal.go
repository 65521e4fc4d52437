package domain

import "github.com/shopspring/decimal"

// Goal is a savings target. Current grows through linked Goal_Deposit entries or direct edits.
type Goal struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Target     decimal.Decimal `json:"target"`
	Current    decimal.Decimal `json:"current"`
	TargetDate string          `json:"targetDate,omitempty"`
}
