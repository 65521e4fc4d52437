package dto

import "github.com/SscSPs/hisab_manager/internal/core/domain"

// NameLedgersResponse wraps the counterparty ledgers in first-seen order.
type NameLedgersResponse struct {
	NameLedgers []domain.NameLedger `json:"nameLedgers"`
}

// GoalReportResponse wraps the projected goals.
type GoalReportResponse struct {
	Goals []domain.GoalView `json:"goals"`
}

// MetaResponse lists the choices offered by the entry forms.
type MetaResponse struct {
	EntryTypes []domain.TransactionType `json:"entryTypes"`
	DebtTypes  []domain.DebtType        `json:"debtTypes"`
	Categories []string                 `json:"categories"`
	Accounts   []string                 `json:"accounts"`
}

// NewMetaResponse combines the fixed choices with the owner's known account names.
func NewMetaResponse(accounts []string) MetaResponse {
	return MetaResponse{
		EntryTypes: domain.EntryTypes,
		DebtTypes:  domain.DebtTypes,
		Categories: domain.DefaultCategories,
		Accounts:   accounts,
	}
}
