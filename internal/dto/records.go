package dto

import "github.com/SscSPs/hisab_manager/internal/core/domain"

// SaveDebtRequest defines the data accepted to create or replace a debt.
type SaveDebtRequest struct {
	ID      string          `json:"id"`
	Name    string          `json:"name" binding:"required"`
	Type    domain.DebtType `json:"type" binding:"required,oneof=Given Taken Subscription"`
	Total   Amount          `json:"total"`
	Paid    Amount          `json:"paid"`
	DueDate string          `json:"dueDate" binding:"omitempty,isoday"`
}

// ToDomain maps the request onto a domain.Debt.
func (r SaveDebtRequest) ToDomain() domain.Debt {
	return domain.Debt{
		ID:      r.ID,
		Name:    r.Name,
		Type:    r.Type,
		Total:   r.Total.Decimal,
		Paid:    r.Paid.Decimal,
		DueDate: r.DueDate,
	}
}

// SaveGoalRequest defines the data accepted to create or replace a goal.
type SaveGoalRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name" binding:"required"`
	Target     Amount `json:"target"`
	Current    Amount `json:"current"`
	TargetDate string `json:"targetDate" binding:"omitempty,isoday"`
}

// ToDomain maps the request onto a domain.Goal.
func (r SaveGoalRequest) ToDomain() domain.Goal {
	return domain.Goal{
		ID:         r.ID,
		Name:       r.Name,
		Target:     r.Target.Decimal,
		Current:    r.Current.Decimal,
		TargetDate: r.TargetDate,
	}
}

// SaveAccountRecordRequest defines the opening balance of a named account.
type SaveAccountRecordRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name" binding:"required"`
	Balance Amount `json:"balance"`
}

// ToDomain maps the request onto a domain.AccountRecord.
func (r SaveAccountRecordRequest) ToDomain() domain.AccountRecord {
	return domain.AccountRecord{ID: r.ID, Name: r.Name, Balance: r.Balance.Decimal}
}

type ListDebtsResponse struct {
	Debts []domain.Debt `json:"debts"`
}

type ListGoalsResponse struct {
	Goals []domain.Goal `json:"goals"`
}

type ListAccountRecordsResponse struct {
	Accounts []domain.AccountRecord `json:"accounts"`
}
