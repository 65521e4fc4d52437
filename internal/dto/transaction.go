package dto

import "github.com/SscSPs/hisab_manager/internal/core/domain"

// SaveTransactionRequest defines the data accepted to create or replace a transaction.
// An empty ID creates a new record.
type SaveTransactionRequest struct {
	ID          string                 `json:"id"`
	Date        string                 `json:"date" binding:"required,isoday"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=Expense Income EMI_Payment Goal_Deposit Insurance_Premium Investment Balance_Transfer"`
	Category    string                 `json:"category"`
	Subcategory string                 `json:"subcategory"`
	Amount      Amount                 `json:"amount"`
	Account     string                 `json:"account" binding:"required"`
	ToAccount   string                 `json:"toAccount" binding:"required_if=Type Balance_Transfer"`
	LinkedID    string                 `json:"linkedId"`
	Note        string                 `json:"note"`
	Status      string                 `json:"status"`
	PaymentName string                 `json:"paymentName"`
}

// ToDomain maps the request onto a domain.Transaction.
func (r SaveTransactionRequest) ToDomain() domain.Transaction {
	return domain.Transaction{
		ID:          r.ID,
		Date:        r.Date,
		Type:        r.Type,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Amount:      r.Amount.Decimal,
		Account:     r.Account,
		ToAccount:   r.ToAccount,
		LinkedID:    r.LinkedID,
		Note:        r.Note,
		Status:      r.Status,
		PaymentName: r.PaymentName,
	}
}

// SaveTransactionResponse is returned after a transaction was written.
// LinkUpdate is set when the linkedId pointed at a debt or goal that was updated as well.
type SaveTransactionResponse struct {
	Transaction domain.Transaction `json:"transaction"`
	LinkUpdate  *domain.LinkUpdate `json:"linkUpdate,omitempty"`
}

// ListTransactionsResponse wraps a filtered, newest first list of transactions.
type ListTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
}

// ViewParams defines the query parameters of the transaction list and the dashboard.
type ViewParams struct {
	Query string `form:"q"`
	Type  string `form:"type,default=All"`
}
