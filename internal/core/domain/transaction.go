package domain

import "github.com/shopspring/decimal"

// TransactionType is the kind of money movement a transaction records.
type TransactionType string

const (
	Expense          TransactionType = "Expense"
	Income           TransactionType = "Income"
	EMIPayment       TransactionType = "EMI_Payment"
	GoalDeposit      TransactionType = "Goal_Deposit"
	InsurancePremium TransactionType = "Insurance_Premium"
	Investment       TransactionType = "Investment"
	BalanceTransfer  TransactionType = "Balance_Transfer"
)

// EntryTypes lists every transaction type in display order.
var EntryTypes = []TransactionType{Expense, Income, EMIPayment, GoalDeposit, InsurancePremium, Investment, BalanceTransfer}

// StatusDone is the status given to a transaction submitted without one.
const StatusDone = "Done"

// DefaultCategories are offered to the entry form before the user has any history.
var DefaultCategories = []string{"Salary", "Rent", "Grocery", "Investment", "Fuel", "Shopping", "Medical", "Insurance", "EMI", "LIC", "Policy", "Transfer"}

// Transaction is a single income, expense or transfer entry.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Amount      decimal.Decimal `json:"amount"`
	Account     string          `json:"account"`
	ToAccount   string          `json:"toAccount,omitempty"` // Destination of a Balance_Transfer
	LinkedID    string          `json:"linkedId,omitempty"`  // Debt or Goal this entry contributes to
	Note        string          `json:"note,omitempty"`
	Status      string          `json:"status,omitempty"`
	PaymentName string          `json:"paymentName,omitempty"`
}

// IsValidTransactionType reports whether t is one of EntryTypes.
func IsValidTransactionType(t TransactionType) bool {
	for _, et := range EntryTypes {
		if et == t {
			return true
		}
	}
	return false
}
