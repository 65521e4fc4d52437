package accounting

import (
	"testing"

	"github.com/SscSPs/hisab_manager/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestFilterTransactions(t *testing.T) {
	txs := []domain.Transaction{
		{ID: "t1", Date: "2025-01-03", Type: domain.Expense, Category: "Grocery", Subcategory: "Milk"},
		{ID: "t2", Date: "2025-01-05", Type: domain.Expense, Category: "Grocery", Subcategory: "Bread"},
		{ID: "t3", Date: "2025-01-07", Type: domain.Expense, Category: "Other", Note: "buttermilk for party"},
		{ID: "t4", Date: "2025-01-01", Type: domain.Income, Category: "MILK sales"},
		{ID: "t5", Date: "2025-01-09", Type: domain.Income, Category: "Salary"},
	}

	tests := []struct {
		name       string
		query      string
		typeFilter string
		want       []string
	}{
		{"search all types", "milk", AllTypes, []string{"t3", "t1", "t4"}},
		{"search upper case query", "MILK", AllTypes, []string{"t3", "t1", "t4"}},
		{"empty query", "", AllTypes, []string{"t5", "t3", "t2", "t1", "t4"}},
		{"type filter", "", string(domain.Income), []string{"t5", "t4"}},
		{"search and type", "milk", string(domain.Expense), []string{"t3", "t1"}},
		{"separator is a space", "grocery milk", AllTypes, []string{"t1"}},
		{"no match", "fuel", AllTypes, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterTransactions(txs, tt.query, tt.typeFilter)))
		})
	}
}
