package accounting

import (
	"fmt"
	"testing"

	"github.com/SscSPs/hisab_manager/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	if !dec(want).Equal(got) {
		assert.Fail(t, fmt.Sprintf("want %s, got %s", want, got), msgAndArgs...)
	}
}

func tx(id, date string, typ domain.TransactionType, amount string) domain.Transaction {
	return domain.Transaction{ID: id, Date: date, Type: typ, Amount: dec(amount), Account: "Bank"}
}

func ids(txs []domain.Transaction) []string {
	out := make([]string, len(txs))
	for i, t := range txs {
		out[i] = t.ID
	}
	return out
}
