// Package accounting derives every summary view of the tracker from raw record snapshots.
//
// All functions here are pure: they never mutate their inputs, never touch storage and return
// the same result for the same snapshot. Callers recompute on every change instead of keeping
// derived values around.
package accounting

import (
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/hisab_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Normalize turns a free-text counterparty name into its grouping key.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ParseAmount reads a user-entered number. Empty or malformed input counts as zero.
func ParseAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseDay parses an ISO calendar day. Full timestamps are accepted too.
// Anything else becomes the zero time, which orders before every real date.
func parseDay(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(domain.DayLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// sortNewestFirst returns a copy of txs ordered by date descending.
// Entries with equal dates keep their collection order.
func sortNewestFirst(txs []domain.Transaction) []domain.Transaction {
	type dated struct {
		at time.Time
		tx domain.Transaction
	}
	items := make([]dated, len(txs))
	for i, tx := range txs {
		at, _ := parseDay(tx.Date)
		items[i] = dated{at: at, tx: tx}
	}
	slices.SortStableFunc(items, func(a, b dated) int {
		return b.at.Compare(a.at)
	})

	sorted := make([]domain.Transaction, len(items))
	for i, it := range items {
		sorted[i] = it.tx
	}
	return sorted
}
