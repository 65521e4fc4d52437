package accounting

import (
	"strings"

	"github.com/SscSPs/hisab_manager/internal/core/domain"
)

// AllTypes is the type filter that lets every transaction type through.
const AllTypes = "All"

// FilterTransactions keeps transactions whose category, subcategory or note contains query
// (case-insensitive) and whose type matches typeFilter, newest first.
func FilterTransactions(transactions []domain.Transaction, query string, typeFilter string) []domain.Transaction {
	query = strings.ToLower(query)

	matched := make([]domain.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if typeFilter != AllTypes && string(tx.Type) != typeFilter {
			continue
		}
		haystack := strings.ToLower(tx.Category + " " + tx.Subcategory + " " + tx.Note)
		if !strings.Contains(haystack, query) {
			continue
		}
		matched = append(matched, tx)
	}
	return sortNewestFirst(matched)
}
