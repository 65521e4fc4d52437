package repositories

import (
	"context"

	"github.com/SscSPs/hisab_manager/internal/core/domain"
)

// LinkedCommitter is implemented by stores that can write a transaction together with the
// debt or goal its linkedId points to, as one unit.
type LinkedCommitter interface {
	// SaveTransactionWithLink persists tx and the proposed linked record atomically.
	SaveTransactionWithLink(ctx context.Context, ownerID string, tx domain.Transaction, link domain.LinkUpdate) error
}
