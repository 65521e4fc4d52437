package services

import (
	"context"

	"github.com/SscSPs/hisab_manager/internal/core/domain"
)

// ViewSvc computes the derived views from a fresh snapshot of the owner's records.
// Nothing it returns is stored.
type ViewSvc interface {
	Totals(ctx context.Context, ownerID string) (*domain.Totals, error)
	NameLedgers(ctx context.Context, ownerID string) ([]domain.NameLedger, error)
	GoalReport(ctx context.Context, ownerID string) ([]domain.GoalView, error)
	FilteredTransactions(ctx context.Context, ownerID string, query string, typeFilter string) ([]domain.Transaction, error)

	// Dashboard computes every view from one snapshot.
	Dashboard(ctx context.Context, ownerID string, query string, typeFilter string) (*domain.Dashboard, error)

	// KnownAccounts lists the account names offered by the entry form.
	KnownAccounts(ctx context.Context, ownerID string) ([]string, error)
}

// ChangeNotifier fans record change events out to subscribers of the same owner.
type ChangeNotifier interface {
	// Publish never blocks. Subscribers that are not keeping up miss the event.
	Publish(event domain.ChangeEvent)

	// Subscribe returns the event channel of the owner and a func that ends the subscription.
	Subscribe(ownerID string) (<-chan domain.ChangeEvent, func())
}
