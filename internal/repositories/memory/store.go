// Package memory keeps every record collection in process memory. It is the default store and the
// one used by tests; data is lost on restart.
package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/hisab_manager/internal/apperrors"
	"github.com/SscSPs/hisab_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/hisab_manager/internal/core/ports/repositories"
)

// collection keeps records by id in insertion order. Replacing a record keeps its position.
type collection[T any] struct {
	order []string
	items map[string]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[string]T)}
}

func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.items[id]
	return v, ok
}

func (c *collection[T]) list() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

func (c *collection[T]) put(id string, v T) {
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = v
}

func (c *collection[T]) remove(id string) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

type ownerData struct {
	transactions *collection[domain.Transaction]
	debts        *collection[domain.Debt]
	goals        *collection[domain.Goal]
	records      *collection[domain.AccountRecord]
}

func newOwnerData() *ownerData {
	return &ownerData{
		transactions: newCollection[domain.Transaction](),
		debts:        newCollection[domain.Debt](),
		goals:        newCollection[domain.Goal](),
		records:      newCollection[domain.AccountRecord](),
	}
}

// Store implements every record repository plus the atomic linked write.
type Store struct {
	mu     sync.RWMutex
	owners map[string]*ownerData
}

var (
	_ portsrepo.TransactionRepositoryFacade   = (*Store)(nil)
	_ portsrepo.DebtRepositoryFacade          = (*Store)(nil)
	_ portsrepo.GoalRepositoryFacade          = (*Store)(nil)
	_ portsrepo.AccountRecordRepositoryFacade = (*Store)(nil)
	_ portsrepo.LinkedCommitter               = (*Store)(nil)
)

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{owners: make(map[string]*ownerData)}
}

// NewRepositoryProvider returns a provider backed by a single new Store.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return NewStore().Provider()
}

// Provider exposes the store through every repository slot.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo:   s,
		DebtRepo:          s,
		GoalRepo:          s,
		AccountRecordRepo: s,
		Committer:         s,
	}
}

// owner returns the data of ownerID, or nil. Callers hold at least the read lock.
func (s *Store) owner(ownerID string) *ownerData {
	return s.owners[ownerID]
}

// ownerForWrite returns the data of ownerID, creating it. Callers hold the write lock.
func (s *Store) ownerForWrite(ownerID string) *ownerData {
	o, ok := s.owners[ownerID]
	if !ok {
		o = newOwnerData()
		s.owners[ownerID] = o
	}
	return o
}

// SaveTransactionWithLink implements portsrepo.LinkedCommitter.
func (s *Store) SaveTransactionWithLink(ctx context.Context, ownerID string, tx domain.Transaction, link domain.LinkUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if link.Debt == nil && link.Goal == nil {
		return apperrors.NewValidationFailedError("link update carries no record")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.ownerForWrite(ownerID)
	o.transactions.put(tx.ID, tx)
	if link.Debt != nil {
		o.debts.put(link.Debt.ID, *link.Debt)
	}
	if link.Goal != nil {
		o.goals.put(link.Goal.ID, *link.Goal)
	}
	return nil
}
