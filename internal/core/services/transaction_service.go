package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/hisab_manager/internal/apperrors"
	"github.com/SscSPs/hisab_manager/internal/core/accounting"
	"github.com/SscSPs/hisab_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/hisab_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hisab_manager/internal/core/ports/services"
	"github.com/SscSPs/hisab_manager/internal/dto"
	"github.com/google/uuid"
)

// transactionService writes transactions and applies the debt or goal update their linkedId implies.
type transactionService struct {
	BaseService
	txRepo    portsrepo.TransactionRepositoryFacade
	debtRepo  portsrepo.DebtRepositoryFacade
	goalRepo  portsrepo.GoalRepositoryFacade
	committer portsrepo.LinkedCommitter
}

// NewTransactionService creates a new transaction service. When repos.Committer is set, a
// transaction and its linked record are written in one unit; otherwise one after the other.
func NewTransactionService(repos portsrepo.RepositoryProvider, options ...ServiceOption) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService: newBaseService(options),
		txRepo:      repos.TransactionRepo,
		debtRepo:    repos.DebtRepo,
		goalRepo:    repos.GoalRepo,
		committer:   repos.Committer,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) GetTransaction(ctx context.Context, ownerID string, id string) (*domain.Transaction, error) {
	tx, err := s.txRepo.FindTransactionByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", id, err)
	}
	return tx, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	txs, err := s.txRepo.ListTransactions(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

func (s *transactionService) SaveTransaction(ctx context.Context, ownerID string, req dto.SaveTransactionRequest) (*domain.Transaction, *domain.LinkUpdate, error) {
	tx := req.ToDomain()
	if !domain.IsValidTransactionType(tx.Type) {
		return nil, nil, fmt.Errorf("unknown transaction type %q: %w", tx.Type, apperrors.ErrValidation)
	}
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.Status == "" {
		tx.Status = domain.StatusDone
	}

	link, err := s.resolveLink(ctx, ownerID, tx)
	if err != nil {
		return nil, nil, err
	}

	switch {
	case link == nil:
		err = s.txRepo.SaveTransaction(ctx, ownerID, tx)
	case s.committer != nil:
		err = s.committer.SaveTransactionWithLink(ctx, ownerID, tx, *link)
	default:
		err = s.saveSequentially(ctx, ownerID, tx, *link)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("owner_id", ownerID),
			slog.String("transaction_id", tx.ID))
		return nil, nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.publish(ownerID, domain.CollectionTransactions, tx.ID, domain.ChangeUpserted)
	if link != nil {
		s.publish(ownerID, link.Collection, link.ID, domain.ChangeUpserted)
	}

	s.LogInfo(ctx, "Transaction saved",
		slog.String("transaction_id", tx.ID),
		slog.String("type", string(tx.Type)),
		slog.Bool("linked", link != nil))
	return &tx, link, nil
}

// resolveLink reads the current debts and goals only when the transaction carries a linkedId.
func (s *transactionService) resolveLink(ctx context.Context, ownerID string, tx domain.Transaction) (*domain.LinkUpdate, error) {
	if tx.LinkedID == "" {
		return nil, nil
	}

	debts, err := s.debtRepo.ListDebts(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load debts for linked transaction", slog.String("linked_id", tx.LinkedID))
		return nil, fmt.Errorf("failed to load debts: %w", err)
	}
	goals, err := s.goalRepo.ListGoals(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load goals for linked transaction", slog.String("linked_id", tx.LinkedID))
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	link := accounting.ResolveLink(tx, debts, goals)
	if link == nil {
		s.LogInfo(ctx, "Linked record not found, saving transaction alone", slog.String("linked_id", tx.LinkedID))
	}
	return link, nil
}

// saveSequentially writes the transaction first and the linked record second. A failure of the
// second write leaves the transaction stored without its contribution.
func (s *transactionService) saveSequentially(ctx context.Context, ownerID string, tx domain.Transaction, link domain.LinkUpdate) error {
	if err := s.txRepo.SaveTransaction(ctx, ownerID, tx); err != nil {
		return err
	}

	var err error
	switch {
	case link.Debt != nil:
		err = s.debtRepo.SaveDebt(ctx, ownerID, *link.Debt)
	case link.Goal != nil:
		err = s.goalRepo.SaveGoal(ctx, ownerID, *link.Goal)
	}
	if err != nil {
		s.LogError(ctx, err, "Transaction saved but linked record update failed",
			slog.String("transaction_id", tx.ID),
			slog.String("collection", string(link.Collection)),
			slog.String("linked_id", link.ID))
		s.publish(ownerID, domain.CollectionTransactions, tx.ID, domain.ChangeUpserted)
		return fmt.Errorf("failed to update linked %s %s: %w", link.Collection, link.ID, err)
	}
	return nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, ownerID string, id string) error {
	if err := s.txRepo.DeleteTransaction(ctx, ownerID, id); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", id))
		return fmt.Errorf("failed to delete transaction %s: %w", id, err)
	}
	s.publish(ownerID, domain.CollectionTransactions, id, domain.ChangeDeleted)
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", id))
	return nil
}
