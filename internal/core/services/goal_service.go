package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/hisab_manager/internal/apperrors"
	"github.com/SscSPs/hisab_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/hisab_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hisab_manager/internal/core/ports/services"
	"github.com/SscSPs/hisab_manager/internal/dto"
	"github.com/google/uuid"
)

type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepositoryFacade
}

// NewGoalService creates a new goal service with the provided options
func NewGoalService(repo portsrepo.GoalRepositoryFacade, options ...ServiceOption) portssvc.GoalSvcFacade {
	return &goalService{
		BaseService: newBaseService(options),
		goalRepo:    repo,
	}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) GetGoal(ctx context.Context, ownerID string, id string) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get goal %s: %w", id, err)
	}
	return goal, nil
}

func (s *goalService) ListGoals(ctx context.Context, ownerID string) ([]domain.Goal, error) {
	goals, err := s.goalRepo.ListGoals(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

func (s *goalService) SaveGoal(ctx context.Context, ownerID string, req dto.SaveGoalRequest) (*domain.Goal, error) {
	goal := req.ToDomain()
	if strings.TrimSpace(goal.Name) == "" {
		return nil, fmt.Errorf("goal name is required: %w", apperrors.ErrValidation)
	}
	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}

	if err := s.goalRepo.SaveGoal(ctx, ownerID, goal); err != nil {
		s.LogError(ctx, err, "Failed to save goal",
			slog.String("owner_id", ownerID),
			slog.String("goal_id", goal.ID))
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}
	s.publish(ownerID, domain.CollectionGoals, goal.ID, domain.ChangeUpserted)

	s.LogInfo(ctx, "Goal saved", slog.String("goal_id", goal.ID))
	return &goal, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, ownerID string, id string) error {
	if err := s.goalRepo.DeleteGoal(ctx, ownerID, id); err != nil {
		s.LogError(ctx, err, "Failed to delete goal", slog.String("goal_id", id))
		return fmt.Errorf("failed to delete goal %s: %w", id, err)
	}
	s.publish(ownerID, domain.CollectionGoals, id, domain.ChangeDeleted)
	return nil
}
