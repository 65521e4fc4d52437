package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/hisab_manager/internal/apperrors"
	"github.com/SscSPs/hisab_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/hisab_manager/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxGoalRepository struct {
	BaseRepository
}

func newPgxGoalRepository(pool *pgxpool.Pool) *PgxGoalRepository {
	return &PgxGoalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

const goalSelectQuery = `SELECT id, name, target, current_amount, target_date FROM goals `

func scanGoal(row pgx.Row) (domain.Goal, error) {
	var g domain.Goal
	err := row.Scan(&g.ID, &g.Name, &g.Target, &g.Current, &g.TargetDate)
	return g, err
}

func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, ownerID string, id string) (*domain.Goal, error) {
	g, err := scanGoal(r.Pool.QueryRow(ctx, goalSelectQuery+"WHERE owner_id = $1 AND id = $2", ownerID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal %s: %w", id, err)
	}
	return &g, nil
}

func (r *PgxGoalRepository) ListGoals(ctx context.Context, ownerID string) ([]domain.Goal, error) {
	rows, err := r.Pool.Query(ctx, goalSelectQuery+"WHERE owner_id = $1 ORDER BY seq", ownerID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query goals", err)
	}
	defer rows.Close()

	goals := []domain.Goal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goal rows: %w", err)
	}
	return goals, nil
}

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, ownerID string, goal domain.Goal) error {
	return upsertGoal(ctx, r.Pool, ownerID, goal)
}

func upsertGoal(ctx context.Context, q querier, ownerID string, g domain.Goal) error {
	query := `
		INSERT INTO goals (owner_id, id, name, target, current_amount, target_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (owner_id, id) DO UPDATE SET
			name = EXCLUDED.name,
			target = EXCLUDED.target,
			current_amount = EXCLUDED.current_amount,
			target_date = EXCLUDED.target_date,
			updated_at = now();
	`
	if _, err := q.Exec(ctx, query, ownerID, g.ID, g.Name, g.Target, g.Current, g.TargetDate); err != nil {
		return writeError(err, "failed to save goal "+g.ID)
	}
	return nil
}

func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, ownerID string, id string) error {
	return deleteByID(ctx, r.Pool, "goals", ownerID, id)
}
