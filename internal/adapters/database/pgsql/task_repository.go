package pgsql

import (
	"context"
	"fmt"

	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
	portsrepo "github.com/biztrackr/biz_tracker_app/internal/core/ports/repositories"
	"github.com/biztrackr/biz_tracker_app/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) portsrepo.TaskRepositoryFacade {
	return &PgxTaskRepository{db: db}
}

var _ portsrepo.TaskRepositoryFacade = (*PgxTaskRepository)(nil)

func toModelTask(d domain.Task) models.Task {
	return models.Task{
		TaskID:    d.TaskID,
		OwnerID:   d.OwnerID,
		Name:      d.Name,
		Due:       d.Due,
		Budget:    d.Budget,
		Spent:     d.Spent,
		Target:    d.Target,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
	}
}

func toDomainTask(m models.Task) domain.Task {
	return domain.Task{
		TaskID:    m.TaskID,
		OwnerID:   m.OwnerID,
		Name:      m.Name,
		Due:       m.Due,
		Budget:    m.Budget,
		Spent:     m.Spent,
		Target:    m.Target,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}

func (r *PgxTaskRepository) SaveTask(ctx context.Context, task domain.Task) error {
	m := toModelTask(task)
	query := `
        INSERT INTO tasks (task_id, user_id, name, due, budget, spent, target, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		m.TaskID,
		m.OwnerID,
		m.Name,
		m.Due,
		m.Budget,
		m.Spent,
		m.Target,
		m.Status,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

func (r *PgxTaskRepository) FindTasksByOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	// Ordered by created_at only so consecutive snapshots are stable; the API
	// promises no ordering.
	query := `
        SELECT task_id, user_id, name, due, budget, spent, target, status, created_at
        FROM tasks
        WHERE user_id = $1
        ORDER BY created_at;
    `
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var m models.Task
		err := rows.Scan(
			&m.TaskID,
			&m.OwnerID,
			&m.Name,
			&m.Due,
			&m.Budget,
			&m.Spent,
			&m.Target,
			&m.Status,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, toDomainTask(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", rows.Err())
	}
	return tasks, nil
}
