package repositories

import (
	"context"

	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
)

// TaskRepositoryFacade defines the persistence operations for tasks.
// Tasks are append-only: there are deliberately no update or delete methods.
type TaskRepositoryFacade interface {
	SaveTask(ctx context.Context, task domain.Task) error
	FindTasksByOwner(ctx context.Context, ownerID string) ([]domain.Task, error)
}
