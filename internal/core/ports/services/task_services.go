package services

import (
	"context"

	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
	"github.com/biztrackr/biz_tracker_app/internal/dto"
)

// TaskSvcFacade defines operations on the caller's tasks.
type TaskSvcFacade interface {
	// CreateTask records a new task for the owner. Resubmitting identical
	// fields creates a second, distinct task; there is no deduplication.
	CreateTask(ctx context.Context, ownerID string, req dto.CreateTaskRequest) (*domain.Task, error)

	// ListTasks returns the owner's tasks.
	ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error)

	// WatchTasks opens an owner-scoped live query. The returned channel first
	// carries a full snapshot, then a complete replacement snapshot after every
	// create into the collection. It is closed when ctx is cancelled.
	WatchTasks(ctx context.Context, ownerID string) (<-chan []domain.Task, error)
}
