package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/biztrackr/biz_tracker_app/internal/apperrors"
	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
	portsrepo "github.com/biztrackr/biz_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/biztrackr/biz_tracker_app/internal/core/ports/services"
	"github.com/biztrackr/biz_tracker_app/internal/dto"
)

type taskService struct {
	taskRepo portsrepo.TaskRepositoryFacade
	feed     *Changefeed
}

// NewTaskService creates the task service.
func NewTaskService(taskRepo portsrepo.TaskRepositoryFacade, feed *Changefeed) portssvc.TaskSvcFacade {
	return &taskService{taskRepo: taskRepo, feed: feed}
}

var _ portssvc.TaskSvcFacade = (*taskService)(nil)

func (s *taskService) CreateTask(ctx context.Context, ownerID string, req dto.CreateTaskRequest) (*domain.Task, error) {
	due, err := time.Parse("2006-01-02", req.Due)
	if err != nil {
		return nil, fmt.Errorf("due date must be YYYY-MM-DD: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	task := domain.Task{
		// Task ids keep the client-generated shape of the original records:
		// the creation timestamp in unix milliseconds, as a string.
		TaskID:    strconv.FormatInt(now.UnixMilli(), 10),
		OwnerID:   ownerID,
		Name:      req.Name,
		Due:       due,
		Budget:    req.Budget,
		Spent:     req.Spent,
		Target:    req.Target,
		Status:    req.Status,
		CreatedAt: now,
	}

	if err := s.taskRepo.SaveTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	s.feed.Publish(CollectionTasks, ownerID)
	return &task, nil
}

func (s *taskService) ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	tasks, err := s.taskRepo.FindTasksByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *taskService) WatchTasks(ctx context.Context, ownerID string) (<-chan []domain.Task, error) {
	return watchCollection(ctx, s.feed, CollectionTasks, ownerID, s.taskRepo.FindTasksByOwner)
}
