package dto

import (
	"time"

	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTaskRequest carries the task form fields. Numeric fields bind
// strictly; malformed numbers are rejected at the boundary rather than
// propagating as garbage values.
type CreateTaskRequest struct {
	Name   string          `json:"name" binding:"required"`
	Due    string          `json:"due" binding:"required"` // YYYY-MM-DD
	Budget decimal.Decimal `json:"budget"`
	Spent  decimal.Decimal `json:"spent"`
	Target decimal.Decimal `json:"target"`
	Status int             `json:"status"`
}

// TaskResponse is the public shape of a task.
type TaskResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Due       string          `json:"due"`
	Budget    decimal.Decimal `json:"budget"`
	Spent     decimal.Decimal `json:"spent"`
	Target    decimal.Decimal `json:"target"`
	Status    int             `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToTaskResponse converts a domain.Task to its response DTO.
func ToTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:        t.TaskID,
		Name:      t.Name,
		Due:       t.Due.Format("2006-01-02"),
		Budget:    t.Budget,
		Spent:     t.Spent,
		Target:    t.Target,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
	}
}

// ToTaskResponses converts a slice of tasks.
func ToTaskResponses(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i := range tasks {
		out[i] = ToTaskResponse(&tasks[i])
	}
	return out
}
