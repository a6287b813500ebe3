package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Task is a planner entry with budget tracking figures. Tasks are append-only:
// created once via the task form and never updated or deleted in-app.
type Task struct {
	TaskID    string          `json:"id"` // client-style id: unix-milli timestamp string
	OwnerID   string          `json:"userID"`
	Name      string          `json:"name"`
	Due       time.Time       `json:"due"`
	Budget    decimal.Decimal `json:"budget"`
	Spent     decimal.Decimal `json:"spent"`
	Target    decimal.Decimal `json:"target"`
	Status    int             `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}
