package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Task is the tasks table row.
type Task struct {
	TaskID    string          `db:"task_id"`
	OwnerID   string          `db:"user_id"`
	Name      string          `db:"name"`
	Due       time.Time       `db:"due"`
	Budget    decimal.Decimal `db:"budget"`
	Spent     decimal.Decimal `db:"spent"`
	Target    decimal.Decimal `db:"target"`
	Status    int             `db:"status"`
	CreatedAt time.Time       `db:"created_at"`
}
