package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the transactions table row.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	OwnerID         string          `db:"user_id"`
	BusinessSector  string          `db:"business_sector"`
	TransactionType string          `db:"transaction_type"`
	Amount          decimal.Decimal `db:"amount"`
	CreatedAt       time.Time       `db:"created_at"`
}
