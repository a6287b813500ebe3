package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is the inventory table row.
type InventoryItem struct {
	RowID             string          `db:"row_id"`
	OwnerID           string          `db:"user_id"`
	ItemID            string          `db:"item_id"`
	ItemName          string          `db:"item_name"`
	Quantity          int             `db:"quantity"`
	QuantityThreshold int             `db:"quantity_threshold"`
	Price             decimal.Decimal `db:"price"`
	CreatedAt         time.Time       `db:"created_at"`
}
