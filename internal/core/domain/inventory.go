package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is a stock record in a user's inventory. Items are append-only.
//
// QuantityThreshold is persisted equal to Quantity at creation, ignoring the
// user-submitted threshold. This mirrors the shipped behavior of the inventory
// form and is pinned by tests; changing it is a product decision.
type InventoryItem struct {
	RowID             string          `json:"id"` // Primary Key (UUID)
	OwnerID           string          `json:"userID"`
	ItemID            string          `json:"itemID"` // user-chosen stock code
	ItemName          string          `json:"itemName"`
	Quantity          int             `json:"quantity"`
	QuantityThreshold int             `json:"quantityThreshold"`
	Price             decimal.Decimal `json:"price"`
	CreatedAt         time.Time       `json:"createdAt"`
}
