package dto

import (
	"time"

	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest carries the inventory form fields.
// QuantityThreshold is accepted but not honored at persistence time; see the
// note on domain.InventoryItem.
type CreateInventoryItemRequest struct {
	ItemID            string          `json:"itemID" binding:"required"`
	ItemName          string          `json:"itemName" binding:"required"`
	Quantity          int             `json:"quantity" binding:"required"`
	QuantityThreshold int             `json:"quantityThreshold"`
	Price             decimal.Decimal `json:"price" binding:"required"`
}

// InventoryItemResponse is the public shape of an inventory item.
type InventoryItemResponse struct {
	ID                string          `json:"id"`
	ItemID            string          `json:"itemID"`
	ItemName          string          `json:"itemName"`
	Quantity          int             `json:"quantity"`
	QuantityThreshold int             `json:"quantityThreshold"`
	Price             decimal.Decimal `json:"price"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ToInventoryItemResponse converts a domain.InventoryItem to its response DTO.
func ToInventoryItemResponse(it *domain.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:                it.RowID,
		ItemID:            it.ItemID,
		ItemName:          it.ItemName,
		Quantity:          it.Quantity,
		QuantityThreshold: it.QuantityThreshold,
		Price:             it.Price,
		CreatedAt:         it.CreatedAt,
	}
}

// ToInventoryItemResponses converts a slice of inventory items.
func ToInventoryItemResponses(items []domain.InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, len(items))
	for i := range items {
		out[i] = ToInventoryItemResponse(&items[i])
	}
	return out
}
