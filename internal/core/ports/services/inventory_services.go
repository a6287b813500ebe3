package services

import (
	"context"

	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
	"github.com/biztrackr/biz_tracker_app/internal/dto"
)

// InventorySvcFacade defines operations on the caller's inventory.
type InventorySvcFacade interface {
	// CreateItem records a new inventory item for the owner.
	CreateItem(ctx context.Context, ownerID string, req dto.CreateInventoryItemRequest) (*domain.InventoryItem, error)

	// ListItems returns the owner's inventory items.
	ListItems(ctx context.Context, ownerID string) ([]domain.InventoryItem, error)

	// WatchItems opens an owner-scoped live query (see TaskSvcFacade.WatchTasks).
	WatchItems(ctx context.Context, ownerID string) (<-chan []domain.InventoryItem, error)
}
