package repositories

import (
	"context"

	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
)

// InventoryRepositoryFacade defines the persistence operations for inventory items.
type InventoryRepositoryFacade interface {
	SaveItem(ctx context.Context, item domain.InventoryItem) error
	FindItemsByOwner(ctx context.Context, ownerID string) ([]domain.InventoryItem, error)
}
