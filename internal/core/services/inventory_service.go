package services

import (
	"context"
	"fmt"
	"time"

	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
	portsrepo "github.com/biztrackr/biz_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/biztrackr/biz_tracker_app/internal/core/ports/services"
	"github.com/biztrackr/biz_tracker_app/internal/dto"
	"github.com/google/uuid"
)

type inventoryService struct {
	invRepo portsrepo.InventoryRepositoryFacade
	feed    *Changefeed
}

// NewInventoryService creates the inventory service.
func NewInventoryService(invRepo portsrepo.InventoryRepositoryFacade, feed *Changefeed) portssvc.InventorySvcFacade {
	return &inventoryService{invRepo: invRepo, feed: feed}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

func (s *inventoryService) CreateItem(ctx context.Context, ownerID string, req dto.CreateInventoryItemRequest) (*domain.InventoryItem, error) {
	item := domain.InventoryItem{
		RowID:    uuid.NewString(),
		OwnerID:  ownerID,
		ItemID:   req.ItemID,
		ItemName: req.ItemName,
		Quantity: req.Quantity,
		// The threshold mirrors the initial quantity; the submitted value is
		// ignored. See the note on domain.InventoryItem.
		QuantityThreshold: req.Quantity,
		Price:             req.Price,
		CreatedAt:         time.Now(),
	}

	if err := s.invRepo.SaveItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}
	s.feed.Publish(CollectionInventory, ownerID)
	return &item, nil
}

func (s *inventoryService) ListItems(ctx context.Context, ownerID string) ([]domain.InventoryItem, error) {
	items, err := s.invRepo.FindItemsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	return items, nil
}

func (s *inventoryService) WatchItems(ctx context.Context, ownerID string) (<-chan []domain.InventoryItem, error) {
	return watchCollection(ctx, s.feed, CollectionInventory, ownerID, s.invRepo.FindItemsByOwner)
}
