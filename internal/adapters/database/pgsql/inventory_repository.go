package pgsql

import (
	"context"
	"fmt"

	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
	portsrepo "github.com/biztrackr/biz_tracker_app/internal/core/ports/repositories"
	"github.com/biztrackr/biz_tracker_app/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInventoryRepository struct {
	db *pgxpool.Pool
}

func NewInventoryRepository(db *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{db: db}
}

var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

func (r *PgxInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	query := `
        INSERT INTO inventory (row_id, user_id, item_id, item_name, quantity, quantity_threshold, price, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		item.RowID,
		item.OwnerID,
		item.ItemID,
		item.ItemName,
		item.Quantity,
		item.QuantityThreshold,
		item.Price,
		item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save inventory item: %w", err)
	}
	return nil
}

func (r *PgxInventoryRepository) FindItemsByOwner(ctx context.Context, ownerID string) ([]domain.InventoryItem, error) {
	query := `
        SELECT row_id, user_id, item_id, item_name, quantity, quantity_threshold, price, created_at
        FROM inventory
        WHERE user_id = $1
        ORDER BY created_at;
    `
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		var m models.InventoryItem
		err := rows.Scan(
			&m.RowID,
			&m.OwnerID,
			&m.ItemID,
			&m.ItemName,
			&m.Quantity,
			&m.QuantityThreshold,
			&m.Price,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		items = append(items, domain.InventoryItem{
			RowID:             m.RowID,
			OwnerID:           m.OwnerID,
			ItemID:            m.ItemID,
			ItemName:          m.ItemName,
			Quantity:          m.Quantity,
			QuantityThreshold: m.QuantityThreshold,
			Price:             m.Price,
			CreatedAt:         m.CreatedAt,
		})
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating inventory rows: %w", rows.Err())
	}
	return items, nil
}
