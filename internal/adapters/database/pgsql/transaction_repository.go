package pgsql

import (
	"context"
	"fmt"

	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
	portsrepo "github.com/biztrackr/biz_tracker_app/internal/core/ports/repositories"
	"github.com/biztrackr/biz_tracker_app/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{db: db}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
        INSERT INTO transactions (transaction_id, user_id, business_sector, transaction_type, amount, created_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		txn.TransactionID,
		txn.OwnerID,
		string(txn.BusinessSector),
		txn.TransactionType,
		txn.Amount,
		txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionsByOwner(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	query := `
        SELECT transaction_id, user_id, business_sector, transaction_type, amount, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at;
    `
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		var m models.Transaction
		err := rows.Scan(
			&m.TransactionID,
			&m.OwnerID,
			&m.BusinessSector,
			&m.TransactionType,
			&m.Amount,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, domain.Transaction{
			TransactionID:   m.TransactionID,
			OwnerID:         m.OwnerID,
			BusinessSector:  domain.BusinessSector(m.BusinessSector),
			TransactionType: m.TransactionType,
			Amount:          m.Amount,
			CreatedAt:       m.CreatedAt,
		})
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return txns, nil
}
