package repositories

import (
	"context"

	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
)

// TransactionRepositoryFacade defines the persistence operations for the
// append-only transaction log.
type TransactionRepositoryFacade interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionsByOwner(ctx context.Context, ownerID string) ([]domain.Transaction, error)
}
