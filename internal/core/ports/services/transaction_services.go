package services

import (
	"context"

	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
	"github.com/biztrackr/biz_tracker_app/internal/dto"
)

// TransactionSvcFacade defines operations on the caller's transaction log.
type TransactionSvcFacade interface {
	// CreateTransaction appends a transaction for the owner. The business
	// sector is copied from the owner's profile and the transaction type must
	// belong to that sector's catalog.
	CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// ListTransactions returns the owner's transactions.
	ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error)

	// ListTransactionTypes returns the catalog the owner's sector allows.
	ListTransactionTypes(ctx context.Context, ownerID string) ([]string, error)

	// WatchTransactions opens an owner-scoped live query (see TaskSvcFacade.WatchTasks).
	WatchTransactions(ctx context.Context, ownerID string) (<-chan []domain.Transaction, error)
}
