package pgsql

import (
	portsrepo "github.com/biztrackr/biz_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx-backed repositories for the service container.
func NewRepositoryProvider(db *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        NewUserRepository(db),
		TaskRepo:        NewTaskRepository(db),
		TransactionRepo: NewTransactionRepository(db),
		InventoryRepo:   NewInventoryRepository(db),
	}
}
