package services

import (
	portsrepo "github.com/biztrackr/biz_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/biztrackr/biz_tracker_app/internal/core/ports/services"
	portstorage "github.com/biztrackr/biz_tracker_app/internal/core/ports/storage"
	"github.com/biztrackr/biz_tracker_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, blobs portstorage.BlobStore) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// One broker backs every live query; entity services publish into it.
	feed := NewChangefeed()

	container.User = NewUserService(repos.UserRepo)
	container.Task = NewTaskService(repos.TaskRepo, feed)
	container.Transaction = NewTransactionService(repos.TransactionRepo, container.User, feed)
	container.Inventory = NewInventoryService(repos.InventoryRepo, feed)
	container.Upload = NewUploadService(blobs)
	container.Reporting = NewReportingService(container.User, repos.TaskRepo, repos.TransactionRepo)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
