package services

import (
	"context"
	"fmt"

	portsrepo "github.com/biztrackr/biz_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/biztrackr/biz_tracker_app/internal/core/ports/services"
	"github.com/biztrackr/biz_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
)

type reportingService struct {
	userReader portssvc.UserReaderSvc
	taskRepo   portsrepo.TaskRepositoryFacade
	txnRepo    portsrepo.TransactionRepositoryFacade
}

// NewReportingService creates the dashboard reporting service.
func NewReportingService(userReader portssvc.UserReaderSvc, taskRepo portsrepo.TaskRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{userReader: userReader, taskRepo: taskRepo, txnRepo: txnRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetDashboard(ctx context.Context, ownerID string) (*dto.DashboardResponse, error) {
	user, err := s.userReader.GetUserByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owner profile: %w", err)
	}

	tasks, err := s.taskRepo.FindTasksByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks for dashboard: %w", err)
	}

	txns, err := s.txnRepo.FindTransactionsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for dashboard: %w", err)
	}

	totalBudget := decimal.Zero
	totalSpent := decimal.Zero
	for _, t := range tasks {
		totalBudget = totalBudget.Add(t.Budget)
		totalSpent = totalSpent.Add(t.Spent)
	}

	txnTotal := decimal.Zero
	for _, t := range txns {
		txnTotal = txnTotal.Add(t.Amount)
	}

	return &dto.DashboardResponse{
		UserName:         user.Name,
		BusinessSector:   string(user.BusinessSector),
		Tasks:            dto.ToTaskResponses(tasks),
		TaskCount:        len(tasks),
		TotalBudget:      totalBudget,
		TotalSpent:       totalSpent,
		TransactionTotal: txnTotal,
	}, nil
}
