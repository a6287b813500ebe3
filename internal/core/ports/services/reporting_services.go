package services

import (
	"context"

	"github.com/biztrackr/biz_tracker_app/internal/dto"
)

// ReportingSvcFacade assembles the dashboard figures for a user.
type ReportingSvcFacade interface {
	// GetDashboard returns the owner's profile name, task list and aggregate
	// budget/spend/transaction figures.
	GetDashboard(ctx context.Context, ownerID string) (*dto.DashboardResponse, error)
}
