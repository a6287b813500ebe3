package dto

import "github.com/shopspring/decimal"

// DashboardResponse carries the figures the dashboard screen renders.
type DashboardResponse struct {
	UserName         string          `json:"userName"`
	BusinessSector   string          `json:"businessSector"`
	Tasks            []TaskResponse  `json:"tasks"`
	TaskCount        int             `json:"taskCount"`
	TotalBudget      decimal.Decimal `json:"totalBudget"`
	TotalSpent       decimal.Decimal `json:"totalSpent"`
	TransactionTotal decimal.Decimal `json:"transactionTotal"`
}
