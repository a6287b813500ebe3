package dto

import (
	"time"

	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest carries the transaction form fields.
type CreateTransactionRequest struct {
	TransactionType string          `json:"transactionType" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
}

// TransactionResponse is the public shape of a transaction.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	BusinessSector  string          `json:"businessSector"`
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// TransactionTypesResponse lists the catalog for the caller's sector.
type TransactionTypesResponse struct {
	TransactionTypes []string `json:"transactionTypes"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		BusinessSector:  string(t.BusinessSector),
		TransactionType: t.TransactionType,
		Amount:          t.Amount,
		CreatedAt:       t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return out
}
