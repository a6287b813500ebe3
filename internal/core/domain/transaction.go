package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one entry in a user's append-only business transaction log.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	OwnerID         string          `json:"userID"`
	BusinessSector  BusinessSector  `json:"businessSector"` // copied from the owner's profile at write time
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// serviceTransactionTypes is the catalog offered to Services-sector users.
var serviceTransactionTypes = []string{
	"Service Booking",
	"Service Completion",
	"Service Payment",
	"Service Quotation",
	"Service Feedback",
	"Recurring Service Setup",
	"Invoice Generation",
}

// productTransactionTypes is the catalog offered to Products-sector users.
var productTransactionTypes = []string{
	"Product Order",
	"Product Delivery",
	"Product Stock Update",
	"Product Payment",
	"Return/Refund",
	"Discount Application",
	"Purchase Order Generation",
}

// TransactionTypesForSector returns the transaction types a user of the given
// sector may record. An unrecognized sector yields an empty catalog.
func TransactionTypesForSector(sector BusinessSector) []string {
	switch sector {
	case SectorServices:
		return append([]string(nil), serviceTransactionTypes...)
	case SectorProducts:
		return append([]string(nil), productTransactionTypes...)
	default:
		return nil
	}
}
