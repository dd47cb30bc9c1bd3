package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale represents a resale event. Profit and ProfitPercentage are generated
// columns; ProfitPercentage is defined as 0 for a zero-cost sale so reads
// never divide by zero.
type Sale struct {
	SaleID           string          `json:"saleID"` // Primary Key (UUID)
	UserID           string          `json:"userID"`
	Amount           decimal.Decimal `json:"amount"` // Cost basis
	SellingPrice     decimal.Decimal `json:"sellingPrice"`
	Profit           decimal.Decimal `json:"profit"`           // Generated column, read-only
	ProfitPercentage decimal.Decimal `json:"profitPercentage"` // Generated column, read-only
	PurchaseID       *string         `json:"purchaseID,omitempty"`
	ItemName         string          `json:"itemName"`
	SaleDate         time.Time       `json:"saleDate"`
	Description      string          `json:"description"`
	AuditFields
}
