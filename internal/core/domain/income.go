package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income represents a single income record. CharityRequired is computed by
// the storage layer (6% of amount) and is never written by application code.
type Income struct {
	IncomeID        string          `json:"incomeID"` // Primary Key (UUID)
	UserID          string          `json:"userID"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"` // Category name, not id
	Source          string          `json:"source"`
	IncomeDate      time.Time       `json:"incomeDate"`
	CharityRequired decimal.Decimal `json:"charityRequired"` // Generated column, read-only
	Description     string          `json:"description"`
	AuditFields
}
