package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CharityStatus tracks how much of an obligation has been settled.
type CharityStatus string

const (
	CharityPending CharityStatus = "pending"
	CharityPartial CharityStatus = "partial"
	CharityPaid    CharityStatus = "paid"
)

// Charity is a charitable obligation. Rows linked to an income are created
// automatically (6% accrual) and cannot be deleted directly; manual rows can.
// AmountPaid only ever grows, through the payment protocol.
type Charity struct {
	CharityID       string          `json:"charityID"` // Primary Key (UUID)
	UserID          string          `json:"userID"`
	AmountRequired  decimal.Decimal `json:"amountRequired"`
	AmountPaid      decimal.Decimal `json:"amountPaid"`
	AmountRemaining decimal.Decimal `json:"amountRemaining"` // Generated column, read-only
	Status          CharityStatus   `json:"status"`
	IncomeID        *string         `json:"incomeID,omitempty"` // Set for auto-created rows
	Description     string          `json:"description"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	AuditFields
}

// AutoCreated reports whether this obligation was accrued from an income.
func (c Charity) AutoCreated() bool {
	return c.IncomeID != nil
}
