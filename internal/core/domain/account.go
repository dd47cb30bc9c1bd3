package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines where the money in an account lives.
type AccountType string

const (
	AccountCash       AccountType = "cash"
	AccountBank       AccountType = "bank"
	AccountSavings    AccountType = "savings"
	AccountInvestment AccountType = "investment"
)

// Account represents a money store. Balance changes by direct edit or by the
// transfer protocol (paired debit/credit). An account with a non-zero
// balance cannot be deleted.
type Account struct {
	AccountID   string          `json:"accountID"` // Primary Key (UUID)
	UserID      string          `json:"userID"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
	Description string          `json:"description"`
	AuditFields
}
