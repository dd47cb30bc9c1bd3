package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates how an expense or purchase was paid.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCard         PaymentMethod = "card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentOther        PaymentMethod = "other"
)

// Expense represents non-resale spend.
type Expense struct {
	ExpenseID     string          `json:"expenseID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"` // Category name, not id
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	SpendDate     time.Time       `json:"spendDate"`
	ReceiptPath   *string         `json:"receiptPath,omitempty"`
	Description   string          `json:"description"`
	AuditFields
}

// Purchase represents resale inventory spend. Structurally identical to
// Expense but kept as a separate entity: it records a distinct bookkeeping
// intent and Sales may reference it.
type Purchase struct {
	PurchaseID    string          `json:"purchaseID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	SpendDate     time.Time       `json:"spendDate"`
	ReceiptPath   *string         `json:"receiptPath,omitempty"`
	Description   string          `json:"description"`
	AuditFields
}
