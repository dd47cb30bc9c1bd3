package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType names the bookkeeping event that produced a ledger row.
type TransactionType string

const (
	TxnIncome         TransactionType = "income"
	TxnExpense        TransactionType = "expense"
	TxnPurchase       TransactionType = "purchase"
	TxnSale           TransactionType = "sale"
	TxnCharityPayment TransactionType = "charity_payment"
	TxnLoanPayment    TransactionType = "loan_payment"
	TxnTransfer       TransactionType = "transfer"
)

// Transaction is one row of the append-only audit ledger. Every mutating
// bookkeeping event writes one (transfers write two: a debit leg and a
// credit leg, whose amounts net to zero).
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	UserID          string          `json:"userID"`
	Type            TransactionType `json:"type"`
	ReferenceTable  string          `json:"referenceTable"`
	ReferenceID     string          `json:"referenceID"`
	Amount          decimal.Decimal `json:"amount"` // Signed for transfer legs
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transactionDate"`
	AuditFields
}
