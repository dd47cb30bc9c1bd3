package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus tracks a loan's lifecycle. A loan becomes paid automatically
// when a payment drives its balance to zero or below.
type LoanStatus string

const (
	LoanActive    LoanStatus = "active"
	LoanPaid      LoanStatus = "paid"
	LoanDefaulted LoanStatus = "defaulted"
)

// LoanDirection distinguishes money owed from money lent out.
type LoanDirection string

const (
	LoanBorrowed LoanDirection = "borrowed"
	LoanLent     LoanDirection = "lent"
)

// Loan represents a borrowed or lent sum. PrincipalAmount is immutable after
// creation; CurrentBalance only decreases, through the payment protocol.
type Loan struct {
	LoanID          string          `json:"loanID"` // Primary Key (UUID)
	UserID          string          `json:"userID"`
	LenderName      string          `json:"lenderName"`
	PrincipalAmount decimal.Decimal `json:"principalAmount"`
	CurrentBalance  decimal.Decimal `json:"currentBalance"`
	InterestRate    *decimal.Decimal `json:"interestRate,omitempty"`
	StartDate       time.Time       `json:"startDate"`
	DueDate         *time.Time      `json:"dueDate,omitempty"`
	Status          LoanStatus      `json:"status"`
	Direction       LoanDirection   `json:"direction"`
	Description     string          `json:"description"`
	AuditFields
}
