package dto

import (
	"time"

	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	"github.com/bizbooks/bookkeeping_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// CreateLoanRequest defines the data needed to record a loan. The balance
// starts at the principal.
type CreateLoanRequest struct {
	LenderName   string   `json:"lenderName" binding:"required,max=255"`
	Principal    float64  `json:"principalAmount" binding:"required,gte=0.01"`
	InterestRate *float64 `json:"interestRate" binding:"omitempty,gte=0"`
	StartDate    string   `json:"startDate" binding:"required,datetime=2006-01-02"`
	DueDate      *string  `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Direction    string   `json:"direction" binding:"required,oneof=borrowed lent"`
	Description  string   `json:"description" binding:"max=500"`
}

// UpdateLoanRequest defines the fields allowed on a loan update. Principal is
// immutable; balance and the paid status are owned by the payment protocol.
// Status may be set to defaulted (or back to active) by hand.
type UpdateLoanRequest struct {
	LenderName   *string  `json:"lenderName" binding:"omitempty,max=255"`
	InterestRate *float64 `json:"interestRate" binding:"omitempty,gte=0"`
	DueDate      *string  `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Status       *string  `json:"status" binding:"omitempty,oneof=active defaulted"`
	Description  *string  `json:"description" binding:"omitempty,max=500"`
}

// LoanPaymentRequest records a payment against an active loan.
type LoanPaymentRequest struct {
	PaymentAmount float64 `json:"payment_amount" binding:"required,gte=0.01"`
	PaymentDate   string  `json:"payment_date" binding:"required,datetime=2006-01-02"`
}

// ListLoansParams are the list filters and pagination controls.
type ListLoansParams struct {
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
	Status    string `form:"status" binding:"omitempty,oneof=active paid defaulted"`
	Direction string `form:"direction" binding:"omitempty,oneof=borrowed lent"`
}

// LoanResponse is the wire view of a loan row.
type LoanResponse struct {
	LoanID          string           `json:"loanID"`
	LenderName      string           `json:"lenderName"`
	PrincipalAmount decimal.Decimal  `json:"principalAmount"`
	CurrentBalance  decimal.Decimal  `json:"currentBalance"`
	InterestRate    *decimal.Decimal `json:"interestRate,omitempty"`
	StartDate       string           `json:"startDate"`
	DueDate         *string          `json:"dueDate,omitempty"`
	Status          string           `json:"status"`
	Direction       string           `json:"direction"`
	Description     string           `json:"description"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// ListLoansResponse wraps a page of loans.
type ListLoansResponse struct {
	Loans      []LoanResponse  `json:"loans"`
	Pagination pagination.Page `json:"pagination"`
}

// ToLoanResponse converts a domain.Loan to its wire view.
func ToLoanResponse(l *domain.Loan) LoanResponse {
	resp := LoanResponse{
		LoanID:          l.LoanID,
		LenderName:      l.LenderName,
		PrincipalAmount: l.PrincipalAmount,
		CurrentBalance:  l.CurrentBalance,
		InterestRate:    l.InterestRate,
		StartDate:       l.StartDate.Format("2006-01-02"),
		Status:          string(l.Status),
		Direction:       string(l.Direction),
		Description:     l.Description,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
	if l.DueDate != nil {
		due := l.DueDate.Format("2006-01-02")
		resp.DueDate = &due
	}
	return resp
}

// ToListLoansResponse converts a page of domain loans.
func ToListLoansResponse(items []domain.Loan, page pagination.Page) ListLoansResponse {
	res := make([]LoanResponse, len(items))
	for i := range items {
		res[i] = ToLoanResponse(&items[i])
	}
	return ListLoansResponse{Loans: res, Pagination: page}
}
