package dto

import (
	"time"

	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	"github.com/bizbooks/bookkeeping_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// Expense and Purchase share one request/response shape; the route decides
// which table the record lands in.

// CreateSpendRequest defines the data needed to record an expense or purchase.
type CreateSpendRequest struct {
	Amount        float64 `json:"amount" binding:"required,gte=0.01"`
	Category      string  `json:"category" binding:"required,max=100"`
	PaymentMethod string  `json:"paymentMethod" binding:"required,oneof=cash card bank_transfer other"`
	Date          string  `json:"date" binding:"required,datetime=2006-01-02"`
	ReceiptPath   *string `json:"receiptPath" binding:"omitempty,max=500"`
	Description   string  `json:"description" binding:"max=500"`
}

// UpdateSpendRequest defines the fields allowed on an expense/purchase update.
type UpdateSpendRequest struct {
	Amount        *float64 `json:"amount" binding:"omitempty,gte=0.01"`
	Category      *string  `json:"category" binding:"omitempty,max=100"`
	PaymentMethod *string  `json:"paymentMethod" binding:"omitempty,oneof=cash card bank_transfer other"`
	Date          *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	ReceiptPath   *string  `json:"receiptPath" binding:"omitempty,max=500"`
	Description   *string  `json:"description" binding:"omitempty,max=500"`
}

// ListSpendParams are the list filters and pagination controls.
type ListSpendParams struct {
	Page          int    `form:"page,default=1"`
	Limit         int    `form:"limit,default=10"`
	Category      string `form:"category"`
	PaymentMethod string `form:"paymentMethod" binding:"omitempty,oneof=cash card bank_transfer other"`
	From          string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To            string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// SpendResponse is the wire view of an expense or purchase row.
type SpendResponse struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"paymentMethod"`
	Date          string          `json:"date"`
	ReceiptPath   *string         `json:"receiptPath,omitempty"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ListExpensesResponse wraps a page of expenses.
type ListExpensesResponse struct {
	Expenses   []SpendResponse `json:"expenses"`
	Pagination pagination.Page `json:"pagination"`
}

// ListPurchasesResponse wraps a page of purchases.
type ListPurchasesResponse struct {
	Purchases  []SpendResponse `json:"purchases"`
	Pagination pagination.Page `json:"pagination"`
}

// ToExpenseResponse converts a domain.Expense to its wire view.
func ToExpenseResponse(e *domain.Expense) SpendResponse {
	return SpendResponse{
		ID:            e.ExpenseID,
		Amount:        e.Amount,
		Category:      e.Category,
		PaymentMethod: string(e.PaymentMethod),
		Date:          e.SpendDate.Format("2006-01-02"),
		ReceiptPath:   e.ReceiptPath,
		Description:   e.Description,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// ToPurchaseResponse converts a domain.Purchase to its wire view.
func ToPurchaseResponse(p *domain.Purchase) SpendResponse {
	return SpendResponse{
		ID:            p.PurchaseID,
		Amount:        p.Amount,
		Category:      p.Category,
		PaymentMethod: string(p.PaymentMethod),
		Date:          p.SpendDate.Format("2006-01-02"),
		ReceiptPath:   p.ReceiptPath,
		Description:   p.Description,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
