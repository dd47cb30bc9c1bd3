package dto

import (
	"time"

	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	"github.com/bizbooks/bookkeeping_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// CreateCharityRequest defines a manually created charitable obligation.
// Auto-created rows come from the income unit-of-work, never from this.
type CreateCharityRequest struct {
	AmountRequired float64 `json:"amountRequired" binding:"required,gte=0.01"`
	Description    string  `json:"description" binding:"max=500"`
}

// UpdateCharityRequest defines the fields allowed on a charity update.
// Amounts and status are owned by the payment protocol.
type UpdateCharityRequest struct {
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// CharityPaymentRequest records a payment against an obligation.
type CharityPaymentRequest struct {
	PaymentAmount float64 `json:"payment_amount" binding:"required,gte=0.01"`
	PaymentDate   string  `json:"payment_date" binding:"required,datetime=2006-01-02"`
}

// ListCharityParams are the list filters and pagination controls.
type ListCharityParams struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
	Status string `form:"status" binding:"omitempty,oneof=pending partial paid"`
}

// CharityResponse is the wire view of a charity row.
type CharityResponse struct {
	CharityID       string          `json:"charityID"`
	AmountRequired  decimal.Decimal `json:"amountRequired"`
	AmountPaid      decimal.Decimal `json:"amountPaid"`
	AmountRemaining decimal.Decimal `json:"amountRemaining"`
	Status          string          `json:"status"`
	IncomeID        *string         `json:"incomeID,omitempty"`
	Description     string          `json:"description"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ListCharityResponse wraps a page of charity rows.
type ListCharityResponse struct {
	Charity    []CharityResponse `json:"charity"`
	Pagination pagination.Page   `json:"pagination"`
}

// ToCharityResponse converts a domain.Charity to its wire view.
func ToCharityResponse(c *domain.Charity) CharityResponse {
	return CharityResponse{
		CharityID:       c.CharityID,
		AmountRequired:  c.AmountRequired,
		AmountPaid:      c.AmountPaid,
		AmountRemaining: c.AmountRemaining,
		Status:          string(c.Status),
		IncomeID:        c.IncomeID,
		Description:     c.Description,
		PaidAt:          c.PaidAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// ToListCharityResponse converts a page of domain charity rows.
func ToListCharityResponse(items []domain.Charity, page pagination.Page) ListCharityResponse {
	res := make([]CharityResponse, len(items))
	for i := range items {
		res[i] = ToCharityResponse(&items[i])
	}
	return ListCharityResponse{Charity: res, Pagination: page}
}
