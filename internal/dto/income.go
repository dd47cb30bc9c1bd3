package dto

import (
	"time"

	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	"github.com/bizbooks/bookkeeping_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// CreateIncomeRequest defines the data needed to record an income.
// Dates arrive as ISO-8601 strings and are parsed after validation.
type CreateIncomeRequest struct {
	Amount      float64 `json:"amount" binding:"required,gte=0.01"`
	Category    string  `json:"category" binding:"required,max=100"`
	Source      string  `json:"source" binding:"max=255"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	Description string  `json:"description" binding:"max=500"`
}

// UpdateIncomeRequest defines the fields allowed on an income update.
// Pointers distinguish omitted fields from zero values.
type UpdateIncomeRequest struct {
	Amount      *float64 `json:"amount" binding:"omitempty,gte=0.01"`
	Category    *string  `json:"category" binding:"omitempty,max=100"`
	Source      *string  `json:"source" binding:"omitempty,max=255"`
	Date        *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description *string  `json:"description" binding:"omitempty,max=500"`
}

// ListIncomeParams are the list filters and pagination controls.
type ListIncomeParams struct {
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
	Category string `form:"category"`
	From     string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To       string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// IncomeResponse is the wire view of an income row.
type IncomeResponse struct {
	IncomeID        string          `json:"incomeID"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	Source          string          `json:"source"`
	Date            string          `json:"date"`
	CharityRequired decimal.Decimal `json:"charityRequired"`
	Description     string          `json:"description"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// CreateIncomeResponse bundles the income with its auto-created charity row.
type CreateIncomeResponse struct {
	Income  IncomeResponse  `json:"income"`
	Charity CharityResponse `json:"charity"`
}

// ListIncomeResponse wraps a page of incomes.
type ListIncomeResponse struct {
	Income     []IncomeResponse `json:"income"`
	Pagination pagination.Page  `json:"pagination"`
}

// ToIncomeResponse converts a domain.Income to its wire view.
func ToIncomeResponse(in *domain.Income) IncomeResponse {
	return IncomeResponse{
		IncomeID:        in.IncomeID,
		Amount:          in.Amount,
		Category:        in.Category,
		Source:          in.Source,
		Date:            in.IncomeDate.Format("2006-01-02"),
		CharityRequired: in.CharityRequired,
		Description:     in.Description,
		CreatedAt:       in.CreatedAt,
		UpdatedAt:       in.UpdatedAt,
	}
}

// ToListIncomeResponse converts a page of domain incomes.
func ToListIncomeResponse(items []domain.Income, page pagination.Page) ListIncomeResponse {
	res := make([]IncomeResponse, len(items))
	for i := range items {
		res[i] = ToIncomeResponse(&items[i])
	}
	return ListIncomeResponse{Income: res, Pagination: page}
}
