package dto

import (
	"time"

	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	"github.com/bizbooks/bookkeeping_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest defines the data needed to record a sale. Amount is the
// cost basis; zero is allowed (gifted/found inventory) and yields a 0 profit
// percentage.
type CreateSaleRequest struct {
	Amount       float64 `json:"amount" binding:"gte=0"`
	SellingPrice float64 `json:"sellingPrice" binding:"required,gte=0.01"`
	PurchaseID   *string `json:"purchaseID" binding:"omitempty,uuid"`
	ItemName     string  `json:"itemName" binding:"required,max=255"`
	Date         string  `json:"date" binding:"required,datetime=2006-01-02"`
	Description  string  `json:"description" binding:"max=500"`
}

// UpdateSaleRequest defines the fields allowed on a sale update.
type UpdateSaleRequest struct {
	Amount       *float64 `json:"amount" binding:"omitempty,gte=0"`
	SellingPrice *float64 `json:"sellingPrice" binding:"omitempty,gte=0.01"`
	PurchaseID   *string  `json:"purchaseID" binding:"omitempty,uuid"`
	ItemName     *string  `json:"itemName" binding:"omitempty,max=255"`
	Date         *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description  *string  `json:"description" binding:"omitempty,max=500"`
}

// ListSalesParams are the list filters and pagination controls.
type ListSalesParams struct {
	Page  int    `form:"page,default=1"`
	Limit int    `form:"limit,default=10"`
	From  string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To    string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// SaleResponse is the wire view of a sale row.
type SaleResponse struct {
	SaleID           string          `json:"saleID"`
	Amount           decimal.Decimal `json:"amount"`
	SellingPrice     decimal.Decimal `json:"sellingPrice"`
	Profit           decimal.Decimal `json:"profit"`
	ProfitPercentage decimal.Decimal `json:"profitPercentage"`
	PurchaseID       *string         `json:"purchaseID,omitempty"`
	ItemName         string          `json:"itemName"`
	Date             string          `json:"date"`
	Description      string          `json:"description"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// ListSalesResponse wraps a page of sales.
type ListSalesResponse struct {
	Sales      []SaleResponse  `json:"sales"`
	Pagination pagination.Page `json:"pagination"`
}

// ToSaleResponse converts a domain.Sale to its wire view.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:           s.SaleID,
		Amount:           s.Amount,
		SellingPrice:     s.SellingPrice,
		Profit:           s.Profit,
		ProfitPercentage: s.ProfitPercentage,
		PurchaseID:       s.PurchaseID,
		ItemName:         s.ItemName,
		Date:             s.SaleDate.Format("2006-01-02"),
		Description:      s.Description,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// ToListSalesResponse converts a page of domain sales.
func ToListSalesResponse(items []domain.Sale, page pagination.Page) ListSalesResponse {
	res := make([]SaleResponse, len(items))
	for i := range items {
		res[i] = ToSaleResponse(&items[i])
	}
	return ListSalesResponse{Sales: res, Pagination: page}
}
