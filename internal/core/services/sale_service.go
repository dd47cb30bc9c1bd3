package services

import (
	"context"
	"time"

	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/bizbooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/bizbooks/bookkeeping_app/internal/dto"
	"github.com/bizbooks/bookkeeping_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type saleService struct {
	BaseService
	saleRepo portsrepo.SaleRepository
}

// NewSaleService creates the sale service.
func NewSaleService(saleRepo portsrepo.SaleRepository) portssvc.SaleSvc {
	return &saleService{saleRepo: saleRepo}
}

func (s *saleService) CreateSale(ctx context.Context, userID string, req dto.CreateSaleRequest) (*domain.Sale, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sale := domain.Sale{
		SaleID:       uuid.NewString(),
		UserID:       userID,
		Amount:       decimal.NewFromFloat(req.Amount),
		SellingPrice: decimal.NewFromFloat(req.SellingPrice),
		PurchaseID:   req.PurchaseID,
		ItemName:     req.ItemName,
		SaleDate:     date,
		Description:  req.Description,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	created, err := s.saleRepo.CreateSale(ctx, sale)
	if err != nil {
		s.LogError(ctx, err, "Failed to create sale", "user_id", userID)
		return nil, err
	}

	s.LogInfo(ctx, "Sale created", "sale_id", created.SaleID, "profit", created.Profit.String())
	return created, nil
}

func (s *saleService) GetSale(ctx context.Context, userID, saleID string) (*domain.Sale, error) {
	return s.saleRepo.FindSaleByID(ctx, userID, saleID)
}

func (s *saleService) ListSales(ctx context.Context, userID string, params dto.ListSalesParams) ([]domain.Sale, pagination.Page, error) {
	page, limit := pagination.Clamp(params.Page, params.Limit)

	from, err := parseDatePtr(params.From)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	to, err := parseDatePtr(params.To)
	if err != nil {
		return nil, pagination.Page{}, err
	}

	filter := portsrepo.ListFilter{
		From:   from,
		To:     to,
		Limit:  limit,
		Offset: pagination.Offset(page, limit),
	}
	sales, total, err := s.saleRepo.ListSales(ctx, userID, filter)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	return sales, pagination.NewPage(page, limit, total), nil
}

func (s *saleService) UpdateSale(ctx context.Context, userID, saleID string, req dto.UpdateSaleRequest) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, userID, saleID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		sale.Amount = decimal.NewFromFloat(*req.Amount)
	}
	if req.SellingPrice != nil {
		sale.SellingPrice = decimal.NewFromFloat(*req.SellingPrice)
	}
	if req.PurchaseID != nil {
		sale.PurchaseID = req.PurchaseID
	}
	if req.ItemName != nil {
		sale.ItemName = *req.ItemName
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		sale.SaleDate = date
	}
	if req.Description != nil {
		sale.Description = *req.Description
	}
	sale.UpdatedAt = time.Now()

	updated, err := s.saleRepo.UpdateSale(ctx, *sale)
	if err != nil {
		s.LogError(ctx, err, "Failed to update sale", "sale_id", saleID)
		return nil, err
	}
	return updated, nil
}

func (s *saleService) DeleteSale(ctx context.Context, userID, saleID string) error {
	if err := s.saleRepo.DeleteSale(ctx, userID, saleID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Sale deleted", "sale_id", saleID)
	return nil
}
