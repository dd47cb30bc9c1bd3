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

type purchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepository
}

// NewPurchaseService creates the purchase service.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepository) portssvc.PurchaseSvc {
	return &purchaseService{purchaseRepo: purchaseRepo}
}

func (s *purchaseService) CreatePurchase(ctx context.Context, userID string, req dto.CreateSpendRequest) (*domain.Purchase, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	purchase := domain.Purchase{
		PurchaseID:    uuid.NewString(),
		UserID:        userID,
		Amount:        decimal.NewFromFloat(req.Amount),
		Category:      req.Category,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		SpendDate:     date,
		ReceiptPath:   req.ReceiptPath,
		Description:   req.Description,
		AuditFields:   domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	created, err := s.purchaseRepo.CreatePurchase(ctx, purchase)
	if err != nil {
		s.LogError(ctx, err, "Failed to create purchase", "user_id", userID)
		return nil, err
	}

	s.LogInfo(ctx, "Purchase created", "purchase_id", created.PurchaseID)
	return created, nil
}

func (s *purchaseService) GetPurchase(ctx context.Context, userID, purchaseID string) (*domain.Purchase, error) {
	return s.purchaseRepo.FindPurchaseByID(ctx, userID, purchaseID)
}

func (s *purchaseService) ListPurchases(ctx context.Context, userID string, params dto.ListSpendParams) ([]domain.Purchase, pagination.Page, error) {
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
		Category:      params.Category,
		PaymentMethod: params.PaymentMethod,
		From:          from,
		To:            to,
		Limit:         limit,
		Offset:        pagination.Offset(page, limit),
	}
	purchases, total, err := s.purchaseRepo.ListPurchases(ctx, userID, filter)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	return purchases, pagination.NewPage(page, limit, total), nil
}

func (s *purchaseService) UpdatePurchase(ctx context.Context, userID, purchaseID string, req dto.UpdateSpendRequest) (*domain.Purchase, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, userID, purchaseID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		purchase.Amount = decimal.NewFromFloat(*req.Amount)
	}
	if req.Category != nil {
		purchase.Category = *req.Category
	}
	if req.PaymentMethod != nil {
		purchase.PaymentMethod = domain.PaymentMethod(*req.PaymentMethod)
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		purchase.SpendDate = date
	}
	if req.ReceiptPath != nil {
		purchase.ReceiptPath = req.ReceiptPath
	}
	if req.Description != nil {
		purchase.Description = *req.Description
	}
	purchase.UpdatedAt = time.Now()

	updated, err := s.purchaseRepo.UpdatePurchase(ctx, *purchase)
	if err != nil {
		s.LogError(ctx, err, "Failed to update purchase", "purchase_id", purchaseID)
		return nil, err
	}
	return updated, nil
}

func (s *purchaseService) DeletePurchase(ctx context.Context, userID, purchaseID string) error {
	if err := s.purchaseRepo.DeletePurchase(ctx, userID, purchaseID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Purchase deleted", "purchase_id", purchaseID)
	return nil
}
