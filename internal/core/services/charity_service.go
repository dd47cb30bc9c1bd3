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

type charityService struct {
	BaseService
	charityRepo portsrepo.CharityRepository
}

// NewCharityService creates the charity service.
func NewCharityService(charityRepo portsrepo.CharityRepository) portssvc.CharitySvc {
	return &charityService{charityRepo: charityRepo}
}

// CreateCharity records a manual obligation. Income-linked rows are created
// by the income service, never here.
func (s *charityService) CreateCharity(ctx context.Context, userID string, req dto.CreateCharityRequest) (*domain.Charity, error) {
	now := time.Now()
	charity := domain.Charity{
		CharityID:      uuid.NewString(),
		UserID:         userID,
		AmountRequired: decimal.NewFromFloat(req.AmountRequired),
		AmountPaid:     decimal.Zero,
		Status:         domain.CharityPending,
		Description:    req.Description,
		AuditFields:    domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	created, err := s.charityRepo.CreateCharity(ctx, charity)
	if err != nil {
		s.LogError(ctx, err, "Failed to create charity", "user_id", userID)
		return nil, err
	}

	s.LogInfo(ctx, "Charity created", "charity_id", created.CharityID)
	return created, nil
}

func (s *charityService) GetCharity(ctx context.Context, userID, charityID string) (*domain.Charity, error) {
	return s.charityRepo.FindCharityByID(ctx, userID, charityID)
}

func (s *charityService) ListCharities(ctx context.Context, userID string, params dto.ListCharityParams) ([]domain.Charity, pagination.Page, error) {
	page, limit := pagination.Clamp(params.Page, params.Limit)

	filter := portsrepo.ListFilter{
		Status: params.Status,
		Limit:  limit,
		Offset: pagination.Offset(page, limit),
	}
	charities, total, err := s.charityRepo.ListCharities(ctx, userID, filter)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	return charities, pagination.NewPage(page, limit, total), nil
}

func (s *charityService) UpdateCharity(ctx context.Context, userID, charityID string, req dto.UpdateCharityRequest) (*domain.Charity, error) {
	charity, err := s.charityRepo.FindCharityByID(ctx, userID, charityID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		charity.Description = *req.Description
	}
	charity.UpdatedAt = time.Now()

	updated, err := s.charityRepo.UpdateCharity(ctx, *charity)
	if err != nil {
		s.LogError(ctx, err, "Failed to update charity", "charity_id", charityID)
		return nil, err
	}
	return updated, nil
}

func (s *charityService) DeleteCharity(ctx context.Context, userID, charityID string) error {
	if err := s.charityRepo.DeleteCharity(ctx, userID, charityID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Charity deleted", "charity_id", charityID)
	return nil
}

// RecordPayment applies a payment; the repository enforces the overpayment
// rule and status transitions under a row lock.
func (s *charityService) RecordPayment(ctx context.Context, userID, charityID string, req dto.CharityPaymentRequest) (*domain.Charity, error) {
	date, err := parseDate(req.PaymentDate)
	if err != nil {
		return nil, err
	}

	charity, err := s.charityRepo.RecordPayment(ctx, userID, charityID, decimal.NewFromFloat(req.PaymentAmount), date)
	if err != nil {
		s.LogError(ctx, err, "Failed to record charity payment", "charity_id", charityID)
		return nil, err
	}

	s.LogInfo(ctx, "Charity payment recorded", "charity_id", charityID, "status", string(charity.Status))
	return charity, nil
}
