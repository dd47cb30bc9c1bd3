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

type incomeService struct {
	BaseService
	incomeRepo portsrepo.IncomeRepository
}

// NewIncomeService creates the income service.
func NewIncomeService(incomeRepo portsrepo.IncomeRepository) portssvc.IncomeSvc {
	return &incomeService{incomeRepo: incomeRepo}
}

// CreateIncome records an income and its automatic charity accrual.
func (s *incomeService) CreateIncome(ctx context.Context, userID string, req dto.CreateIncomeRequest) (*domain.Income, *domain.Charity, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	income := domain.Income{
		IncomeID:    uuid.NewString(),
		UserID:      userID,
		Amount:      decimal.NewFromFloat(req.Amount),
		Category:    req.Category,
		Source:      req.Source,
		IncomeDate:  date,
		Description: req.Description,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	charityDescription := "Charity for income: " + req.Category
	created, charity, err := s.incomeRepo.CreateIncome(ctx, income, charityDescription)
	if err != nil {
		s.LogError(ctx, err, "Failed to create income", "user_id", userID)
		return nil, nil, err
	}

	s.LogInfo(ctx, "Income created", "income_id", created.IncomeID, "charity_id", charity.CharityID)
	return created, charity, nil
}

func (s *incomeService) GetIncome(ctx context.Context, userID, incomeID string) (*domain.Income, error) {
	return s.incomeRepo.FindIncomeByID(ctx, userID, incomeID)
}

func (s *incomeService) ListIncomes(ctx context.Context, userID string, params dto.ListIncomeParams) ([]domain.Income, pagination.Page, error) {
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
		Category: params.Category,
		From:     from,
		To:       to,
		Limit:    limit,
		Offset:   pagination.Offset(page, limit),
	}
	incomes, total, err := s.incomeRepo.ListIncomes(ctx, userID, filter)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	return incomes, pagination.NewPage(page, limit, total), nil
}

// UpdateIncome applies the provided fields and lets the repository keep the
// charity accrual and audit row in step.
func (s *incomeService) UpdateIncome(ctx context.Context, userID, incomeID string, req dto.UpdateIncomeRequest) (*domain.Income, error) {
	income, err := s.incomeRepo.FindIncomeByID(ctx, userID, incomeID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		income.Amount = decimal.NewFromFloat(*req.Amount)
	}
	if req.Category != nil {
		income.Category = *req.Category
	}
	if req.Source != nil {
		income.Source = *req.Source
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		income.IncomeDate = date
	}
	if req.Description != nil {
		income.Description = *req.Description
	}
	income.UpdatedAt = time.Now()

	updated, err := s.incomeRepo.UpdateIncome(ctx, *income)
	if err != nil {
		s.LogError(ctx, err, "Failed to update income", "income_id", incomeID)
		return nil, err
	}
	return updated, nil
}

func (s *incomeService) DeleteIncome(ctx context.Context, userID, incomeID string) error {
	if err := s.incomeRepo.DeleteIncome(ctx, userID, incomeID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Income deleted", "income_id", incomeID)
	return nil
}
