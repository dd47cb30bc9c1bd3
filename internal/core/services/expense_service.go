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

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepository
}

// NewExpenseService creates the expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepository) portssvc.ExpenseSvc {
	return &expenseService{expenseRepo: expenseRepo}
}

func (s *expenseService) CreateExpense(ctx context.Context, userID string, req dto.CreateSpendRequest) (*domain.Expense, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:     uuid.NewString(),
		UserID:        userID,
		Amount:        decimal.NewFromFloat(req.Amount),
		Category:      req.Category,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		SpendDate:     date,
		ReceiptPath:   req.ReceiptPath,
		Description:   req.Description,
		AuditFields:   domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	created, err := s.expenseRepo.CreateExpense(ctx, expense)
	if err != nil {
		s.LogError(ctx, err, "Failed to create expense", "user_id", userID)
		return nil, err
	}

	s.LogInfo(ctx, "Expense created", "expense_id", created.ExpenseID)
	return created, nil
}

func (s *expenseService) GetExpense(ctx context.Context, userID, expenseID string) (*domain.Expense, error) {
	return s.expenseRepo.FindExpenseByID(ctx, userID, expenseID)
}

func (s *expenseService) ListExpenses(ctx context.Context, userID string, params dto.ListSpendParams) ([]domain.Expense, pagination.Page, error) {
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
	expenses, total, err := s.expenseRepo.ListExpenses(ctx, userID, filter)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	return expenses, pagination.NewPage(page, limit, total), nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, userID, expenseID string, req dto.UpdateSpendRequest) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		expense.Amount = decimal.NewFromFloat(*req.Amount)
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.PaymentMethod != nil {
		expense.PaymentMethod = domain.PaymentMethod(*req.PaymentMethod)
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		expense.SpendDate = date
	}
	if req.ReceiptPath != nil {
		expense.ReceiptPath = req.ReceiptPath
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	expense.UpdatedAt = time.Now()

	updated, err := s.expenseRepo.UpdateExpense(ctx, *expense)
	if err != nil {
		s.LogError(ctx, err, "Failed to update expense", "expense_id", expenseID)
		return nil, err
	}
	return updated, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, userID, expenseID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Expense deleted", "expense_id", expenseID)
	return nil
}
