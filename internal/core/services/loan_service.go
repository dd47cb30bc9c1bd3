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

type loanService struct {
	BaseService
	loanRepo portsrepo.LoanRepository
}

// NewLoanService creates the loan service.
func NewLoanService(loanRepo portsrepo.LoanRepository) portssvc.LoanSvc {
	return &loanService{loanRepo: loanRepo}
}

// CreateLoan records a loan; the balance starts at the principal.
func (s *loanService) CreateLoan(ctx context.Context, userID string, req dto.CreateLoanRequest) (*domain.Loan, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	var dueDate *time.Time
	if req.DueDate != nil {
		due, err := parseDate(*req.DueDate)
		if err != nil {
			return nil, err
		}
		dueDate = &due
	}
	var interestRate *decimal.Decimal
	if req.InterestRate != nil {
		rate := decimal.NewFromFloat(*req.InterestRate)
		interestRate = &rate
	}

	now := time.Now()
	principal := decimal.NewFromFloat(req.Principal)
	loan := domain.Loan{
		LoanID:          uuid.NewString(),
		UserID:          userID,
		LenderName:      req.LenderName,
		PrincipalAmount: principal,
		CurrentBalance:  principal,
		InterestRate:    interestRate,
		StartDate:       startDate,
		DueDate:         dueDate,
		Status:          domain.LoanActive,
		Direction:       domain.LoanDirection(req.Direction),
		Description:     req.Description,
		AuditFields:     domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	created, err := s.loanRepo.CreateLoan(ctx, loan)
	if err != nil {
		s.LogError(ctx, err, "Failed to create loan", "user_id", userID)
		return nil, err
	}

	s.LogInfo(ctx, "Loan created", "loan_id", created.LoanID)
	return created, nil
}

func (s *loanService) GetLoan(ctx context.Context, userID, loanID string) (*domain.Loan, error) {
	return s.loanRepo.FindLoanByID(ctx, userID, loanID)
}

func (s *loanService) ListLoans(ctx context.Context, userID string, params dto.ListLoansParams) ([]domain.Loan, pagination.Page, error) {
	page, limit := pagination.Clamp(params.Page, params.Limit)

	filter := portsrepo.ListFilter{
		Status:    params.Status,
		Direction: params.Direction,
		Limit:     limit,
		Offset:    pagination.Offset(page, limit),
	}
	loans, total, err := s.loanRepo.ListLoans(ctx, userID, filter)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	return loans, pagination.NewPage(page, limit, total), nil
}

func (s *loanService) UpdateLoan(ctx context.Context, userID, loanID string, req dto.UpdateLoanRequest) (*domain.Loan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, userID, loanID)
	if err != nil {
		return nil, err
	}

	if req.LenderName != nil {
		loan.LenderName = *req.LenderName
	}
	if req.InterestRate != nil {
		rate := decimal.NewFromFloat(*req.InterestRate)
		loan.InterestRate = &rate
	}
	if req.DueDate != nil {
		due, err := parseDate(*req.DueDate)
		if err != nil {
			return nil, err
		}
		loan.DueDate = &due
	}
	if req.Status != nil {
		loan.Status = domain.LoanStatus(*req.Status)
	}
	if req.Description != nil {
		loan.Description = *req.Description
	}
	loan.UpdatedAt = time.Now()

	updated, err := s.loanRepo.UpdateLoan(ctx, *loan)
	if err != nil {
		s.LogError(ctx, err, "Failed to update loan", "loan_id", loanID)
		return nil, err
	}
	return updated, nil
}

func (s *loanService) DeleteLoan(ctx context.Context, userID, loanID string) error {
	if err := s.loanRepo.DeleteLoan(ctx, userID, loanID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Loan deleted", "loan_id", loanID)
	return nil
}

// RecordPayment applies a payment; the repository enforces the active-status
// and overpayment rules under a row lock and flips status on payoff.
func (s *loanService) RecordPayment(ctx context.Context, userID, loanID string, req dto.LoanPaymentRequest) (*domain.Loan, error) {
	date, err := parseDate(req.PaymentDate)
	if err != nil {
		return nil, err
	}

	loan, err := s.loanRepo.RecordPayment(ctx, userID, loanID, decimal.NewFromFloat(req.PaymentAmount), date)
	if err != nil {
		s.LogError(ctx, err, "Failed to record loan payment", "loan_id", loanID)
		return nil, err
	}

	s.LogInfo(ctx, "Loan payment recorded", "loan_id", loanID, "status", string(loan.Status))
	return loan, nil
}
