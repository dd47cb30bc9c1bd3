package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bizbooks/bookkeeping_app/internal/apperrors"
	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/bizbooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/bizbooks/bookkeeping_app/internal/core/services"
	"github.com/bizbooks/bookkeeping_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockLoanRepository is a mock type for the LoanRepository interface
type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) CreateLoan(ctx context.Context, loan domain.Loan) (*domain.Loan, error) {
	args := m.Called(ctx, loan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) FindLoanByID(ctx context.Context, userID, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, userID, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListLoans(ctx context.Context, userID string, filter portsrepo.ListFilter) ([]domain.Loan, int64, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Loan), args.Get(1).(int64), args.Error(2)
}

func (m *MockLoanRepository) UpdateLoan(ctx context.Context, loan domain.Loan) (*domain.Loan, error) {
	args := m.Called(ctx, loan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) DeleteLoan(ctx context.Context, userID, loanID string) error {
	args := m.Called(ctx, userID, loanID)
	return args.Error(0)
}

func (m *MockLoanRepository) RecordPayment(ctx context.Context, userID, loanID string, amount decimal.Decimal, date time.Time) (*domain.Loan, error) {
	args := m.Called(ctx, userID, loanID, amount, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

// --- Test Suite Setup ---

type LoanServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLoanRepository
	service  portssvc.LoanSvc
}

func (suite *LoanServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLoanRepository)
	suite.service = services.NewLoanService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *LoanServiceTestSuite) TestCreateLoan_BalanceStartsAtPrincipal() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateLoanRequest{
		LenderName: "Village Bank",
		Principal:  5000,
		StartDate:  "2025-01-15",
		Direction:  "borrowed",
	}

	suite.mockRepo.On("CreateLoan", ctx, mock.MatchedBy(func(l domain.Loan) bool {
		return l.PrincipalAmount.Equal(decimal.NewFromInt(5000)) &&
			l.CurrentBalance.Equal(decimal.NewFromInt(5000)) &&
			l.Status == domain.LoanActive &&
			l.Direction == domain.LoanBorrowed
	})).Return(&domain.Loan{LoanID: uuid.NewString(), Status: domain.LoanActive}, nil).Once()

	created, err := suite.service.CreateLoan(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.LoanActive, created.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestRecordPayment_Payoff() {
	ctx := context.Background()
	userID := uuid.NewString()
	loanID := uuid.NewString()
	wantDate := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	// decimal.Decimal carries an internal exponent, so match by value
	suite.mockRepo.On("RecordPayment", ctx, userID, loanID,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(5000)) }),
		wantDate,
	).Return(&domain.Loan{
		LoanID:         loanID,
		CurrentBalance: decimal.Zero,
		Status:         domain.LoanPaid,
	}, nil).Once()

	loan, err := suite.service.RecordPayment(ctx, userID, loanID, dto.LoanPaymentRequest{
		PaymentAmount: 5000,
		PaymentDate:   "2025-08-01",
	})

	suite.Require().NoError(err)
	suite.Equal(domain.LoanPaid, loan.Status)
	suite.True(loan.CurrentBalance.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestRecordPayment_InactiveLoan() {
	ctx := context.Background()
	userID := uuid.NewString()
	loanID := uuid.NewString()

	suite.mockRepo.On("RecordPayment", ctx, userID, loanID, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewBusinessRuleError("Cannot make payments on inactive loans")).Once()

	_, err := suite.service.RecordPayment(ctx, userID, loanID, dto.LoanPaymentRequest{
		PaymentAmount: 100,
		PaymentDate:   "2025-08-01",
	})

	suite.Require().ErrorIs(err, apperrors.ErrBusinessRule)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestLoanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}
