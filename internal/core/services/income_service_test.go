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

// MockIncomeRepository is a mock type for the IncomeRepository interface
type MockIncomeRepository struct {
	mock.Mock
}

func (m *MockIncomeRepository) CreateIncome(ctx context.Context, income domain.Income, charityDescription string) (*domain.Income, *domain.Charity, error) {
	args := m.Called(ctx, income, charityDescription)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Income), args.Get(1).(*domain.Charity), args.Error(2)
}

func (m *MockIncomeRepository) FindIncomeByID(ctx context.Context, userID, incomeID string) (*domain.Income, error) {
	args := m.Called(ctx, userID, incomeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}

func (m *MockIncomeRepository) ListIncomes(ctx context.Context, userID string, filter portsrepo.ListFilter) ([]domain.Income, int64, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Income), args.Get(1).(int64), args.Error(2)
}

func (m *MockIncomeRepository) UpdateIncome(ctx context.Context, income domain.Income) (*domain.Income, error) {
	args := m.Called(ctx, income)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}

func (m *MockIncomeRepository) DeleteIncome(ctx context.Context, userID, incomeID string) error {
	args := m.Called(ctx, userID, incomeID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type IncomeServiceTestSuite struct {
	suite.Suite
	mockRepo *MockIncomeRepository
	service  portssvc.IncomeSvc
}

func (suite *IncomeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockIncomeRepository)
	suite.service = services.NewIncomeService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *IncomeServiceTestSuite) TestCreateIncome_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateIncomeRequest{
		Amount:   1000,
		Category: "Sales",
		Source:   "Shop",
		Date:     "2025-06-15",
	}

	suite.mockRepo.On("CreateIncome", ctx, mock.AnythingOfType("domain.Income"), "Charity for income: Sales").
		Run(func(args mock.Arguments) {
			income := args.Get(1).(domain.Income)
			suite.True(income.Amount.Equal(decimal.NewFromInt(1000)))
			suite.Equal(userID, income.UserID)
			suite.Equal("2025-06-15", income.IncomeDate.Format("2006-01-02"))
			suite.NotEmpty(income.IncomeID)
		}).
		Return(
			&domain.Income{IncomeID: uuid.NewString(), CharityRequired: decimal.RequireFromString("60.00")},
			&domain.Charity{CharityID: uuid.NewString(), AmountRequired: decimal.RequireFromString("60.00"), Status: domain.CharityPending},
			nil,
		).Once()

	income, charity, err := suite.service.CreateIncome(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(income)
	suite.Require().NotNil(charity)
	suite.True(charity.AmountRequired.Equal(decimal.RequireFromString("60.00")))
	suite.Equal(domain.CharityPending, charity.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *IncomeServiceTestSuite) TestListIncomes_PaginationEnvelope() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("ListIncomes", ctx, userID, mock.MatchedBy(func(f portsrepo.ListFilter) bool {
		return f.Limit == 10 && f.Offset == 20
	})).Return([]domain.Income{{IncomeID: uuid.NewString()}}, int64(45), nil).Once()

	incomes, page, err := suite.service.ListIncomes(ctx, userID, dto.ListIncomeParams{Page: 3, Limit: 10})

	suite.Require().NoError(err)
	suite.Len(incomes, 1)
	suite.Equal(3, page.CurrentPage)
	suite.Equal(5, page.TotalPages)
	suite.Equal(int64(45), page.TotalRecords)
	suite.True(page.HasNext)
	suite.True(page.HasPrev)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *IncomeServiceTestSuite) TestListIncomes_ClampsLimit() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("ListIncomes", ctx, userID, mock.MatchedBy(func(f portsrepo.ListFilter) bool {
		return f.Limit == 100 && f.Offset == 0
	})).Return([]domain.Income{}, int64(0), nil).Once()

	_, page, err := suite.service.ListIncomes(ctx, userID, dto.ListIncomeParams{Page: 0, Limit: 500})

	suite.Require().NoError(err)
	suite.Equal(1, page.CurrentPage)
	suite.Equal(100, page.Limit)
	suite.False(page.HasPrev)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *IncomeServiceTestSuite) TestUpdateIncome_AppliesPartialFields() {
	ctx := context.Background()
	userID := uuid.NewString()
	incomeID := uuid.NewString()
	existing := &domain.Income{
		IncomeID:   incomeID,
		UserID:     userID,
		Amount:     decimal.NewFromInt(500),
		Category:   "Sales",
		Source:     "Shop",
		IncomeDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	newAmount := 750.0

	suite.mockRepo.On("FindIncomeByID", ctx, userID, incomeID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateIncome", ctx, mock.MatchedBy(func(in domain.Income) bool {
		return in.Amount.Equal(decimal.NewFromInt(750)) && in.Category == "Sales"
	})).Return(&domain.Income{IncomeID: incomeID, Amount: decimal.NewFromInt(750)}, nil).Once()

	updated, err := suite.service.UpdateIncome(ctx, userID, incomeID, dto.UpdateIncomeRequest{Amount: &newAmount})

	suite.Require().NoError(err)
	suite.True(updated.Amount.Equal(decimal.NewFromInt(750)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *IncomeServiceTestSuite) TestUpdateIncome_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	incomeID := uuid.NewString()

	suite.mockRepo.On("FindIncomeByID", ctx, userID, incomeID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateIncome(ctx, userID, incomeID, dto.UpdateIncomeRequest{})

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestIncomeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IncomeServiceTestSuite))
}
