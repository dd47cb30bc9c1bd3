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

// MockCharityRepository is a mock type for the CharityRepository interface
type MockCharityRepository struct {
	mock.Mock
}

func (m *MockCharityRepository) CreateCharity(ctx context.Context, charity domain.Charity) (*domain.Charity, error) {
	args := m.Called(ctx, charity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charity), args.Error(1)
}

func (m *MockCharityRepository) FindCharityByID(ctx context.Context, userID, charityID string) (*domain.Charity, error) {
	args := m.Called(ctx, userID, charityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charity), args.Error(1)
}

func (m *MockCharityRepository) ListCharities(ctx context.Context, userID string, filter portsrepo.ListFilter) ([]domain.Charity, int64, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Charity), args.Get(1).(int64), args.Error(2)
}

func (m *MockCharityRepository) UpdateCharity(ctx context.Context, charity domain.Charity) (*domain.Charity, error) {
	args := m.Called(ctx, charity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charity), args.Error(1)
}

func (m *MockCharityRepository) DeleteCharity(ctx context.Context, userID, charityID string) error {
	args := m.Called(ctx, userID, charityID)
	return args.Error(0)
}

func (m *MockCharityRepository) RecordPayment(ctx context.Context, userID, charityID string, amount decimal.Decimal, date time.Time) (*domain.Charity, error) {
	args := m.Called(ctx, userID, charityID, amount, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charity), args.Error(1)
}

// --- Test Suite Setup ---

type CharityServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCharityRepository
	service  portssvc.CharitySvc
}

func (suite *CharityServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCharityRepository)
	suite.service = services.NewCharityService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CharityServiceTestSuite) TestCreateCharity_StartsPending() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("CreateCharity", ctx, mock.MatchedBy(func(c domain.Charity) bool {
		return c.Status == domain.CharityPending &&
			c.AmountPaid.IsZero() &&
			c.IncomeID == nil &&
			c.AmountRequired.Equal(decimal.NewFromInt(200))
	})).Return(&domain.Charity{CharityID: uuid.NewString(), Status: domain.CharityPending}, nil).Once()

	created, err := suite.service.CreateCharity(ctx, userID, dto.CreateCharityRequest{AmountRequired: 200})

	suite.Require().NoError(err)
	suite.Equal(domain.CharityPending, created.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CharityServiceTestSuite) TestRecordPayment_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	charityID := uuid.NewString()
	wantDate := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	// decimal.Decimal carries an internal exponent, so match by value
	suite.mockRepo.On("RecordPayment", ctx, userID, charityID,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(60)) }),
		wantDate,
	).Return(&domain.Charity{
		CharityID:  charityID,
		AmountPaid: decimal.NewFromInt(60),
		Status:     domain.CharityPaid,
	}, nil).Once()

	charity, err := suite.service.RecordPayment(ctx, userID, charityID, dto.CharityPaymentRequest{
		PaymentAmount: 60,
		PaymentDate:   "2025-07-01",
	})

	suite.Require().NoError(err)
	suite.Equal(domain.CharityPaid, charity.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CharityServiceTestSuite) TestRecordPayment_Overpayment() {
	ctx := context.Background()
	userID := uuid.NewString()
	charityID := uuid.NewString()

	suite.mockRepo.On("RecordPayment", ctx, userID, charityID, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewBusinessRuleError("Payment amount exceeds remaining charity amount")).Once()

	_, err := suite.service.RecordPayment(ctx, userID, charityID, dto.CharityPaymentRequest{
		PaymentAmount: 1000,
		PaymentDate:   "2025-07-01",
	})

	suite.Require().ErrorIs(err, apperrors.ErrBusinessRule)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCharityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CharityServiceTestSuite))
}
