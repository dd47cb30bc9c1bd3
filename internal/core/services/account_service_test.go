package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bizbooks/bookkeeping_app/internal/apperrors"
	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	portssvc "github.com/bizbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/bizbooks/bookkeeping_app/internal/core/services"
	"github.com/bizbooks/bookkeeping_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, userID, accountID string) error {
	args := m.Called(ctx, userID, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) Transfer(ctx context.Context, userID, fromAccountID, toAccountID string, amount decimal.Decimal, date time.Time, description string) (*domain.Account, *domain.Account, error) {
	args := m.Called(ctx, userID, fromAccountID, toAccountID, amount, date, description)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Account), args.Get(1).(*domain.Account), args.Error(2)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvc
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Name:        "Savings",
		AccountType: "savings",
		Balance:     150.50,
	}

	suite.mockRepo.On("CreateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == "Savings" &&
			a.AccountType == domain.AccountSavings &&
			a.Balance.Equal(decimal.NewFromFloat(150.50)) &&
			a.UserID == userID
	})).Return(&domain.Account{AccountID: uuid.NewString(), Name: "Savings"}, nil).Once()

	created, err := suite.service.CreateAccount(ctx, userID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(created.AccountID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestTransfer_SameAccountRejected() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	_, _, err := suite.service.Transfer(ctx, userID, dto.TransferRequest{
		FromAccountID: accountID,
		ToAccountID:   accountID,
		Amount:        10,
		Date:          "2025-07-01",
	})

	suite.Require().ErrorIs(err, apperrors.ErrBusinessRule)
	suite.mockRepo.AssertNotCalled(suite.T(), "Transfer")
}

func (suite *AccountServiceTestSuite) TestTransfer_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	fromID := uuid.NewString()
	toID := uuid.NewString()
	wantDate := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("Transfer", ctx, userID, fromID, toID,
		decimal.NewFromInt(25), wantDate, "rent float",
	).Return(
		&domain.Account{AccountID: fromID, Balance: decimal.NewFromInt(75)},
		&domain.Account{AccountID: toID, Balance: decimal.NewFromInt(25)},
		nil,
	).Once()

	from, to, err := suite.service.Transfer(ctx, userID, dto.TransferRequest{
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        25,
		Date:          "2025-07-01",
		Description:   "rent float",
	})

	suite.Require().NoError(err)
	suite.True(from.Balance.Equal(decimal.NewFromInt(75)))
	suite.True(to.Balance.Equal(decimal.NewFromInt(25)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestTransfer_InsufficientBalance() {
	ctx := context.Background()
	userID := uuid.NewString()
	fromID := uuid.NewString()
	toID := uuid.NewString()

	suite.mockRepo.On("Transfer", ctx, userID, fromID, toID, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil, apperrors.NewBusinessRuleError("Insufficient balance in source account")).Once()

	_, _, err := suite.service.Transfer(ctx, userID, dto.TransferRequest{
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        9999,
		Date:          "2025-07-01",
	})

	suite.Require().ErrorIs(err, apperrors.ErrBusinessRule)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
