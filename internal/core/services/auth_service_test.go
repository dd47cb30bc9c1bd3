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
	"github.com/bizbooks/bookkeeping_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockUserRepository is a mock type for the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user domain.User, categories []domain.Category, account domain.Account) error {
	args := m.Called(ctx, user, categories, account)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Test Suite Setup ---

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.AuthSvc
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewAuthService(suite.mockRepo, services.AuthServiceConfig{
		JWTSecret:   "test-secret",
		JWTExpiry:   time.Hour,
		JWTIssuer:   "bookkeeping-app",
		JWTAudience: "bookkeeping-app-clients",
	})
}

// --- Test Cases ---

func (suite *AuthServiceTestSuite) TestRegister_SeedsDefaults() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username: "shopkeeper",
		Email:    "Owner@Example.COM",
		Password: "s3cret-pass",
	}

	suite.mockRepo.On("CreateUser", ctx,
		mock.MatchedBy(func(u domain.User) bool {
			// email lower-cased, password never stored in the clear
			return u.Email == "owner@example.com" && u.PasswordHash != req.Password
		}),
		mock.MatchedBy(func(cats []domain.Category) bool {
			return len(cats) == len(domain.DefaultCategories)
		}),
		mock.MatchedBy(func(a domain.Account) bool {
			return a.AccountType == domain.AccountCash && a.Balance.IsZero()
		}),
	).Return(nil).Once()

	user, token, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.Equal("owner@example.com", user.Email)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret", "bookkeeping-app", "bookkeeping-app-clients")
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()

	suite.mockRepo.On("CreateUser", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(apperrors.NewAppError(409, "username or email already registered", apperrors.ErrDuplicate)).Once()

	_, _, err := suite.service.Register(ctx, dto.RegisterRequest{
		Username: "shopkeeper",
		Email:    "owner@example.com",
		Password: "s3cret-pass",
	})

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	stored := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "shopkeeper",
		Email:        "owner@example.com",
		PasswordHash: hash,
	}

	suite.mockRepo.On("FindUserByEmail", ctx, "owner@example.com").Return(stored, nil).Once()

	user, token, err := suite.service.Login(ctx, dto.LoginRequest{
		Email:    "Owner@example.com",
		Password: "s3cret-pass",
	})

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.Equal(stored.UserID, user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)

	suite.mockRepo.On("FindUserByEmail", ctx, "owner@example.com").
		Return(&domain.User{UserID: uuid.NewString(), PasswordHash: hash}, nil).Once()

	_, _, err = suite.service.Login(ctx, dto.LoginRequest{
		Email:    "owner@example.com",
		Password: "wrong-pass",
	})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.Login(ctx, dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})

	// indistinguishable from a wrong password
	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
