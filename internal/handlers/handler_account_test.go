package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bizbooks/bookkeeping_app/internal/apperrors"
	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	"github.com/bizbooks/bookkeeping_app/internal/dto"
	"github.com/bizbooks/bookkeeping_app/internal/middleware"
	"github.com/bizbooks/bookkeeping_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccount(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, userID, accountID string) error {
	args := m.Called(ctx, userID, accountID)
	return args.Error(0)
}

func (m *MockAccountService) Transfer(ctx context.Context, userID string, req dto.TransferRequest) (*domain.Account, *domain.Account, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Account), args.Get(1).(*domain.Account), args.Error(2)
}

// --- Test Suite Setup ---

const (
	testJWTSecret   = "test-secret-key-that-is-long-enough"
	testJWTIssuer   = "bookkeeping-test"
	testJWTAudience = "bookkeeping-test-clients"
)

type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
}

func (suite *AccountHandlerTestSuite) generateTestToken(userID string) string {
	token, err := utils.GenerateJWT(userID, "tester", "tester@example.com", testJWTSecret, time.Hour, testJWTIssuer, testJWTAudience)
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockAccountService = new(MockAccountService)

	v1 := suite.router.Group("/api", middleware.AuthMiddleware(testJWTSecret, testJWTIssuer, testJWTAudience))
	registerAccountRoutes(v1, suite.mockAccountService)
}

func (suite *AccountHandlerTestSuite) doJSON(method, url, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestTransfer_Success() {
	userID := uuid.NewString()
	fromID := uuid.NewString()
	toID := uuid.NewString()

	from := &domain.Account{AccountID: fromID, UserID: userID, Name: "Cash", AccountType: domain.AccountCash, Balance: decimal.NewFromInt(75)}
	to := &domain.Account{AccountID: toID, UserID: userID, Name: "Bank", AccountType: domain.AccountBank, Balance: decimal.NewFromInt(25)}

	suite.mockAccountService.On("Transfer",
		mock.Anything,
		userID,
		mock.MatchedBy(func(req dto.TransferRequest) bool {
			return req.FromAccountID == fromID && req.ToAccountID == toID && req.Amount == 25
		}),
	).Return(from, to, nil).Once()

	body := dto.TransferRequest{
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        25,
		Date:          "2026-03-01",
	}
	w := suite.doJSON(http.MethodPost, "/api/accounts/transfer", suite.generateTestToken(userID), body)

	suite.Equal(http.StatusOK, w.Code)

	var envelope struct {
		Success bool                 `json:"success"`
		Data    dto.TransferResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	suite.True(envelope.Success)
	suite.Equal(fromID, envelope.Data.FromAccount.AccountID)
	suite.Equal(toID, envelope.Data.ToAccount.AccountID)
	suite.True(envelope.Data.FromAccount.Balance.Equal(decimal.NewFromInt(75)))

	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestTransfer_InsufficientBalanceMapsTo400() {
	userID := uuid.NewString()

	suite.mockAccountService.On("Transfer", mock.Anything, userID, mock.Anything).
		Return(nil, nil, apperrors.NewBusinessRuleError("Insufficient balance in source account")).Once()

	body := dto.TransferRequest{
		FromAccountID: uuid.NewString(),
		ToAccountID:   uuid.NewString(),
		Amount:        1000,
		Date:          "2026-03-01",
	}
	w := suite.doJSON(http.MethodPost, "/api/accounts/transfer", suite.generateTestToken(userID), body)

	suite.Equal(http.StatusBadRequest, w.Code)

	var envelope dto.Response
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	suite.False(envelope.Success)
	suite.Equal("Insufficient balance in source account", envelope.Message)
}

func (suite *AccountHandlerTestSuite) TestTransfer_BindingErrorRejectedBeforeService() {
	userID := uuid.NewString()

	// missing to_account_id and a malformed date
	body := map[string]any{
		"from_account_id": uuid.NewString(),
		"amount":          10,
		"date":            "01-03-2026",
	}
	w := suite.doJSON(http.MethodPost, "/api/accounts/transfer", suite.generateTestToken(userID), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "Transfer")
}

func (suite *AccountHandlerTestSuite) TestListAccounts_RequiresToken() {
	w := suite.doJSON(http.MethodGet, "/api/accounts", "", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ListAccounts")
}

func (suite *AccountHandlerTestSuite) TestListAccounts_MalformedTokenForbidden() {
	w := suite.doJSON(http.MethodGet, "/api/accounts", "not.a.jwt", nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ListAccounts")
}

func (suite *AccountHandlerTestSuite) TestListAccounts_WrongSignatureForbidden() {
	token, err := utils.GenerateJWT(uuid.NewString(), "tester", "tester@example.com",
		"some-other-secret-key-entirely-wrong", time.Hour, testJWTIssuer, testJWTAudience)
	suite.Require().NoError(err)

	w := suite.doJSON(http.MethodGet, "/api/accounts", token, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ListAccounts")
}

func (suite *AccountHandlerTestSuite) TestListAccounts_ExpiredTokenUnauthorized() {
	token, err := utils.GenerateJWT(uuid.NewString(), "tester", "tester@example.com",
		testJWTSecret, -time.Hour, testJWTIssuer, testJWTAudience)
	suite.Require().NoError(err)

	w := suite.doJSON(http.MethodGet, "/api/accounts", token, nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ListAccounts")
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFoundMapsTo404() {
	userID := uuid.NewString()
	accountID := uuid.NewString()

	suite.mockAccountService.On("GetAccount", mock.Anything, userID, accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodGet, "/api/accounts/"+accountID, suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
