package services_test

import (
	"context"
	"testing"

	"github.com/bizbooks/bookkeeping_app/internal/apperrors"
	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	portssvc "github.com/bizbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/bizbooks/bookkeeping_app/internal/core/services"
	"github.com/bizbooks/bookkeeping_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockCategoryRepository is a mock type for the CategoryRepository interface
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, userID string, categoryType string) ([]domain.Category, error) {
	args := m.Called(ctx, userID, categoryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, userID, categoryID string) (*domain.CategoryUsage, error) {
	args := m.Called(ctx, userID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryUsage), args.Error(1)
}

// --- Test Suite Setup ---

type CategoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCategoryRepository
	service  portssvc.CategorySvc
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CategoryServiceTestSuite) TestCreateCategory_TrimsName() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("CreateCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == "Fuel" && c.Type == domain.CategoryExpense
	})).Return(&domain.Category{CategoryID: uuid.NewString(), Name: "Fuel"}, nil).Once()

	created, err := suite.service.CreateCategory(ctx, userID, dto.CreateCategoryRequest{
		Name: "  Fuel  ",
		Type: "expense",
	})

	suite.Require().NoError(err)
	suite.Equal("Fuel", created.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_BlockedWhileReferenced() {
	ctx := context.Background()
	userID := uuid.NewString()
	categoryID := uuid.NewString()

	suite.mockRepo.On("DeleteCategory", ctx, userID, categoryID).
		Return(&domain.CategoryUsage{Expenses: 3, Purchases: 1},
			apperrors.NewBusinessRuleError("Cannot delete category that is in use")).Once()

	usage, err := suite.service.DeleteCategory(ctx, userID, categoryID)

	suite.Require().ErrorIs(err, apperrors.ErrBusinessRule)
	suite.Require().NotNil(usage)
	suite.Equal(int64(4), usage.Total())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_Unreferenced() {
	ctx := context.Background()
	userID := uuid.NewString()
	categoryID := uuid.NewString()

	suite.mockRepo.On("DeleteCategory", ctx, userID, categoryID).Return(nil, nil).Once()

	usage, err := suite.service.DeleteCategory(ctx, userID, categoryID)

	suite.Require().NoError(err)
	suite.Nil(usage)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
