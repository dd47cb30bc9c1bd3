package services

import (
	"context"
	"time"

	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/bizbooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/bizbooks/bookkeeping_app/internal/dto"
	"github.com/google/uuid"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates the category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository) portssvc.CategorySvc {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	req.Normalize()

	now := time.Now()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Type:        domain.CategoryType(req.Type),
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	created, err := s.categoryRepo.CreateCategory(ctx, category)
	if err != nil {
		s.LogError(ctx, err, "Failed to create category", "user_id", userID, "name", req.Name)
		return nil, err
	}

	s.LogInfo(ctx, "Category created", "category_id", created.CategoryID)
	return created, nil
}

func (s *categoryService) ListCategories(ctx context.Context, userID string, params dto.ListCategoriesParams) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx, userID, params.Type)
}

func (s *categoryService) UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	req.Normalize()

	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.UpdatedAt = time.Now()

	updated, err := s.categoryRepo.UpdateCategory(ctx, *category)
	if err != nil {
		s.LogError(ctx, err, "Failed to update category", "category_id", categoryID)
		return nil, err
	}
	return updated, nil
}

// DeleteCategory removes a category unless records still reference its name.
// The repository runs the usage check and the delete in one transaction; on
// refusal the usage counts come back alongside the business rule error so
// the caller can say exactly what blocks the delete.
func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID string) (*domain.CategoryUsage, error) {
	usage, err := s.categoryRepo.DeleteCategory(ctx, userID, categoryID)
	if err != nil {
		if usage == nil {
			s.LogError(ctx, err, "Failed to delete category", "category_id", categoryID)
		}
		return usage, err
	}

	s.LogInfo(ctx, "Category deleted", "category_id", categoryID)
	return nil, nil
}
