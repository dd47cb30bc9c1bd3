package dto

import (
	"strings"
	"time"

	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
)

// CreateCategoryRequest defines a new user-scoped category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Type string `json:"type" binding:"required,oneof=income expense purchase"`
}

// Normalize trims the category name.
func (r *CreateCategoryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// UpdateCategoryRequest renames a category.
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// Normalize trims the category name.
func (r *UpdateCategoryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// ListCategoriesParams filter the category list by record type.
type ListCategoriesParams struct {
	Type string `form:"type" binding:"omitempty,oneof=income expense purchase"`
}

// CategoryResponse is the wire view of a category row.
type CategoryResponse struct {
	CategoryID string    `json:"categoryID"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ListCategoriesResponse wraps all matching categories (categories are few;
// no pagination).
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CategoryUsageResponse reports why a delete was blocked.
type CategoryUsageResponse struct {
	Usage domain.CategoryUsage `json:"usage"`
}

// ToCategoryResponse converts a domain.Category to its wire view.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Type:       string(c.Type),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// ToListCategoriesResponse converts all categories of a user.
func ToListCategoriesResponse(items []domain.Category) ListCategoriesResponse {
	res := make([]CategoryResponse, len(items))
	for i := range items {
		res[i] = ToCategoryResponse(&items[i])
	}
	return ListCategoriesResponse{Categories: res}
}
