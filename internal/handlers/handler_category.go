package handlers

import (
	"errors"
	"net/http"

	"github.com/bizbooks/bookkeeping_app/internal/apperrors"
	portssvc "github.com/bizbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/bizbooks/bookkeeping_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvc
}

func newCategoryHandler(cs portssvc.CategorySvc) *categoryHandler {
	return &categoryHandler{categoryService: cs}
}

// registerCategoryRoutes registers routes related to categories.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvc) {
	h := newCategoryHandler(categoryService)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.PUT("/:id", h.updateCategory)
		categories.DELETE("/:id", h.deleteCategory)
	}
}

// createCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.Response{data=dto.CategoryResponse}
// @Failure 409 {object} dto.Response
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage("Category created", dto.ToCategoryResponse(category)))
}

// listCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Param type query string false "Type filter (income, expense, purchase)"
// @Success 200 {object} dto.Response{data=dto.ListCategoriesResponse}
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.ListCategoriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToListCategoriesResponse(categories)))
}

// updateCategory godoc
// @Summary Rename a category
// @Description Renames a category; existing records keep the old name
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body dto.UpdateCategoryRequest true "New name"
// @Success 200 {object} dto.Response{data=dto.CategoryResponse}
// @Failure 404 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Security BearerAuth
// @Router /categories/{id} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Category renamed", dto.ToCategoryResponse(category)))
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Deletes a category; refused with usage counts while records still reference it
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response{data=dto.CategoryUsageResponse}
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	usage, err := h.categoryService.DeleteCategory(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if usage != nil && errors.Is(err, apperrors.ErrBusinessRule) {
			// include the counts so the client can explain the refusal
			c.JSON(http.StatusBadRequest, dto.Response{
				Success: false,
				Message: "Cannot delete category that is in use",
				Data:    dto.CategoryUsageResponse{Usage: *usage},
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Category deleted", nil))
}
