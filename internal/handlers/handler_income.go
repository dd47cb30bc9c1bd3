package handlers

import (
	"net/http"

	portssvc "github.com/bizbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/bizbooks/bookkeeping_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// incomeHandler handles HTTP requests related to incomes.
type incomeHandler struct {
	incomeService portssvc.IncomeSvc
}

func newIncomeHandler(is portssvc.IncomeSvc) *incomeHandler {
	return &incomeHandler{incomeService: is}
}

// registerIncomeRoutes registers routes related to incomes.
func registerIncomeRoutes(rg *gin.RouterGroup, incomeService portssvc.IncomeSvc) {
	h := newIncomeHandler(incomeService)

	income := rg.Group("/income")
	{
		income.POST("", h.createIncome)
		income.GET("", h.listIncomes)
		income.GET("/:id", h.getIncome)
		income.PUT("/:id", h.updateIncome)
		income.DELETE("/:id", h.deleteIncome)
	}
}

// createIncome godoc
// @Summary Record an income
// @Description Records an income and its automatic 6% charity accrual
// @Tags income
// @Accept json
// @Produce json
// @Param income body dto.CreateIncomeRequest true "Income details"
// @Success 201 {object} dto.Response{data=dto.CreateIncomeResponse}
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /income [post]
func (h *incomeHandler) createIncome(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	income, charity, err := h.incomeService.CreateIncome(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage("Income recorded", dto.CreateIncomeResponse{
		Income:  dto.ToIncomeResponse(income),
		Charity: dto.ToCharityResponse(charity),
	}))
}

// listIncomes godoc
// @Summary List incomes
// @Tags income
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param category query string false "Category filter"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.Response{data=dto.ListIncomeResponse}
// @Security BearerAuth
// @Router /income [get]
func (h *incomeHandler) listIncomes(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.ListIncomeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	incomes, page, err := h.incomeService.ListIncomes(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToListIncomeResponse(incomes, page)))
}

// getIncome godoc
// @Summary Get an income by ID
// @Tags income
// @Produce json
// @Param id path string true "Income ID"
// @Success 200 {object} dto.Response{data=dto.IncomeResponse}
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /income/{id} [get]
func (h *incomeHandler) getIncome(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	income, err := h.incomeService.GetIncome(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToIncomeResponse(income)))
}

// updateIncome godoc
// @Summary Update an income
// @Description Updates an income; the charity accrual follows the new amount
// @Tags income
// @Accept json
// @Produce json
// @Param id path string true "Income ID"
// @Param income body dto.UpdateIncomeRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.IncomeResponse}
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /income/{id} [put]
func (h *incomeHandler) updateIncome(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	income, err := h.incomeService.UpdateIncome(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Income updated", dto.ToIncomeResponse(income)))
}

// deleteIncome godoc
// @Summary Delete an income
// @Description Deletes an income together with its linked charity and audit rows
// @Tags income
// @Produce json
// @Param id path string true "Income ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /income/{id} [delete]
func (h *incomeHandler) deleteIncome(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.incomeService.DeleteIncome(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Income deleted", nil))
}
