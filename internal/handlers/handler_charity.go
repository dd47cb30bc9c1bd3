package handlers

import (
	"net/http"

	portssvc "github.com/bizbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/bizbooks/bookkeeping_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// charityHandler handles HTTP requests related to charitable obligations.
type charityHandler struct {
	charityService portssvc.CharitySvc
}

func newCharityHandler(cs portssvc.CharitySvc) *charityHandler {
	return &charityHandler{charityService: cs}
}

// registerCharityRoutes registers routes related to charity.
func registerCharityRoutes(rg *gin.RouterGroup, charityService portssvc.CharitySvc) {
	h := newCharityHandler(charityService)

	charity := rg.Group("/charity")
	{
		charity.POST("", h.createCharity)
		charity.GET("", h.listCharities)
		charity.GET("/:id", h.getCharity)
		charity.PUT("/:id", h.updateCharity)
		charity.DELETE("/:id", h.deleteCharity)
		charity.POST("/:id/payments", h.recordPayment)
	}
}

// createCharity godoc
// @Summary Create a manual charity obligation
// @Tags charity
// @Accept json
// @Produce json
// @Param charity body dto.CreateCharityRequest true "Obligation details"
// @Success 201 {object} dto.Response{data=dto.CharityResponse}
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /charity [post]
func (h *charityHandler) createCharity(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCharityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	charity, err := h.charityService.CreateCharity(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage("Charity obligation created", dto.ToCharityResponse(charity)))
}

// listCharities godoc
// @Summary List charity obligations
// @Tags charity
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param status query string false "Status filter (pending, partial, paid)"
// @Success 200 {object} dto.Response{data=dto.ListCharityResponse}
// @Security BearerAuth
// @Router /charity [get]
func (h *charityHandler) listCharities(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.ListCharityParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	charities, page, err := h.charityService.ListCharities(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToListCharityResponse(charities, page)))
}

// getCharity godoc
// @Summary Get a charity obligation by ID
// @Tags charity
// @Produce json
// @Param id path string true "Charity ID"
// @Success 200 {object} dto.Response{data=dto.CharityResponse}
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /charity/{id} [get]
func (h *charityHandler) getCharity(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	charity, err := h.charityService.GetCharity(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToCharityResponse(charity)))
}

// updateCharity godoc
// @Summary Update a charity obligation
// @Description Updates the description; amounts and status move through payments
// @Tags charity
// @Accept json
// @Produce json
// @Param id path string true "Charity ID"
// @Param charity body dto.UpdateCharityRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.CharityResponse}
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /charity/{id} [put]
func (h *charityHandler) updateCharity(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCharityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	charity, err := h.charityService.UpdateCharity(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Charity updated", dto.ToCharityResponse(charity)))
}

// deleteCharity godoc
// @Summary Delete a manual charity obligation
// @Description Income-linked obligations cannot be deleted directly
// @Tags charity
// @Produce json
// @Param id path string true "Charity ID"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /charity/{id} [delete]
func (h *charityHandler) deleteCharity(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.charityService.DeleteCharity(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Charity deleted", nil))
}

// recordPayment godoc
// @Summary Record a charity payment
// @Description Applies a payment; overpayment beyond the remaining amount is rejected
// @Tags charity
// @Accept json
// @Produce json
// @Param id path string true "Charity ID"
// @Param payment body dto.CharityPaymentRequest true "Payment details"
// @Success 200 {object} dto.Response{data=dto.CharityResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /charity/{id}/payments [post]
func (h *charityHandler) recordPayment(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CharityPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	charity, err := h.charityService.RecordPayment(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Payment recorded", dto.ToCharityResponse(charity)))
}
