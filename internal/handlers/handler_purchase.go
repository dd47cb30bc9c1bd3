package handlers

import (
	"net/http"

	portssvc "github.com/bizbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/bizbooks/bookkeeping_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// purchaseHandler handles HTTP requests related to purchases.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvc
}

func newPurchaseHandler(ps portssvc.PurchaseSvc) *purchaseHandler {
	return &purchaseHandler{purchaseService: ps}
}

// registerPurchaseRoutes registers routes related to purchases.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvc) {
	h := newPurchaseHandler(purchaseService)

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.createPurchase)
		purchases.GET("", h.listPurchases)
		purchases.GET("/:id", h.getPurchase)
		purchases.PUT("/:id", h.updatePurchase)
		purchases.DELETE("/:id", h.deletePurchase)
	}
}

// createPurchase godoc
// @Summary Record a purchase
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body dto.CreateSpendRequest true "Purchase details"
// @Success 201 {object} dto.Response{data=dto.SpendResponse}
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage("Purchase recorded", dto.ToPurchaseResponse(purchase)))
}

// listPurchases godoc
// @Summary List purchases
// @Tags purchases
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param category query string false "Category filter"
// @Param paymentMethod query string false "Payment method filter"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.Response{data=dto.ListPurchasesResponse}
// @Security BearerAuth
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.ListSpendParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	purchases, page, err := h.purchaseService.ListPurchases(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	res := make([]dto.SpendResponse, len(purchases))
	for i := range purchases {
		res[i] = dto.ToPurchaseResponse(&purchases[i])
	}
	c.JSON(http.StatusOK, dto.OK(dto.ListPurchasesResponse{Purchases: res, Pagination: page}))
}

// getPurchase godoc
// @Summary Get a purchase by ID
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} dto.Response{data=dto.SpendResponse}
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /purchases/{id} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	purchase, err := h.purchaseService.GetPurchase(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToPurchaseResponse(purchase)))
}

// updatePurchase godoc
// @Summary Update a purchase
// @Tags purchases
// @Accept json
// @Produce json
// @Param id path string true "Purchase ID"
// @Param purchase body dto.UpdateSpendRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.SpendResponse}
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /purchases/{id} [put]
func (h *purchaseHandler) updatePurchase(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	purchase, err := h.purchaseService.UpdatePurchase(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Purchase updated", dto.ToPurchaseResponse(purchase)))
}

// deletePurchase godoc
// @Summary Delete a purchase
// @Description Deletes a purchase; linked sales keep their recorded cost basis
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /purchases/{id} [delete]
func (h *purchaseHandler) deletePurchase(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.purchaseService.DeletePurchase(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Purchase deleted", nil))
}
