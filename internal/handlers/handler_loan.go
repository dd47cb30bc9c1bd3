package handlers

import (
	"net/http"

	portssvc "github.com/bizbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/bizbooks/bookkeeping_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// loanHandler handles HTTP requests related to loans.
type loanHandler struct {
	loanService portssvc.LoanSvc
}

func newLoanHandler(ls portssvc.LoanSvc) *loanHandler {
	return &loanHandler{loanService: ls}
}

// registerLoanRoutes registers routes related to loans.
func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvc) {
	h := newLoanHandler(loanService)

	loans := rg.Group("/loans")
	{
		loans.POST("", h.createLoan)
		loans.GET("", h.listLoans)
		loans.GET("/:id", h.getLoan)
		loans.PUT("/:id", h.updateLoan)
		loans.DELETE("/:id", h.deleteLoan)
		loans.POST("/:id/payments", h.recordPayment)
	}
}

// createLoan godoc
// @Summary Record a loan
// @Description Records a borrowed or lent sum; the balance starts at the principal
// @Tags loans
// @Accept json
// @Produce json
// @Param loan body dto.CreateLoanRequest true "Loan details"
// @Success 201 {object} dto.Response{data=dto.LoanResponse}
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /loans [post]
func (h *loanHandler) createLoan(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	loan, err := h.loanService.CreateLoan(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage("Loan recorded", dto.ToLoanResponse(loan)))
}

// listLoans godoc
// @Summary List loans
// @Tags loans
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param status query string false "Status filter (active, paid, defaulted)"
// @Param direction query string false "Direction filter (borrowed, lent)"
// @Success 200 {object} dto.Response{data=dto.ListLoansResponse}
// @Security BearerAuth
// @Router /loans [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.ListLoansParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	loans, page, err := h.loanService.ListLoans(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToListLoansResponse(loans, page)))
}

// getLoan godoc
// @Summary Get a loan by ID
// @Tags loans
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} dto.Response{data=dto.LoanResponse}
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /loans/{id} [get]
func (h *loanHandler) getLoan(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	loan, err := h.loanService.GetLoan(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToLoanResponse(loan)))
}

// updateLoan godoc
// @Summary Update a loan
// @Description Updates loan details; principal and balance are immutable here
// @Tags loans
// @Accept json
// @Produce json
// @Param id path string true "Loan ID"
// @Param loan body dto.UpdateLoanRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.LoanResponse}
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /loans/{id} [put]
func (h *loanHandler) updateLoan(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	loan, err := h.loanService.UpdateLoan(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Loan updated", dto.ToLoanResponse(loan)))
}

// deleteLoan godoc
// @Summary Delete a loan
// @Tags loans
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /loans/{id} [delete]
func (h *loanHandler) deleteLoan(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.loanService.DeleteLoan(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Loan deleted", nil))
}

// recordPayment godoc
// @Summary Record a loan payment
// @Description Applies a payment to an active loan; the loan flips to paid on a zero balance
// @Tags loans
// @Accept json
// @Produce json
// @Param id path string true "Loan ID"
// @Param payment body dto.LoanPaymentRequest true "Payment details"
// @Success 200 {object} dto.Response{data=dto.LoanResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /loans/{id}/payments [post]
func (h *loanHandler) recordPayment(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.LoanPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	loan, err := h.loanService.RecordPayment(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Payment recorded", dto.ToLoanResponse(loan)))
}
