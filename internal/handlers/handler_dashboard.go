package handlers

import (
	"net/http"

	portssvc "github.com/bizbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/bizbooks/bookkeeping_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the reporting aggregates.
type dashboardHandler struct {
	reportingService portssvc.ReportingSvc
}

func newDashboardHandler(rs portssvc.ReportingSvc) *dashboardHandler {
	return &dashboardHandler{reportingService: rs}
}

// registerDashboardRoutes registers the reporting routes.
func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newDashboardHandler(reportingService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.getSummary)
		dashboard.GET("/stats", h.getStats)
		dashboard.GET("/monthly", h.getMonthly)
	}
}

// getSummary godoc
// @Summary Dashboard summary
// @Description Aggregates totals over the given period; account, charity and loan figures are point-in-time
// @Tags dashboard
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.Response{data=dto.SummaryResponse}
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *dashboardHandler) getSummary(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.DashboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	summary, err := h.reportingService.GetSummary(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.SummaryResponse{Summary: *summary}))
}

// getStats godoc
// @Summary Per-category totals
// @Tags dashboard
// @Produce json
// @Param type query string false "Record type (income, expense, purchase)"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.Response{data=dto.StatsResponse}
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *dashboardHandler) getStats(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.StatsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}
	if params.Type == "" {
		params.Type = "expense"
	}

	stats, err := h.reportingService.GetCategoryStats(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.StatsResponse{Type: params.Type, Stats: stats}))
}

// getMonthly godoc
// @Summary Monthly income vs spend
// @Description Returns the last twelve calendar months including empty ones
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.Response{data=dto.MonthlyResponse}
// @Security BearerAuth
// @Router /dashboard/monthly [get]
func (h *dashboardHandler) getMonthly(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	months, err := h.reportingService.GetMonthlySeries(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.MonthlyResponse{Months: months}))
}
