package dto

import (
	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
)

// DashboardParams select the reporting period. Omitting both bounds means
// all-time.
type DashboardParams struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// StatsParams select which record type to aggregate per category.
type StatsParams struct {
	Type string `form:"type,default=expense" binding:"omitempty,oneof=income expense purchase"`
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// SummaryResponse wraps the dashboard summary.
type SummaryResponse struct {
	Summary domain.DashboardSummary `json:"summary"`
}

// StatsResponse wraps per-category aggregates.
type StatsResponse struct {
	Type  string                `json:"type"`
	Stats []domain.CategoryStat `json:"stats"`
}

// MonthlyResponse wraps the 12-month income-vs-spend series.
type MonthlyResponse struct {
	Months []domain.MonthlyStat `json:"months"`
}
