package domain

import "github.com/shopspring/decimal"

// DashboardSummary aggregates the books for a period.
type DashboardSummary struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	TotalPurchases   decimal.Decimal `json:"totalPurchases"`
	SalesRevenue     decimal.Decimal `json:"salesRevenue"`
	SalesProfit      decimal.Decimal `json:"salesProfit"`
	CharityRequired  decimal.Decimal `json:"charityRequired"`
	CharityPaid      decimal.Decimal `json:"charityPaid"`
	CharityRemaining decimal.Decimal `json:"charityRemaining"`
	AccountsBalance  decimal.Decimal `json:"accountsBalance"`
	LoansOutstanding decimal.Decimal `json:"loansOutstanding"`
}

// CategoryStat is one GROUP BY bucket of a per-category aggregate.
type CategoryStat struct {
	Category string          `json:"category"`
	Count    int64           `json:"count"`
	Total    decimal.Decimal `json:"total"`
}

// MonthlyStat is one month of the income-vs-spend series.
type MonthlyStat struct {
	Month     string          `json:"month"` // YYYY-MM
	Income    decimal.Decimal `json:"income"`
	Expenses  decimal.Decimal `json:"expenses"`
	Purchases decimal.Decimal `json:"purchases"`
}
