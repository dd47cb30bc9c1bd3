package accounting

import (
	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// charityRate is the fixed share of every income accrued as a charitable
// obligation.
var charityRate = decimal.NewFromFloat(0.06)

// CharityRequired computes the charity accrual for an income amount,
// rounded to 2 decimal places. Mirrors the generated column on incomes.
func CharityRequired(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(charityRate).Round(2)
}

// Profit computes the margin of a sale.
func Profit(cost, sellingPrice decimal.Decimal) decimal.Decimal {
	return sellingPrice.Sub(cost)
}

// ProfitPercentage computes profit as a percentage of cost, rounded to 2
// decimal places. A zero-cost sale yields 0 rather than dividing by zero.
func ProfitPercentage(cost, sellingPrice decimal.Decimal) decimal.Decimal {
	if cost.IsZero() {
		return decimal.Zero
	}
	return Profit(cost, sellingPrice).Div(cost).Mul(decimal.NewFromInt(100)).Round(2)
}

// CharityStatus derives the status a charity row must carry after a payment.
// The paid check runs first: required == paid == 0 counts as settled, not
// pending.
func CharityStatus(required, paid decimal.Decimal) domain.CharityStatus {
	remaining := required.Sub(paid)
	switch {
	case remaining.LessThanOrEqual(decimal.Zero):
		return domain.CharityPaid
	case paid.IsZero():
		return domain.CharityPending
	default:
		return domain.CharityPartial
	}
}

// LoanStatusAfterPayment derives the status a loan must carry once a payment
// has been applied to its balance. Only active loans accept payments, so the
// input status is always active.
func LoanStatusAfterPayment(newBalance decimal.Decimal) domain.LoanStatus {
	if newBalance.LessThanOrEqual(decimal.Zero) {
		return domain.LoanPaid
	}
	return domain.LoanActive
}
