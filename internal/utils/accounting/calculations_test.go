package accounting_test

import (
	"testing"

	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	"github.com/bizbooks/bookkeeping_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCharityRequired(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"whole amount", "1000", "60"},
		{"rounds to cents", "1234.56", "74.07"},
		{"small amount", "0.01", "0"},
		{"zero", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.CharityRequired(dec(tt.amount))
			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestProfit(t *testing.T) {
	assert.True(t, dec("50").Equal(accounting.Profit(dec("100"), dec("150"))))
	assert.True(t, dec("-25.50").Equal(accounting.Profit(dec("100"), dec("74.50"))))
}

func TestProfitPercentage(t *testing.T) {
	tests := []struct {
		name  string
		cost  string
		price string
		want  string
	}{
		{"fifty percent", "100", "150", "50"},
		{"loss", "200", "150", "-25"},
		{"rounds", "3", "4", "33.33"},
		{"zero cost yields zero", "0", "150", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.ProfitPercentage(dec(tt.cost), dec(tt.price))
			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestCharityStatus(t *testing.T) {
	tests := []struct {
		name     string
		required string
		paid     string
		want     domain.CharityStatus
	}{
		{"nothing paid", "60", "0", domain.CharityPending},
		{"partially paid", "60", "30", domain.CharityPartial},
		{"exactly paid", "60", "60", domain.CharityPaid},
		{"overpaid via lowered requirement", "40", "60", domain.CharityPaid},
		{"zero required zero paid", "0", "0", domain.CharityPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, accounting.CharityStatus(dec(tt.required), dec(tt.paid)))
		})
	}
}

func TestLoanStatusAfterPayment(t *testing.T) {
	assert.Equal(t, domain.LoanActive, accounting.LoanStatusAfterPayment(dec("0.01")))
	assert.Equal(t, domain.LoanPaid, accounting.LoanStatusAfterPayment(dec("0")))
	assert.Equal(t, domain.LoanPaid, accounting.LoanStatusAfterPayment(dec("-5")))
}
