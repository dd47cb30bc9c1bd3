package dto

import (
	"time"

	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create an account.
type CreateAccountRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	AccountType string  `json:"accountType" binding:"required,oneof=cash bank savings investment"`
	Balance     float64 `json:"balance" binding:"gte=0"`
	Description string  `json:"description" binding:"max=500"`
}

// UpdateAccountRequest defines the fields allowed on an account update.
// Balance edits here are direct corrections; money movement between accounts
// must go through the transfer protocol.
type UpdateAccountRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=100"`
	AccountType *string  `json:"accountType" binding:"omitempty,oneof=cash bank savings investment"`
	Balance     *float64 `json:"balance" binding:"omitempty,gte=0"`
	Description *string  `json:"description" binding:"omitempty,max=500"`
}

// TransferRequest moves money between two caller-owned accounts.
type TransferRequest struct {
	FromAccountID string  `json:"from_account_id" binding:"required,uuid"`
	ToAccountID   string  `json:"to_account_id" binding:"required,uuid"`
	Amount        float64 `json:"amount" binding:"required,gte=0.01"`
	Date          string  `json:"date" binding:"required,datetime=2006-01-02"`
	Description   string  `json:"description" binding:"max=500"`
}

// AccountResponse is the wire view of an account row.
type AccountResponse struct {
	AccountID   string          `json:"accountID"`
	Name        string          `json:"name"`
	AccountType string          `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ListAccountsResponse wraps all accounts of the caller (accounts are few;
// no pagination).
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// TransferResponse returns both updated accounts after a transfer.
type TransferResponse struct {
	FromAccount AccountResponse `json:"fromAccount"`
	ToAccount   AccountResponse `json:"toAccount"`
}

// ToAccountResponse converts a domain.Account to its wire view.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		Name:        a.Name,
		AccountType: string(a.AccountType),
		Balance:     a.Balance,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToListAccountsResponse converts all accounts of a user.
func ToListAccountsResponse(items []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(items))
	for i := range items {
		res[i] = ToAccountResponse(&items[i])
	}
	return ListAccountsResponse{Accounts: res}
}
