package services

import (
	"context"

	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	"github.com/bizbooks/bookkeeping_app/internal/dto"
	"github.com/bizbooks/bookkeeping_app/internal/utils/pagination"
)

// AuthSvc registers and authenticates users.
type AuthSvc interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, error)
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}

// IncomeSvc manages income records and their charity accrual.
type IncomeSvc interface {
	CreateIncome(ctx context.Context, userID string, req dto.CreateIncomeRequest) (*domain.Income, *domain.Charity, error)
	GetIncome(ctx context.Context, userID, incomeID string) (*domain.Income, error)
	ListIncomes(ctx context.Context, userID string, params dto.ListIncomeParams) ([]domain.Income, pagination.Page, error)
	UpdateIncome(ctx context.Context, userID, incomeID string, req dto.UpdateIncomeRequest) (*domain.Income, error)
	DeleteIncome(ctx context.Context, userID, incomeID string) error
}

// ExpenseSvc manages expense records.
type ExpenseSvc interface {
	CreateExpense(ctx context.Context, userID string, req dto.CreateSpendRequest) (*domain.Expense, error)
	GetExpense(ctx context.Context, userID, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, userID string, params dto.ListSpendParams) ([]domain.Expense, pagination.Page, error)
	UpdateExpense(ctx context.Context, userID, expenseID string, req dto.UpdateSpendRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID string) error
}

// PurchaseSvc manages purchase records.
type PurchaseSvc interface {
	CreatePurchase(ctx context.Context, userID string, req dto.CreateSpendRequest) (*domain.Purchase, error)
	GetPurchase(ctx context.Context, userID, purchaseID string) (*domain.Purchase, error)
	ListPurchases(ctx context.Context, userID string, params dto.ListSpendParams) ([]domain.Purchase, pagination.Page, error)
	UpdatePurchase(ctx context.Context, userID, purchaseID string, req dto.UpdateSpendRequest) (*domain.Purchase, error)
	DeletePurchase(ctx context.Context, userID, purchaseID string) error
}

// SaleSvc manages sale records.
type SaleSvc interface {
	CreateSale(ctx context.Context, userID string, req dto.CreateSaleRequest) (*domain.Sale, error)
	GetSale(ctx context.Context, userID, saleID string) (*domain.Sale, error)
	ListSales(ctx context.Context, userID string, params dto.ListSalesParams) ([]domain.Sale, pagination.Page, error)
	UpdateSale(ctx context.Context, userID, saleID string, req dto.UpdateSaleRequest) (*domain.Sale, error)
	DeleteSale(ctx context.Context, userID, saleID string) error
}

// CharitySvc manages charitable obligations and payments against them.
type CharitySvc interface {
	CreateCharity(ctx context.Context, userID string, req dto.CreateCharityRequest) (*domain.Charity, error)
	GetCharity(ctx context.Context, userID, charityID string) (*domain.Charity, error)
	ListCharities(ctx context.Context, userID string, params dto.ListCharityParams) ([]domain.Charity, pagination.Page, error)
	UpdateCharity(ctx context.Context, userID, charityID string, req dto.UpdateCharityRequest) (*domain.Charity, error)
	DeleteCharity(ctx context.Context, userID, charityID string) error
	RecordPayment(ctx context.Context, userID, charityID string, req dto.CharityPaymentRequest) (*domain.Charity, error)
}

// AccountSvc manages accounts and transfers between them.
type AccountSvc interface {
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccount(ctx context.Context, userID, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, userID, accountID string) error
	Transfer(ctx context.Context, userID string, req dto.TransferRequest) (*domain.Account, *domain.Account, error)
}

// LoanSvc manages loans and payments against them.
type LoanSvc interface {
	CreateLoan(ctx context.Context, userID string, req dto.CreateLoanRequest) (*domain.Loan, error)
	GetLoan(ctx context.Context, userID, loanID string) (*domain.Loan, error)
	ListLoans(ctx context.Context, userID string, params dto.ListLoansParams) ([]domain.Loan, pagination.Page, error)
	UpdateLoan(ctx context.Context, userID, loanID string, req dto.UpdateLoanRequest) (*domain.Loan, error)
	DeleteLoan(ctx context.Context, userID, loanID string) error
	RecordPayment(ctx context.Context, userID, loanID string, req dto.LoanPaymentRequest) (*domain.Loan, error)
}

// CategorySvc manages user-scoped categories.
type CategorySvc interface {
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string, params dto.ListCategoriesParams) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	// DeleteCategory returns the usage counts alongside ErrBusinessRule when
	// the category is still referenced.
	DeleteCategory(ctx context.Context, userID, categoryID string) (*domain.CategoryUsage, error)
}

// ReportingSvc serves the dashboard aggregates.
type ReportingSvc interface {
	GetSummary(ctx context.Context, userID string, params dto.DashboardParams) (*domain.DashboardSummary, error)
	GetCategoryStats(ctx context.Context, userID string, params dto.StatsParams) ([]domain.CategoryStat, error)
	GetMonthlySeries(ctx context.Context, userID string) ([]domain.MonthlyStat, error)
}

// ServiceContainer bundles every service for route registration.
type ServiceContainer struct {
	Auth      AuthSvc
	Income    IncomeSvc
	Expense   ExpenseSvc
	Purchase  PurchaseSvc
	Sale      SaleSvc
	Charity   CharitySvc
	Account   AccountSvc
	Loan      LoanSvc
	Category  CategorySvc
	Reporting ReportingSvc
}
