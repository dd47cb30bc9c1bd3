package repositories

import (
	"context"
	"time"

	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListFilter carries the common pagination window plus the per-entity list
// filters. Empty string / nil fields mean "no filter".
type ListFilter struct {
	Category      string
	PaymentMethod string
	Status        string
	Direction     string
	From          *time.Time
	To            *time.Time
	Limit         int
	Offset        int
}

// UserRepository persists users. CreateUser seeds the default categories and
// the initial cash account in the same transaction as the user row.
type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User, categories []domain.Category, account domain.Account) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// IncomeRepository persists incomes. The mutating methods run the
// unit-of-work protocol: income row, linked charity row, audit ledger row,
// one transaction, primary before derived before audit.
type IncomeRepository interface {
	// CreateIncome inserts the income, reads back the storage-computed
	// charity_required, inserts the linked charity row and the audit row.
	// Returns the income and charity as committed.
	CreateIncome(ctx context.Context, income domain.Income, charityDescription string) (*domain.Income, *domain.Charity, error)
	FindIncomeByID(ctx context.Context, userID, incomeID string) (*domain.Income, error)
	ListIncomes(ctx context.Context, userID string, filter ListFilter) ([]domain.Income, int64, error)
	// UpdateIncome rewrites the income and, when the amount changed, the
	// linked charity's amount_required and the audit row's amount. The
	// charity's amount_paid and status are deliberately left untouched.
	UpdateIncome(ctx context.Context, income domain.Income) (*domain.Income, error)
	DeleteIncome(ctx context.Context, userID, incomeID string) error
}

// ExpenseRepository persists expenses; every mutation maintains the matching
// audit ledger row in the same transaction.
type ExpenseRepository interface {
	CreateExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error)
	FindExpenseByID(ctx context.Context, userID, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, userID string, filter ListFilter) ([]domain.Expense, int64, error)
	UpdateExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID string) error
}

// PurchaseRepository persists purchases; same audit contract as expenses.
type PurchaseRepository interface {
	CreatePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error)
	FindPurchaseByID(ctx context.Context, userID, purchaseID string) (*domain.Purchase, error)
	ListPurchases(ctx context.Context, userID string, filter ListFilter) ([]domain.Purchase, int64, error)
	UpdatePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error)
	DeletePurchase(ctx context.Context, userID, purchaseID string) error
}

// SaleRepository persists sales; profit columns are storage-computed and
// returned on every write.
type SaleRepository interface {
	CreateSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error)
	FindSaleByID(ctx context.Context, userID, saleID string) (*domain.Sale, error)
	ListSales(ctx context.Context, userID string, filter ListFilter) ([]domain.Sale, int64, error)
	UpdateSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error)
	DeleteSale(ctx context.Context, userID, saleID string) error
}

// CharityRepository persists charitable obligations. RecordPayment locks the
// row, enforces the overpayment rule, and appends the audit row atomically.
type CharityRepository interface {
	CreateCharity(ctx context.Context, charity domain.Charity) (*domain.Charity, error)
	FindCharityByID(ctx context.Context, userID, charityID string) (*domain.Charity, error)
	ListCharities(ctx context.Context, userID string, filter ListFilter) ([]domain.Charity, int64, error)
	UpdateCharity(ctx context.Context, charity domain.Charity) (*domain.Charity, error)
	DeleteCharity(ctx context.Context, userID, charityID string) error
	RecordPayment(ctx context.Context, userID, charityID string, amount decimal.Decimal, date time.Time) (*domain.Charity, error)
}

// AccountRepository persists accounts. Transfer locks both rows in
// deterministic order, enforces the balance rules, and appends the two
// audit legs atomically. DeleteAccount enforces the zero-balance rule under
// the same row lock.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	DeleteAccount(ctx context.Context, userID, accountID string) error
	Transfer(ctx context.Context, userID, fromAccountID, toAccountID string, amount decimal.Decimal, date time.Time, description string) (*domain.Account, *domain.Account, error)
}

// LoanRepository persists loans. RecordPayment locks the row, enforces the
// active-status and overpayment rules, flips status to paid on zero balance,
// and appends the audit row atomically.
type LoanRepository interface {
	CreateLoan(ctx context.Context, loan domain.Loan) (*domain.Loan, error)
	FindLoanByID(ctx context.Context, userID, loanID string) (*domain.Loan, error)
	ListLoans(ctx context.Context, userID string, filter ListFilter) ([]domain.Loan, int64, error)
	UpdateLoan(ctx context.Context, loan domain.Loan) (*domain.Loan, error)
	DeleteLoan(ctx context.Context, userID, loanID string) error
	RecordPayment(ctx context.Context, userID, loanID string, amount decimal.Decimal, date time.Time) (*domain.Loan, error)
}

// CategoryRepository persists user-scoped categories.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
	FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string, categoryType string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
	// DeleteCategory removes the category unless income/expense/purchase
	// rows still reference its name. The usage check and the delete run in
	// one transaction; a refusal returns the counts alongside the business
	// rule error.
	DeleteCategory(ctx context.Context, userID, categoryID string) (*domain.CategoryUsage, error)
}

// ReportingRepository reads aggregates for the dashboard. All methods are
// pure SQL aggregation; nothing here mutates state.
type ReportingRepository interface {
	GetSummary(ctx context.Context, userID string, from, to *time.Time) (*domain.DashboardSummary, error)
	GetCategoryStats(ctx context.Context, userID string, recordType string, from, to *time.Time) ([]domain.CategoryStat, error)
	GetMonthlySeries(ctx context.Context, userID string, months int) ([]domain.MonthlyStat, error)
}

// Container bundles every repository for wiring.
type Container struct {
	User      UserRepository
	Income    IncomeRepository
	Expense   ExpenseRepository
	Purchase  PurchaseRepository
	Sale      SaleRepository
	Charity   CharityRepository
	Account   AccountRepository
	Loan      LoanRepository
	Category  CategoryRepository
	Reporting ReportingRepository
}
