package domain

// CategoryType classifies which record type a category applies to.
type CategoryType string

const (
	CategoryIncome   CategoryType = "income"
	CategoryExpense  CategoryType = "expense"
	CategoryPurchase CategoryType = "purchase"
)

// Category is a user-scoped (name, type) pair. Income/Expense/Purchase rows
// reference categories by name, not id; an intentional denormalization.
type Category struct {
	CategoryID string       `json:"categoryID"` // Primary Key (UUID)
	UserID     string       `json:"userID"`
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
	AuditFields
}

// CategoryUsage reports how many rows of each record type still reference a
// category by name. Deletion is blocked while any count is non-zero.
type CategoryUsage struct {
	Incomes   int64 `json:"incomes"`
	Expenses  int64 `json:"expenses"`
	Purchases int64 `json:"purchases"`
}

// Total returns the combined reference count.
func (u CategoryUsage) Total() int64 {
	return u.Incomes + u.Expenses + u.Purchases
}

// DefaultCategories are seeded for every new user at registration.
var DefaultCategories = []struct {
	Name string
	Type CategoryType
}{
	{"Salary", CategoryIncome},
	{"Sales", CategoryIncome},
	{"Other Income", CategoryIncome},
	{"Rent", CategoryExpense},
	{"Utilities", CategoryExpense},
	{"Supplies", CategoryExpense},
	{"Other Expense", CategoryExpense},
	{"Inventory", CategoryPurchase},
	{"Equipment", CategoryPurchase},
}
