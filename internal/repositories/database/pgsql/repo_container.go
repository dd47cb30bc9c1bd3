package pgsql

import (
	portsrepo "github.com/bizbooks/bookkeeping_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositories wires every Postgres repository onto one shared pool.
func NewRepositories(pool *pgxpool.Pool) *portsrepo.Container {
	return &portsrepo.Container{
		User:      newPgxUserRepository(pool),
		Income:    newPgxIncomeRepository(pool),
		Expense:   newPgxExpenseRepository(pool),
		Purchase:  newPgxPurchaseRepository(pool),
		Sale:      newPgxSaleRepository(pool),
		Charity:   newPgxCharityRepository(pool),
		Account:   newPgxAccountRepository(pool),
		Loan:      newPgxLoanRepository(pool),
		Category:  newPgxCategoryRepository(pool),
		Reporting: newPgxReportingRepository(pool),
	}
}
