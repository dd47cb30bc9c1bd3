package services

import (
	portsrepo "github.com/bizbooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bookkeeping_app/internal/core/ports/services"
)

// NewServiceContainer wires every service onto the repository container.
func NewServiceContainer(repos *portsrepo.Container, authCfg AuthServiceConfig) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:      NewAuthService(repos.User, authCfg),
		Income:    NewIncomeService(repos.Income),
		Expense:   NewExpenseService(repos.Expense),
		Purchase:  NewPurchaseService(repos.Purchase),
		Sale:      NewSaleService(repos.Sale),
		Charity:   NewCharityService(repos.Charity),
		Account:   NewAccountService(repos.Account),
		Loan:      NewLoanService(repos.Loan),
		Category:  NewCategoryService(repos.Category),
		Reporting: NewReportingService(repos.Reporting),
	}
}
