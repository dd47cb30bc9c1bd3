package services

import (
	"context"
	"time"

	"github.com/bizbooks/bookkeeping_app/internal/apperrors"
	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/bizbooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/bizbooks/bookkeeping_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates the account service.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvc {
	return &accountService{accountRepo: accountRepo}
}

func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		AccountType: domain.AccountType(req.AccountType),
		Balance:     decimal.NewFromFloat(req.Balance),
		Description: req.Description,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	created, err := s.accountRepo.CreateAccount(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to create account", "user_id", userID)
		return nil, err
	}

	s.LogInfo(ctx, "Account created", "account_id", created.AccountID)
	return created, nil
}

func (s *accountService) GetAccount(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, userID, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, userID)
}

func (s *accountService) UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.AccountType != nil {
		account.AccountType = domain.AccountType(*req.AccountType)
	}
	if req.Balance != nil {
		account.Balance = decimal.NewFromFloat(*req.Balance)
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	account.UpdatedAt = time.Now()

	updated, err := s.accountRepo.UpdateAccount(ctx, *account)
	if err != nil {
		s.LogError(ctx, err, "Failed to update account", "account_id", accountID)
		return nil, err
	}
	return updated, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, userID, accountID string) error {
	if err := s.accountRepo.DeleteAccount(ctx, userID, accountID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Account deleted", "account_id", accountID)
	return nil
}

// Transfer moves money between two of the caller's accounts; a same-account
// transfer is rejected before touching storage.
func (s *accountService) Transfer(ctx context.Context, userID string, req dto.TransferRequest) (*domain.Account, *domain.Account, error) {
	if req.FromAccountID == req.ToAccountID {
		return nil, nil, apperrors.NewBusinessRuleError("Cannot transfer to the same account")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, nil, err
	}

	from, to, err := s.accountRepo.Transfer(ctx, userID, req.FromAccountID, req.ToAccountID,
		decimal.NewFromFloat(req.Amount), date, req.Description)
	if err != nil {
		s.LogError(ctx, err, "Failed to transfer",
			"from_account_id", req.FromAccountID, "to_account_id", req.ToAccountID)
		return nil, nil, err
	}

	s.LogInfo(ctx, "Transfer completed",
		"from_account_id", from.AccountID, "to_account_id", to.AccountID)
	return from, to, nil
}
