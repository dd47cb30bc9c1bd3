package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/bizbooks/bookkeeping_app/internal/apperrors"
	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/bizbooks/bookkeeping_app/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, user_id, name, account_type, balance, description, created_at, updated_at`

func (r *PgxAccountRepository) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (account_id, user_id, name, account_type, balance, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		account.AccountID,
		account.UserID,
		account.Name,
		account.AccountType,
		account.Balance,
		account.Description,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert account "+account.AccountID, err)
	}
	return &account, nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 AND user_id = $2;`
	return scanAccount(r.Pool.QueryRow(ctx, query, accountID, userID))
}

// ListAccounts returns every account the user holds. The set is small by
// nature, so no pagination.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 ORDER BY created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts for user "+userID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows for user "+userID, err)
	}
	return accounts, nil
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET name = $3, account_type = $4, balance = $5, description = $6, updated_at = $7
		WHERE account_id = $1 AND user_id = $2
		RETURNING created_at;
	`
	err := r.Pool.QueryRow(ctx, query,
		account.AccountID,
		account.UserID,
		account.Name,
		account.AccountType,
		account.Balance,
		account.Description,
		account.UpdatedAt,
	).Scan(&account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to update account "+account.AccountID, err)
	}
	return &account, nil
}

// DeleteAccount removes an account after verifying, under a row lock, that
// its balance is exactly zero.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, userID, accountID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var balance decimal.Decimal
	err = tx.QueryRow(ctx,
		`SELECT balance FROM accounts WHERE account_id = $1 AND user_id = $2 FOR UPDATE;`,
		accountID, userID,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock account "+accountID, err)
	}
	if !balance.IsZero() {
		return apperrors.NewBusinessRuleError("Cannot delete account with non-zero balance")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1 AND user_id = $2;`, accountID, userID); err != nil {
		return apperrors.NewAppError(500, "failed to delete account "+accountID, err)
	}

	return r.Commit(ctx, tx)
}

// Transfer moves money between two accounts of the same user. Both rows are
// locked in account_id order so two opposing transfers cannot deadlock. The
// debit leg is checked against the source balance, then both balances move
// and two audit legs (negative and positive, netting to zero) are appended.
// One transaction.
func (r *PgxAccountRepository) Transfer(ctx context.Context, userID, fromAccountID, toAccountID string, amount decimal.Decimal, date time.Time, description string) (*domain.Account, *domain.Account, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = ANY($1) AND user_id = $2
		ORDER BY account_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, lockQuery, []string{fromAccountID, toAccountID}, userID)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to lock accounts for transfer", err)
	}

	var from, to *domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			rows.Close()
			return nil, nil, err
		}
		switch a.AccountID {
		case fromAccountID:
			from = a
		case toAccountID:
			to = a
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating locked accounts", err)
	}
	if from == nil || to == nil {
		return nil, nil, apperrors.ErrNotFound
	}

	if from.Balance.LessThan(amount) {
		return nil, nil, apperrors.NewBusinessRuleError("Insufficient balance in source account")
	}

	now := time.Now()
	from.Balance = from.Balance.Sub(amount)
	to.Balance = to.Balance.Add(amount)
	from.UpdatedAt = now
	to.UpdatedAt = now

	balanceQuery := `UPDATE accounts SET balance = $3, updated_at = $4 WHERE account_id = $1 AND user_id = $2;`
	if _, err := tx.Exec(ctx, balanceQuery, from.AccountID, userID, from.Balance, now); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to debit account "+from.AccountID, err)
	}
	if _, err := tx.Exec(ctx, balanceQuery, to.AccountID, userID, to.Balance, now); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to credit account "+to.AccountID, err)
	}

	audit := domain.AuditFields{CreatedAt: now, UpdatedAt: now}
	if err := insertAuditRow(ctx, tx, domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		Type:            domain.TxnTransfer,
		ReferenceTable:  "accounts",
		ReferenceID:     from.AccountID,
		Amount:          amount.Neg(),
		Description:     description,
		TransactionDate: date,
		AuditFields:     audit,
	}); err != nil {
		return nil, nil, err
	}
	if err := insertAuditRow(ctx, tx, domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		Type:            domain.TxnTransfer,
		ReferenceTable:  "accounts",
		ReferenceID:     to.AccountID,
		Amount:          amount,
		Description:     description,
		TransactionDate: date,
		AuditFields:     audit,
	}); err != nil {
		return nil, nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.AccountID,
		&a.UserID,
		&a.Name,
		&a.AccountType,
		&a.Balance,
		&a.Description,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan account row", err)
	}
	return &a, nil
}
