package pgsql

import (
	"context"
	"errors"

	"github.com/bizbooks/bookkeeping_app/internal/apperrors"
	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/bizbooks/bookkeeping_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

// CreateUser inserts the user row, seeds the default categories and the
// initial cash account, all within one transaction.
func (r *PgxUserRepository) CreateUser(ctx context.Context, user domain.User, categories []domain.Category, account domain.Account) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	userQuery := `
		INSERT INTO users (user_id, username, email, password_hash, full_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, userQuery,
		user.UserID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.FullName,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "username or email already registered", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert user "+user.UserID, err)
	}

	// Seed categories in one batch
	batch := &pgx.Batch{}
	categoryQuery := `
		INSERT INTO categories (category_id, user_id, name, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, cat := range categories {
		batch.Queue(categoryQuery, cat.CategoryID, cat.UserID, cat.Name, cat.Type, cat.CreatedAt, cat.UpdatedAt)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to seed categories for user "+user.UserID, err)
	}

	accountQuery := `
		INSERT INTO accounts (account_id, user_id, name, account_type, balance, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, accountQuery,
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
		return apperrors.NewAppError(500, "failed to seed cash account for user "+user.UserID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, username, email, password_hash, full_name, created_at, updated_at
		FROM users
		WHERE user_id = $1;
	`
	return r.scanUser(r.Pool.QueryRow(ctx, query, userID))
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT user_id, username, email, password_hash, full_name, created_at, updated_at
		FROM users
		WHERE email = $1;
	`
	return r.scanUser(r.Pool.QueryRow(ctx, query, email))
}

func (r *PgxUserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.UserID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan user row", err)
	}
	return &u, nil
}
