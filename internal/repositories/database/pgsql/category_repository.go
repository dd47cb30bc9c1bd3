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

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, user_id, name, type, created_at, updated_at`

func (r *PgxCategoryRepository) CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	query := `
		INSERT INTO categories (category_id, user_id, name, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.UserID,
		category.Name,
		category.Type,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewAppError(409, "category already exists", apperrors.ErrDuplicate)
		}
		return nil, apperrors.NewAppError(500, "failed to insert category "+category.CategoryID, err)
	}
	return &category, nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1 AND user_id = $2;`
	return scanCategory(r.Pool.QueryRow(ctx, query, categoryID, userID))
}

// ListCategories returns the user's categories, optionally narrowed to one
// type. The set is small, so no pagination.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, userID string, categoryType string) ([]domain.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE user_id = $1 AND ($2::text = '' OR type = $2)
		ORDER BY type ASC, name ASC;
	`
	rows, err := r.Pool.Query(ctx, query, userID, categoryType)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories for user "+userID, err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category rows for user "+userID, err)
	}
	return categories, nil
}

// UpdateCategory renames a category. Existing records keep the old name:
// category references are by name, and renames do not cascade.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	query := `
		UPDATE categories
		SET name = $3, updated_at = $4
		WHERE category_id = $1 AND user_id = $2
		RETURNING type, created_at;
	`
	err := r.Pool.QueryRow(ctx, query,
		category.CategoryID,
		category.UserID,
		category.Name,
		category.UpdatedAt,
	).Scan(&category.Type, &category.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, apperrors.NewAppError(409, "category already exists", apperrors.ErrDuplicate)
		}
		return nil, apperrors.NewAppError(500, "failed to update category "+category.CategoryID, err)
	}
	return &category, nil
}

// DeleteCategory locks the category row, counts the income, expense and
// purchase rows still carrying its name, and deletes it only when unused.
// Lock, count and delete share one transaction so a record created
// concurrently cannot slip past the usage check.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, userID, categoryID string) (*domain.CategoryUsage, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var name string
	err = tx.QueryRow(ctx,
		`SELECT name FROM categories WHERE category_id = $1 AND user_id = $2 FOR UPDATE;`,
		categoryID, userID,
	).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock category "+categoryID, err)
	}

	usageQuery := `
		SELECT
			(SELECT COUNT(*) FROM incomes WHERE user_id = $1 AND category = $2),
			(SELECT COUNT(*) FROM expenses WHERE user_id = $1 AND category = $2),
			(SELECT COUNT(*) FROM purchases WHERE user_id = $1 AND category = $2);
	`
	var usage domain.CategoryUsage
	if err := tx.QueryRow(ctx, usageQuery, userID, name).Scan(&usage.Incomes, &usage.Expenses, &usage.Purchases); err != nil {
		return nil, apperrors.NewAppError(500, "failed to count usage for category "+name, err)
	}
	if usage.Total() > 0 {
		return &usage, apperrors.NewBusinessRuleError("Cannot delete category that is in use")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM categories WHERE category_id = $1 AND user_id = $2;`, categoryID, userID); err != nil {
		return nil, apperrors.NewAppError(500, "failed to delete category "+categoryID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return nil, nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	err := row.Scan(
		&c.CategoryID,
		&c.UserID,
		&c.Name,
		&c.Type,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan category row", err)
	}
	return &c, nil
}
