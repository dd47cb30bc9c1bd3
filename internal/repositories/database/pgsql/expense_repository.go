package pgsql

import (
	"context"
	"errors"

	"github.com/bizbooks/bookkeeping_app/internal/apperrors"
	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/bizbooks/bookkeeping_app/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepository {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, user_id, amount, category, payment_method, spend_date, receipt_path, description, created_at, updated_at`

// CreateExpense inserts the expense and its audit row in one transaction.
func (r *PgxExpenseRepository) CreateExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO expenses (expense_id, user_id, amount, category, payment_method, spend_date, receipt_path, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		expense.ExpenseID,
		expense.UserID,
		expense.Amount,
		expense.Category,
		expense.PaymentMethod,
		expense.SpendDate,
		expense.ReceiptPath,
		expense.Description,
		expense.CreatedAt,
		expense.UpdatedAt,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert expense "+expense.ExpenseID, err)
	}

	if err := insertAuditRow(ctx, tx, domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          expense.UserID,
		Type:            domain.TxnExpense,
		ReferenceTable:  "expenses",
		ReferenceID:     expense.ExpenseID,
		Amount:          expense.Amount,
		Description:     expense.Description,
		TransactionDate: expense.SpendDate,
		AuditFields:     expense.AuditFields,
	}); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, userID, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1 AND user_id = $2;`
	return scanExpense(r.Pool.QueryRow(ctx, query, expenseID, userID))
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, userID string, filter portsrepo.ListFilter) ([]domain.Expense, int64, error) {
	where := `
		WHERE user_id = $1
		AND ($2::text = '' OR category = $2)
		AND ($3::text = '' OR payment_method = $3)
		AND ($4::date IS NULL OR spend_date >= $4)
		AND ($5::date IS NULL OR spend_date <= $5)
	`
	args := []any{userID, filter.Category, filter.PaymentMethod, filter.From, filter.To}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM expenses `+where, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count expenses for user "+userID, err)
	}

	query := `SELECT ` + expenseColumns + ` FROM expenses ` + where + `
		ORDER BY spend_date DESC, created_at DESC
		LIMIT $6 OFFSET $7;
	`
	rows, err := r.Pool.Query(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query expenses for user "+userID, err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, err
		}
		expenses = append(expenses, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating expense rows for user "+userID, err)
	}
	return expenses, total, nil
}

// UpdateExpense rewrites the expense and revises its audit row in place, in
// one transaction.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE expenses
		SET amount = $3, category = $4, payment_method = $5, spend_date = $6, receipt_path = $7, description = $8, updated_at = $9
		WHERE expense_id = $1 AND user_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query,
		expense.ExpenseID,
		expense.UserID,
		expense.Amount,
		expense.Category,
		expense.PaymentMethod,
		expense.SpendDate,
		expense.ReceiptPath,
		expense.Description,
		expense.UpdatedAt,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update expense "+expense.ExpenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	if err := reviseAuditRow(ctx, tx, expense.UserID, "expenses", expense.ExpenseID, domain.Transaction{
		Amount:          expense.Amount,
		Description:     expense.Description,
		TransactionDate: expense.SpendDate,
		AuditFields:     expense.AuditFields,
	}); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &expense, nil
}

// DeleteExpense removes the expense and its audit row in one transaction.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := deleteAuditRows(ctx, tx, userID, "expenses", expenseID); err != nil {
		return err
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1 AND user_id = $2;`, expenseID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete expense "+expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var e domain.Expense
	err := row.Scan(
		&e.ExpenseID,
		&e.UserID,
		&e.Amount,
		&e.Category,
		&e.PaymentMethod,
		&e.SpendDate,
		&e.ReceiptPath,
		&e.Description,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan expense row", err)
	}
	return &e, nil
}
