package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/bizbooks/bookkeeping_app/internal/apperrors"
	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/bizbooks/bookkeeping_app/internal/core/ports/repositories"
	"github.com/bizbooks/bookkeeping_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLoanRepository struct {
	BaseRepository
}

func newPgxLoanRepository(pool *pgxpool.Pool) portsrepo.LoanRepository {
	return &PgxLoanRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LoanRepository = (*PgxLoanRepository)(nil)

const loanColumns = `loan_id, user_id, lender_name, principal_amount, current_balance, interest_rate, start_date, due_date, status, direction, description, created_at, updated_at`

func (r *PgxLoanRepository) CreateLoan(ctx context.Context, loan domain.Loan) (*domain.Loan, error) {
	query := `
		INSERT INTO loans (loan_id, user_id, lender_name, principal_amount, current_balance, interest_rate, start_date, due_date, status, direction, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		loan.LoanID,
		loan.UserID,
		loan.LenderName,
		loan.PrincipalAmount,
		loan.CurrentBalance,
		loan.InterestRate,
		loan.StartDate,
		loan.DueDate,
		loan.Status,
		loan.Direction,
		loan.Description,
		loan.CreatedAt,
		loan.UpdatedAt,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert loan "+loan.LoanID, err)
	}
	return &loan, nil
}

func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, userID, loanID string) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE loan_id = $1 AND user_id = $2;`
	return scanLoan(r.Pool.QueryRow(ctx, query, loanID, userID))
}

func (r *PgxLoanRepository) ListLoans(ctx context.Context, userID string, filter portsrepo.ListFilter) ([]domain.Loan, int64, error) {
	where := `
		WHERE user_id = $1
		AND ($2::text = '' OR status = $2)
		AND ($3::text = '' OR direction = $3)
	`
	args := []any{userID, filter.Status, filter.Direction}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM loans `+where, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count loans for user "+userID, err)
	}

	query := `SELECT ` + loanColumns + ` FROM loans ` + where + `
		ORDER BY start_date DESC, created_at DESC
		LIMIT $4 OFFSET $5;
	`
	rows, err := r.Pool.Query(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query loans for user "+userID, err)
	}
	defer rows.Close()

	loans := []domain.Loan{}
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, 0, err
		}
		loans = append(loans, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating loan rows for user "+userID, err)
	}
	return loans, total, nil
}

// UpdateLoan rewrites the editable fields. Principal and balance only move
// through RecordPayment.
func (r *PgxLoanRepository) UpdateLoan(ctx context.Context, loan domain.Loan) (*domain.Loan, error) {
	query := `
		UPDATE loans
		SET lender_name = $3, interest_rate = $4, due_date = $5, status = $6, description = $7, updated_at = $8
		WHERE loan_id = $1 AND user_id = $2
		RETURNING principal_amount, current_balance, start_date, direction, created_at;
	`
	err := r.Pool.QueryRow(ctx, query,
		loan.LoanID,
		loan.UserID,
		loan.LenderName,
		loan.InterestRate,
		loan.DueDate,
		loan.Status,
		loan.Description,
		loan.UpdatedAt,
	).Scan(&loan.PrincipalAmount, &loan.CurrentBalance, &loan.StartDate, &loan.Direction, &loan.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to update loan "+loan.LoanID, err)
	}
	return &loan, nil
}

// DeleteLoan removes the loan and its payment audit rows in one transaction.
func (r *PgxLoanRepository) DeleteLoan(ctx context.Context, userID, loanID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := deleteAuditRows(ctx, tx, userID, "loans", loanID); err != nil {
		return err
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM loans WHERE loan_id = $1 AND user_id = $2;`, loanID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete loan "+loanID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// RecordPayment applies a payment to a loan under a row lock: lock, refuse
// non-active loans and overpayment, reduce the balance, flip status to paid
// when the balance reaches zero, append the audit row. One transaction.
func (r *PgxLoanRepository) RecordPayment(ctx context.Context, userID, loanID string, amount decimal.Decimal, date time.Time) (*domain.Loan, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + loanColumns + ` FROM loans WHERE loan_id = $1 AND user_id = $2 FOR UPDATE;`
	loan, err := scanLoan(tx.QueryRow(ctx, lockQuery, loanID, userID))
	if err != nil {
		return nil, err
	}

	if loan.Status != domain.LoanActive {
		return nil, apperrors.NewBusinessRuleError("Cannot make payments on inactive loans")
	}
	if amount.GreaterThan(loan.CurrentBalance) {
		return nil, apperrors.NewBusinessRuleError("Payment amount exceeds remaining loan balance")
	}

	now := time.Now()
	loan.CurrentBalance = loan.CurrentBalance.Sub(amount)
	loan.Status = accounting.LoanStatusAfterPayment(loan.CurrentBalance)
	loan.UpdatedAt = now

	updateQuery := `
		UPDATE loans
		SET current_balance = $3, status = $4, updated_at = $5
		WHERE loan_id = $1 AND user_id = $2;
	`
	if _, err := tx.Exec(ctx, updateQuery, loan.LoanID, userID, loan.CurrentBalance, loan.Status, now); err != nil {
		return nil, apperrors.NewAppError(500, "failed to apply payment to loan "+loanID, err)
	}

	if err := insertAuditRow(ctx, tx, domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		Type:            domain.TxnLoanPayment,
		ReferenceTable:  "loans",
		ReferenceID:     loanID,
		Amount:          amount,
		Description:     "Loan payment to " + loan.LenderName,
		TransactionDate: date,
		AuditFields:     domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return loan, nil
}

func scanLoan(row pgx.Row) (*domain.Loan, error) {
	var l domain.Loan
	err := row.Scan(
		&l.LoanID,
		&l.UserID,
		&l.LenderName,
		&l.PrincipalAmount,
		&l.CurrentBalance,
		&l.InterestRate,
		&l.StartDate,
		&l.DueDate,
		&l.Status,
		&l.Direction,
		&l.Description,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan loan row", err)
	}
	return &l, nil
}
