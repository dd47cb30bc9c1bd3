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

type PgxCharityRepository struct {
	BaseRepository
}

func newPgxCharityRepository(pool *pgxpool.Pool) portsrepo.CharityRepository {
	return &PgxCharityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CharityRepository = (*PgxCharityRepository)(nil)

const charityColumns = `charity_id, user_id, amount_required, amount_paid, amount_remaining, status, income_id, description, paid_at, created_at, updated_at`

// CreateCharity inserts a manual obligation. No audit row: creating an
// obligation moves no money; payments do.
func (r *PgxCharityRepository) CreateCharity(ctx context.Context, charity domain.Charity) (*domain.Charity, error) {
	query := `
		INSERT INTO charities (charity_id, user_id, amount_required, amount_paid, status, income_id, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING amount_remaining;
	`
	err := r.Pool.QueryRow(ctx, query,
		charity.CharityID,
		charity.UserID,
		charity.AmountRequired,
		charity.AmountPaid,
		charity.Status,
		charity.IncomeID,
		charity.Description,
		charity.CreatedAt,
		charity.UpdatedAt,
	).Scan(&charity.AmountRemaining)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert charity "+charity.CharityID, err)
	}
	return &charity, nil
}

func (r *PgxCharityRepository) FindCharityByID(ctx context.Context, userID, charityID string) (*domain.Charity, error) {
	query := `SELECT ` + charityColumns + ` FROM charities WHERE charity_id = $1 AND user_id = $2;`
	return scanCharity(r.Pool.QueryRow(ctx, query, charityID, userID))
}

func (r *PgxCharityRepository) ListCharities(ctx context.Context, userID string, filter portsrepo.ListFilter) ([]domain.Charity, int64, error) {
	where := `
		WHERE user_id = $1
		AND ($2::text = '' OR status = $2)
		AND ($3::date IS NULL OR created_at >= $3)
		AND ($4::date IS NULL OR created_at <= $4)
	`
	args := []any{userID, filter.Status, filter.From, filter.To}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM charities `+where, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count charities for user "+userID, err)
	}

	query := `SELECT ` + charityColumns + ` FROM charities ` + where + `
		ORDER BY created_at DESC
		LIMIT $5 OFFSET $6;
	`
	rows, err := r.Pool.Query(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query charities for user "+userID, err)
	}
	defer rows.Close()

	charities := []domain.Charity{}
	for rows.Next() {
		c, err := scanCharity(rows)
		if err != nil {
			return nil, 0, err
		}
		charities = append(charities, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating charity rows for user "+userID, err)
	}
	return charities, total, nil
}

// UpdateCharity rewrites the editable fields of an obligation. Payment state
// (amount_paid, status, paid_at) only moves through RecordPayment.
func (r *PgxCharityRepository) UpdateCharity(ctx context.Context, charity domain.Charity) (*domain.Charity, error) {
	query := `
		UPDATE charities
		SET amount_required = $3, description = $4, updated_at = $5
		WHERE charity_id = $1 AND user_id = $2
		RETURNING amount_paid, amount_remaining, status, income_id, paid_at, created_at;
	`
	err := r.Pool.QueryRow(ctx, query,
		charity.CharityID,
		charity.UserID,
		charity.AmountRequired,
		charity.Description,
		charity.UpdatedAt,
	).Scan(&charity.AmountPaid, &charity.AmountRemaining, &charity.Status, &charity.IncomeID, &charity.PaidAt, &charity.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to update charity "+charity.CharityID, err)
	}
	return &charity, nil
}

// DeleteCharity removes a manual obligation and its payment audit rows in one
// transaction. Auto-created rows are refused: they live and die with their
// income.
func (r *PgxCharityRepository) DeleteCharity(ctx context.Context, userID, charityID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var incomeID *string
	err = tx.QueryRow(ctx,
		`SELECT income_id FROM charities WHERE charity_id = $1 AND user_id = $2 FOR UPDATE;`,
		charityID, userID,
	).Scan(&incomeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock charity "+charityID, err)
	}
	if incomeID != nil {
		return apperrors.NewBusinessRuleError("Cannot delete charity records linked to income")
	}

	if err := deleteAuditRows(ctx, tx, userID, "charities", charityID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM charities WHERE charity_id = $1 AND user_id = $2;`, charityID, userID); err != nil {
		return apperrors.NewAppError(500, "failed to delete charity "+charityID, err)
	}

	return r.Commit(ctx, tx)
}

// RecordPayment applies a payment to an obligation under a row lock:
// lock, reject overpayment, bump amount_paid, rederive status, stamp paid_at
// on settlement, append the audit row. One transaction.
func (r *PgxCharityRepository) RecordPayment(ctx context.Context, userID, charityID string, amount decimal.Decimal, date time.Time) (*domain.Charity, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + charityColumns + ` FROM charities WHERE charity_id = $1 AND user_id = $2 FOR UPDATE;`
	charity, err := scanCharity(tx.QueryRow(ctx, lockQuery, charityID, userID))
	if err != nil {
		return nil, err
	}

	if amount.GreaterThan(charity.AmountRemaining) {
		return nil, apperrors.NewBusinessRuleError("Payment amount exceeds remaining charity amount")
	}

	now := time.Now()
	charity.AmountPaid = charity.AmountPaid.Add(amount)
	charity.Status = accounting.CharityStatus(charity.AmountRequired, charity.AmountPaid)
	charity.UpdatedAt = now
	if charity.Status == domain.CharityPaid && charity.PaidAt == nil {
		charity.PaidAt = &date
	}

	updateQuery := `
		UPDATE charities
		SET amount_paid = $3, status = $4, paid_at = $5, updated_at = $6
		WHERE charity_id = $1 AND user_id = $2
		RETURNING amount_remaining;
	`
	err = tx.QueryRow(ctx, updateQuery,
		charity.CharityID,
		charity.UserID,
		charity.AmountPaid,
		charity.Status,
		charity.PaidAt,
		charity.UpdatedAt,
	).Scan(&charity.AmountRemaining)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to apply payment to charity "+charityID, err)
	}

	if err := insertAuditRow(ctx, tx, domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		Type:            domain.TxnCharityPayment,
		ReferenceTable:  "charities",
		ReferenceID:     charityID,
		Amount:          amount,
		Description:     "Charity payment",
		TransactionDate: date,
		AuditFields:     domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return charity, nil
}

func scanCharity(row pgx.Row) (*domain.Charity, error) {
	var c domain.Charity
	err := row.Scan(
		&c.CharityID,
		&c.UserID,
		&c.AmountRequired,
		&c.AmountPaid,
		&c.AmountRemaining,
		&c.Status,
		&c.IncomeID,
		&c.Description,
		&c.PaidAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan charity row", err)
	}
	return &c, nil
}
