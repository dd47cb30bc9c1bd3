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

type PgxPurchaseRepository struct {
	BaseRepository
}

func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepository {
	return &PgxPurchaseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PurchaseRepository = (*PgxPurchaseRepository)(nil)

const purchaseColumns = `purchase_id, user_id, amount, category, payment_method, spend_date, receipt_path, description, created_at, updated_at`

// CreatePurchase inserts the purchase and its audit row in one transaction.
func (r *PgxPurchaseRepository) CreatePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO purchases (purchase_id, user_id, amount, category, payment_method, spend_date, receipt_path, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		purchase.PurchaseID,
		purchase.UserID,
		purchase.Amount,
		purchase.Category,
		purchase.PaymentMethod,
		purchase.SpendDate,
		purchase.ReceiptPath,
		purchase.Description,
		purchase.CreatedAt,
		purchase.UpdatedAt,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert purchase "+purchase.PurchaseID, err)
	}

	if err := insertAuditRow(ctx, tx, domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          purchase.UserID,
		Type:            domain.TxnPurchase,
		ReferenceTable:  "purchases",
		ReferenceID:     purchase.PurchaseID,
		Amount:          purchase.Amount,
		Description:     purchase.Description,
		TransactionDate: purchase.SpendDate,
		AuditFields:     purchase.AuditFields,
	}); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, userID, purchaseID string) (*domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE purchase_id = $1 AND user_id = $2;`
	return scanPurchase(r.Pool.QueryRow(ctx, query, purchaseID, userID))
}

func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context, userID string, filter portsrepo.ListFilter) ([]domain.Purchase, int64, error) {
	where := `
		WHERE user_id = $1
		AND ($2::text = '' OR category = $2)
		AND ($3::text = '' OR payment_method = $3)
		AND ($4::date IS NULL OR spend_date >= $4)
		AND ($5::date IS NULL OR spend_date <= $5)
	`
	args := []any{userID, filter.Category, filter.PaymentMethod, filter.From, filter.To}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM purchases `+where, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count purchases for user "+userID, err)
	}

	query := `SELECT ` + purchaseColumns + ` FROM purchases ` + where + `
		ORDER BY spend_date DESC, created_at DESC
		LIMIT $6 OFFSET $7;
	`
	rows, err := r.Pool.Query(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query purchases for user "+userID, err)
	}
	defer rows.Close()

	purchases := []domain.Purchase{}
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, 0, err
		}
		purchases = append(purchases, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating purchase rows for user "+userID, err)
	}
	return purchases, total, nil
}

// UpdatePurchase rewrites the purchase and revises its audit row in place,
// in one transaction.
func (r *PgxPurchaseRepository) UpdatePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE purchases
		SET amount = $3, category = $4, payment_method = $5, spend_date = $6, receipt_path = $7, description = $8, updated_at = $9
		WHERE purchase_id = $1 AND user_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query,
		purchase.PurchaseID,
		purchase.UserID,
		purchase.Amount,
		purchase.Category,
		purchase.PaymentMethod,
		purchase.SpendDate,
		purchase.ReceiptPath,
		purchase.Description,
		purchase.UpdatedAt,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update purchase "+purchase.PurchaseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	if err := reviseAuditRow(ctx, tx, purchase.UserID, "purchases", purchase.PurchaseID, domain.Transaction{
		Amount:          purchase.Amount,
		Description:     purchase.Description,
		TransactionDate: purchase.SpendDate,
		AuditFields:     purchase.AuditFields,
	}); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &purchase, nil
}

// DeletePurchase removes the purchase and its audit row in one transaction.
// Sales that referenced it keep their recorded amounts; the storage layer
// nulls out their purchase link.
func (r *PgxPurchaseRepository) DeletePurchase(ctx context.Context, userID, purchaseID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := deleteAuditRows(ctx, tx, userID, "purchases", purchaseID); err != nil {
		return err
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM purchases WHERE purchase_id = $1 AND user_id = $2;`, purchaseID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete purchase "+purchaseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

func scanPurchase(row pgx.Row) (*domain.Purchase, error) {
	var p domain.Purchase
	err := row.Scan(
		&p.PurchaseID,
		&p.UserID,
		&p.Amount,
		&p.Category,
		&p.PaymentMethod,
		&p.SpendDate,
		&p.ReceiptPath,
		&p.Description,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan purchase row", err)
	}
	return &p, nil
}
