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

type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepository {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepository = (*PgxSaleRepository)(nil)

const saleColumns = `sale_id, user_id, amount, selling_price, profit, profit_percentage, purchase_id, item_name, sale_date, description, created_at, updated_at`

// CreateSale inserts the sale (the storage engine computes profit and
// profit_percentage) and its audit row in one transaction. The audit amount
// is the selling price: that is the money that actually moved.
func (r *PgxSaleRepository) CreateSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO sales (sale_id, user_id, amount, selling_price, purchase_id, item_name, sale_date, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING profit, profit_percentage;
	`
	err = tx.QueryRow(ctx, query,
		sale.SaleID,
		sale.UserID,
		sale.Amount,
		sale.SellingPrice,
		sale.PurchaseID,
		sale.ItemName,
		sale.SaleDate,
		sale.Description,
		sale.CreatedAt,
		sale.UpdatedAt,
	).Scan(&sale.Profit, &sale.ProfitPercentage)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.NewAppError(404, "linked purchase not found", apperrors.ErrNotFound)
		}
		return nil, apperrors.NewAppError(500, "failed to insert sale "+sale.SaleID, err)
	}

	if err := insertAuditRow(ctx, tx, domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          sale.UserID,
		Type:            domain.TxnSale,
		ReferenceTable:  "sales",
		ReferenceID:     sale.SaleID,
		Amount:          sale.SellingPrice,
		Description:     sale.Description,
		TransactionDate: sale.SaleDate,
		AuditFields:     sale.AuditFields,
	}); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, userID, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_id = $1 AND user_id = $2;`
	return scanSale(r.Pool.QueryRow(ctx, query, saleID, userID))
}

func (r *PgxSaleRepository) ListSales(ctx context.Context, userID string, filter portsrepo.ListFilter) ([]domain.Sale, int64, error) {
	where := `
		WHERE user_id = $1
		AND ($2::date IS NULL OR sale_date >= $2)
		AND ($3::date IS NULL OR sale_date <= $3)
	`
	args := []any{userID, filter.From, filter.To}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM sales `+where, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count sales for user "+userID, err)
	}

	query := `SELECT ` + saleColumns + ` FROM sales ` + where + `
		ORDER BY sale_date DESC, created_at DESC
		LIMIT $4 OFFSET $5;
	`
	rows, err := r.Pool.Query(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query sales for user "+userID, err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, 0, err
		}
		sales = append(sales, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating sale rows for user "+userID, err)
	}
	return sales, total, nil
}

// UpdateSale rewrites the sale, reads back the recomputed profit columns and
// revises the audit row, in one transaction.
func (r *PgxSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE sales
		SET amount = $3, selling_price = $4, purchase_id = $5, item_name = $6, sale_date = $7, description = $8, updated_at = $9
		WHERE sale_id = $1 AND user_id = $2
		RETURNING profit, profit_percentage;
	`
	err = tx.QueryRow(ctx, query,
		sale.SaleID,
		sale.UserID,
		sale.Amount,
		sale.SellingPrice,
		sale.PurchaseID,
		sale.ItemName,
		sale.SaleDate,
		sale.Description,
		sale.UpdatedAt,
	).Scan(&sale.Profit, &sale.ProfitPercentage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, apperrors.NewAppError(404, "linked purchase not found", apperrors.ErrNotFound)
		}
		return nil, apperrors.NewAppError(500, "failed to update sale "+sale.SaleID, err)
	}

	if err := reviseAuditRow(ctx, tx, sale.UserID, "sales", sale.SaleID, domain.Transaction{
		Amount:          sale.SellingPrice,
		Description:     sale.Description,
		TransactionDate: sale.SaleDate,
		AuditFields:     sale.AuditFields,
	}); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &sale, nil
}

// DeleteSale removes the sale and its audit row in one transaction.
func (r *PgxSaleRepository) DeleteSale(ctx context.Context, userID, saleID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := deleteAuditRows(ctx, tx, userID, "sales", saleID); err != nil {
		return err
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM sales WHERE sale_id = $1 AND user_id = $2;`, saleID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete sale "+saleID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

func scanSale(row pgx.Row) (*domain.Sale, error) {
	var s domain.Sale
	err := row.Scan(
		&s.SaleID,
		&s.UserID,
		&s.Amount,
		&s.SellingPrice,
		&s.Profit,
		&s.ProfitPercentage,
		&s.PurchaseID,
		&s.ItemName,
		&s.SaleDate,
		&s.Description,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan sale row", err)
	}
	return &s, nil
}
