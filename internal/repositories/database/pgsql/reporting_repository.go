package pgsql

import (
	"context"
	"time"

	"github.com/bizbooks/bookkeeping_app/internal/apperrors"
	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/bizbooks/bookkeeping_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetSummary aggregates every book in one round trip. Account balances and
// loan outstandings are point-in-time, so the date window does not apply to
// them.
func (r *PgxReportingRepository) GetSummary(ctx context.Context, userID string, from, to *time.Time) (*domain.DashboardSummary, error) {
	query := `
		SELECT
			(SELECT COALESCE(SUM(amount), 0) FROM incomes
				WHERE user_id = $1 AND ($2::date IS NULL OR income_date >= $2) AND ($3::date IS NULL OR income_date <= $3)),
			(SELECT COALESCE(SUM(amount), 0) FROM expenses
				WHERE user_id = $1 AND ($2::date IS NULL OR spend_date >= $2) AND ($3::date IS NULL OR spend_date <= $3)),
			(SELECT COALESCE(SUM(amount), 0) FROM purchases
				WHERE user_id = $1 AND ($2::date IS NULL OR spend_date >= $2) AND ($3::date IS NULL OR spend_date <= $3)),
			(SELECT COALESCE(SUM(selling_price), 0) FROM sales
				WHERE user_id = $1 AND ($2::date IS NULL OR sale_date >= $2) AND ($3::date IS NULL OR sale_date <= $3)),
			(SELECT COALESCE(SUM(profit), 0) FROM sales
				WHERE user_id = $1 AND ($2::date IS NULL OR sale_date >= $2) AND ($3::date IS NULL OR sale_date <= $3)),
			(SELECT COALESCE(SUM(amount_required), 0) FROM charities WHERE user_id = $1),
			(SELECT COALESCE(SUM(amount_paid), 0) FROM charities WHERE user_id = $1),
			(SELECT COALESCE(SUM(amount_remaining), 0) FROM charities WHERE user_id = $1),
			(SELECT COALESCE(SUM(balance), 0) FROM accounts WHERE user_id = $1),
			(SELECT COALESCE(SUM(current_balance), 0) FROM loans WHERE user_id = $1 AND status = 'active');
	`
	var s domain.DashboardSummary
	err := r.Pool.QueryRow(ctx, query, userID, from, to).Scan(
		&s.TotalIncome,
		&s.TotalExpenses,
		&s.TotalPurchases,
		&s.SalesRevenue,
		&s.SalesProfit,
		&s.CharityRequired,
		&s.CharityPaid,
		&s.CharityRemaining,
		&s.AccountsBalance,
		&s.LoansOutstanding,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate summary for user "+userID, err)
	}
	return &s, nil
}

// GetCategoryStats groups one record type by category. The table and date
// column are chosen by a switch, never interpolated from user input.
func (r *PgxReportingRepository) GetCategoryStats(ctx context.Context, userID string, recordType string, from, to *time.Time) ([]domain.CategoryStat, error) {
	var table, dateColumn string
	switch recordType {
	case "income":
		table, dateColumn = "incomes", "income_date"
	case "expense":
		table, dateColumn = "expenses", "spend_date"
	case "purchase":
		table, dateColumn = "purchases", "spend_date"
	default:
		return nil, apperrors.NewAppError(400, "unknown record type "+recordType, apperrors.ErrValidation)
	}

	query := `
		SELECT category, COUNT(*), COALESCE(SUM(amount), 0)
		FROM ` + table + `
		WHERE user_id = $1
		AND ($2::date IS NULL OR ` + dateColumn + ` >= $2)
		AND ($3::date IS NULL OR ` + dateColumn + ` <= $3)
		GROUP BY category
		ORDER BY SUM(amount) DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query category stats for user "+userID, err)
	}
	defer rows.Close()

	stats := []domain.CategoryStat{}
	for rows.Next() {
		var st domain.CategoryStat
		if err := rows.Scan(&st.Category, &st.Count, &st.Total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category stat row", err)
		}
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category stat rows for user "+userID, err)
	}
	return stats, nil
}

// GetMonthlySeries returns income, expense and purchase totals for the last
// `months` calendar months, current month included. Months with no records
// appear with zeros: the series is driven by generate_series, not by the
// data.
func (r *PgxReportingRepository) GetMonthlySeries(ctx context.Context, userID string, months int) ([]domain.MonthlyStat, error) {
	query := `
		WITH series AS (
			SELECT generate_series(
				date_trunc('month', CURRENT_DATE) - make_interval(months => $2 - 1),
				date_trunc('month', CURRENT_DATE),
				interval '1 month'
			) AS month
		)
		SELECT
			to_char(series.month, 'YYYY-MM'),
			COALESCE((SELECT SUM(amount) FROM incomes
				WHERE user_id = $1 AND date_trunc('month', income_date) = series.month), 0),
			COALESCE((SELECT SUM(amount) FROM expenses
				WHERE user_id = $1 AND date_trunc('month', spend_date) = series.month), 0),
			COALESCE((SELECT SUM(amount) FROM purchases
				WHERE user_id = $1 AND date_trunc('month', spend_date) = series.month), 0)
		FROM series
		ORDER BY series.month ASC;
	`
	rows, err := r.Pool.Query(ctx, query, userID, months)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query monthly series for user "+userID, err)
	}
	defer rows.Close()

	series := []domain.MonthlyStat{}
	for rows.Next() {
		var m domain.MonthlyStat
		if err := rows.Scan(&m.Month, &m.Income, &m.Expenses, &m.Purchases); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan monthly stat row", err)
		}
		series = append(series, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating monthly stat rows for user "+userID, err)
	}
	return series, nil
}
