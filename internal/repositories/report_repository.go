package repositories

import (
	"fmt"
	"time"

	"expense-tracker-api/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// reportRepository implements ReportRepositoryInterface with read-only
// aggregation queries over the two transaction tables.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) ReportRepositoryInterface {
	return &reportRepository{
		db: db,
	}
}

// monthBounds returns the first and last calendar date of a month
func monthBounds(year, month int) (models.Date, models.Date) {
	first := models.NewDate(year, time.Month(month), 1)
	last := models.DateOf(first.AddDate(0, 1, -1))
	return first, last
}

// MonthTotal sums all amounts of the kind whose date falls in the given month.
// Returns zero when no records match.
func (r *reportRepository) MonthTotal(kind models.TransactionKind, year int, month int) (decimal.Decimal, error) {
	start, end := monthBounds(year, month)

	var result struct {
		Total decimal.Decimal
	}
	query := fmt.Sprintf(
		"SELECT COALESCE(SUM(amount), 0) AS total FROM %s WHERE date BETWEEN ? AND ?",
		kind.Table(),
	)
	if err := r.db.Raw(query, start, end).Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to get %s month total: %w", kind, err)
	}
	return result.Total, nil
}

// CategoryBreakdown sums the month's amounts per category. The inner join
// keeps categories without matching transactions out of the result.
func (r *reportRepository) CategoryBreakdown(kind models.TransactionKind, year int, month int) ([]models.CategoryBreakdown, error) {
	start, end := monthBounds(year, month)

	query := fmt.Sprintf(`
		SELECT
			categories.name AS name,
			categories.color AS color,
			SUM(t.amount) AS amount
		FROM %s t
		JOIN categories ON categories.id = t.category_id
		WHERE t.date BETWEEN ? AND ?
		GROUP BY categories.id, categories.name, categories.color
		ORDER BY amount DESC
	`, kind.Table())

	var breakdown []models.CategoryBreakdown
	if err := r.db.Raw(query, start, end).Scan(&breakdown).Error; err != nil {
		return nil, fmt.Errorf("failed to get %s category breakdown: %w", kind, err)
	}
	return breakdown, nil
}

// MonthlyTotals groups all records of the kind by (year, month), newest group
// first, limited to the requested number of groups.
func (r *reportRepository) MonthlyTotals(kind models.TransactionKind, limit int) ([]models.MonthlyBucket, error) {
	yearExpr, monthExpr := r.datePartExprs()

	query := fmt.Sprintf(`
		SELECT
			%s AS year,
			%s AS month,
			SUM(amount) AS total
		FROM %s
		GROUP BY 1, 2
		ORDER BY 1 DESC, 2 DESC
		LIMIT %d
	`, yearExpr, monthExpr, kind.Table(), limit)

	var buckets []models.MonthlyBucket
	if err := r.db.Raw(query).Scan(&buckets).Error; err != nil {
		return nil, fmt.Errorf("failed to get %s monthly totals: %w", kind, err)
	}
	return buckets, nil
}

// datePartExprs returns dialect-specific SQL for extracting year and month
// from the date column. Production runs postgres; tests run sqlite.
func (r *reportRepository) datePartExprs() (yearExpr, monthExpr string) {
	if r.db.Dialector.Name() == "sqlite" {
		return "CAST(strftime('%Y', date) AS INTEGER)",
			"CAST(strftime('%m', date) AS INTEGER)"
	}
	return "CAST(EXTRACT(YEAR FROM date) AS INTEGER)",
		"CAST(EXTRACT(MONTH FROM date) AS INTEGER)"
}
