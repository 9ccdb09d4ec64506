package infrastructure

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/santiagopugliese/personal-finances/internal/domain/report"
	"github.com/santiagopugliese/personal-finances/internal/pkg"
)

type ReportRepository struct {
	DB *gorm.DB
}

var _ report.Repository = (*ReportRepository)(nil)

type monthlyRowDB struct {
	MonthStart   time.Time       `gorm:"column:month_start"`
	CategoryId   *string         `gorm:"column:category_id"`
	CategoryName *string         `gorm:"column:category_name"`
	ExpensesARS  decimal.Decimal `gorm:"column:expenses_ars"`
	IncomesARS   decimal.Decimal `gorm:"column:incomes_ars"`
}

func toDomainMonthlyRow(rdb *monthlyRowDB) (*report.MonthlyCategoryRow, error) {
	cid, err := pkg.ParseULIDPtr(rdb.CategoryId)
	if err != nil {
		return nil, err
	}
	return &report.MonthlyCategoryRow{
		MonthStart:   rdb.MonthStart,
		CategoryId:   cid,
		CategoryName: rdb.CategoryName,
		ExpensesARS:  rdb.ExpensesARS,
		IncomesARS:   rdb.IncomesARS,
	}, nil
}

// MonthlyByCategory sums amount_ars per calendar month and category.
// Transactions whose amount_ars is still NULL are left out of the
// totals rather than counted as zero.
func (r *ReportRepository) MonthlyByCategory(ctx context.Context, userID string, month *time.Time) ([]*report.MonthlyCategoryRow, error) {
	query := r.DB.WithContext(ctx).Table("transactions t").
		Select(`date_trunc('month', t.date)::date AS month_start,
			t.category_id,
			c.name AS category_name,
			COALESCE(SUM(CASE WHEN t.type = 'expense' THEN t.amount_ars END), 0) AS expenses_ars,
			COALESCE(SUM(CASE WHEN t.type = 'income' THEN t.amount_ars END), 0) AS incomes_ars`).
		Joins("LEFT JOIN categories c ON t.category_id = c.id").
		Where("t.user_id = ?", userID).
		Where("t.amount_ars IS NOT NULL")

	if month != nil {
		start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
		query = query.Where("t.date >= ? AND t.date < ?", start, start.AddDate(0, 1, 0))
	}

	var rows []monthlyRowDB
	err := query.
		Group("date_trunc('month', t.date), t.category_id, c.name").
		Order("month_start DESC, category_name ASC NULLS LAST").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]*report.MonthlyCategoryRow, 0, len(rows))
	for i := range rows {
		item, err := toDomainMonthlyRow(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
