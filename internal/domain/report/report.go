package report

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// MonthlyCategoryRow aggregates a user's transactions over amount_ars
// for one month and one category. A nil category groups transactions
// without one.
type MonthlyCategoryRow struct {
	MonthStart   time.Time       `json:"month_start"`
	CategoryId   *ulid.ULID      `json:"category_id"`
	CategoryName *string         `json:"category_name"`
	ExpensesARS  decimal.Decimal `json:"expenses_ars"`
	IncomesARS   decimal.Decimal `json:"incomes_ars"`
}
