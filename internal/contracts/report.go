package contracts

import (
	"github.com/shopspring/decimal"

	"github.com/santiagopugliese/personal-finances/internal/domain/report"
)

type MonthlyCategoryResponse struct {
	MonthStart   string          `json:"month_start"`
	CategoryId   *string         `json:"category_id"`
	CategoryName *string         `json:"category_name"`
	ExpensesARS  decimal.Decimal `json:"expenses_ars"`
	IncomesARS   decimal.Decimal `json:"incomes_ars"`
}

func NewMonthlyCategoryResponse(row *report.MonthlyCategoryRow) *MonthlyCategoryResponse {
	resp := &MonthlyCategoryResponse{
		MonthStart:   row.MonthStart.Format(dateLayout),
		CategoryName: row.CategoryName,
		ExpensesARS:  row.ExpensesARS,
		IncomesARS:   row.IncomesARS,
	}
	if row.CategoryId != nil {
		id := row.CategoryId.String()
		resp.CategoryId = &id
	}
	return resp
}

type MonthlyReportResponse struct {
	Rows  []*MonthlyCategoryResponse `json:"rows"`
	Total int                        `json:"total"`
}
