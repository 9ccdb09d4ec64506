package report

import (
	"context"
	"time"
)

type Repository interface {
	// MonthlyByCategory aggregates per month and category. A non-nil
	// month restricts the result to that calendar month.
	MonthlyByCategory(ctx context.Context, userID string, month *time.Time) ([]*MonthlyCategoryRow, error)
}
