package report

import (
	"context"
	"time"

	appErrors "github.com/santiagopugliese/personal-finances/internal/errors"
)

type Service struct {
	Repository Repository
}

func (s *Service) GetMonthlySummary(ctx context.Context, userID string, month *time.Time) ([]*MonthlyCategoryRow, error) {
	rows, err := s.Repository.MonthlyByCategory(ctx, userID, month)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return rows, nil
}
