package rate

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	appErrors "github.com/santiagopugliese/personal-finances/internal/errors"
	"github.com/santiagopugliese/personal-finances/internal/logger"
)

type Service struct {
	Repository Repository
	Source     Source
	Location   *time.Location
}

// Latest returns the rate row with the maximum rate_date.
func (s *Service) Latest(ctx context.Context) (*ExchangeRate, error) {
	r, err := s.Repository.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrRateNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return r, nil
}

// LatestSell is the provider view the transaction service consumes:
// the most recent sell rate, or ok=false when none was ever recorded.
// A non-positive stored value counts as no rate.
func (s *Service) LatestSell(ctx context.Context) (decimal.Decimal, bool, error) {
	r, err := s.Repository.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Decimal{}, false, nil
		}
		return decimal.Decimal{}, false, appErrors.NewDatabaseError(err)
	}
	if !r.BlueSell.IsPositive() {
		return decimal.Decimal{}, false, nil
	}
	return r.BlueSell, true, nil
}

// Refresh pulls the current sell rate from the source and upserts it
// under today's date in the configured timezone (ART).
func (s *Service) Refresh(ctx context.Context) (*ExchangeRate, error) {
	sell, err := s.Source.FetchSellRate(ctx)
	if err != nil {
		return nil, appErrors.WrapError(err, "RATE_FETCH_FAILED", "No se pudo obtener la cotización", http.StatusBadGateway)
	}
	if !sell.IsPositive() {
		return nil, appErrors.ErrRateUnavailable
	}

	now := time.Now()
	if s.Location != nil {
		now = now.In(s.Location)
	}
	rateDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	r := &ExchangeRate{
		RateDate:  rateDate,
		BlueSell:  sell,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.Upsert(ctx, r); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	logger.Info().
		Str("rate_date", rateDate.Format("2006-01-02")).
		Str("blue_sell", sell.String()).
		Msg("Cotización actualizada")

	return r, nil
}
