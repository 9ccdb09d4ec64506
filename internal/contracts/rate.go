package contracts

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/santiagopugliese/personal-finances/internal/domain/rate"
)

type RateResponse struct {
	RateDate  string          `json:"rate_date"`
	BlueSell  decimal.Decimal `json:"blue_sell"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func NewRateResponse(r *rate.ExchangeRate) *RateResponse {
	return &RateResponse{
		RateDate:  r.RateDate.Format(dateLayout),
		BlueSell:  r.BlueSell,
		UpdatedAt: r.UpdatedAt,
	}
}

type RateSingleResponse struct {
	Rate *RateResponse `json:"rate"`
}
