package rate

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate holds the blue dollar sell rate for one calendar day.
// One row per day, keyed by rate_date and upserted by the refresher.
type ExchangeRate struct {
	RateDate  time.Time       `json:"rate_date" gorm:"type:date;primaryKey;column:rate_date"`
	BlueSell  decimal.Decimal `json:"blue_sell" gorm:"type:decimal(15,2);not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (ExchangeRate) TableName() string {
	return "exchange_rates"
}
