package infrastructure

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/santiagopugliese/personal-finances/internal/domain/rate"
)

type RateRepository struct {
	DB *gorm.DB
}

var _ rate.Repository = (*RateRepository)(nil)

type exchangeRateDB struct {
	RateDate  time.Time       `gorm:"type:date;primaryKey;column:rate_date"`
	BlueSell  decimal.Decimal `gorm:"type:decimal(15,2);not null;column:blue_sell"`
	CreatedAt time.Time       `gorm:"not null;column:created_at"`
	UpdatedAt time.Time       `gorm:"not null;column:updated_at"`
}

func toDomainRate(rdb *exchangeRateDB) *rate.ExchangeRate {
	return &rate.ExchangeRate{
		RateDate:  rdb.RateDate,
		BlueSell:  rdb.BlueSell,
		CreatedAt: rdb.CreatedAt,
		UpdatedAt: rdb.UpdatedAt,
	}
}

// Upsert inserts the day's quote or overwrites an existing one for the
// same calendar date.
func (r *RateRepository) Upsert(ctx context.Context, er *rate.ExchangeRate) error {
	now := time.Now()
	rdb := &exchangeRateDB{
		RateDate:  er.RateDate,
		BlueSell:  er.BlueSell,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return r.DB.WithContext(ctx).Table("exchange_rates").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "rate_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"blue_sell", "updated_at"}),
		}).
		Create(rdb).Error
}

func (r *RateRepository) GetLatest(ctx context.Context) (*rate.ExchangeRate, error) {
	var rdb exchangeRateDB
	err := r.DB.WithContext(ctx).Table("exchange_rates").
		Order("rate_date DESC").
		First(&rdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainRate(&rdb), nil
}
