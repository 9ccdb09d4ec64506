package rate

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Upsert(ctx context.Context, r *ExchangeRate) error
	GetLatest(ctx context.Context) (*ExchangeRate, error)
}

// Source is the external feed the refresher pulls from.
type Source interface {
	FetchSellRate(ctx context.Context) (decimal.Decimal, error)
}
