package transaction

import (
	"context"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/santiagopugliese/personal-finances/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	Update(ctx context.Context, t *Transaction) error
	Delete(ctx context.Context, transactionID ulid.ULID, userID string) error
	GetByIDAndUser(ctx context.Context, transactionID ulid.ULID, userID string) (*Transaction, error)
	GetAll(ctx context.Context, userID string, filters *Filters, pagination *pkg.PaginationParams) ([]*Transaction, int64, error)
}

// CategoryChecker is the referential check against the categories
// table, satisfied by the category service.
type CategoryChecker interface {
	Exists(ctx context.Context, categoryID ulid.ULID, userID string) (bool, error)
}

// RateProvider exposes the most recent USD→ARS sell rate. ok is false
// when no rate has ever been recorded.
type RateProvider interface {
	LatestSell(ctx context.Context) (rate decimal.Decimal, ok bool, err error)
}
