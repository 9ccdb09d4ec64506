package category

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, categoryID ulid.ULID, userID string) error
	GetByID(ctx context.Context, categoryID ulid.ULID, userID string) (*Category, error)
	GetAll(ctx context.Context, userID string) ([]*Category, error)
	GetByName(ctx context.Context, name string, userID string) (*Category, error)
	Exists(ctx context.Context, categoryID ulid.ULID, userID string) (bool, error)
}
