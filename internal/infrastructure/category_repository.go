package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/santiagopugliese/personal-finances/internal/domain/category"
	"github.com/santiagopugliese/personal-finances/internal/pkg"
)

type CategoryRepository struct {
	DB *gorm.DB
}

var _ category.Repository = (*CategoryRepository)(nil)

type categoryDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey;column:id"`
	UserId    string    `gorm:"type:varchar(36);not null;column:user_id"`
	Name      string    `gorm:"type:varchar(100);not null;column:name"`
	Color     string    `gorm:"type:varchar(7);not null;column:color"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at"`
}

func toDomainCategory(cdb *categoryDB) (*category.Category, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, err
	}
	return &category.Category{
		Id:        id,
		UserId:    cdb.UserId,
		Name:      cdb.Name,
		Color:     cdb.Color,
		CreatedAt: cdb.CreatedAt,
		UpdatedAt: cdb.UpdatedAt,
	}, nil
}

func toDBCategory(c *category.Category) *categoryDB {
	return &categoryDB{
		Id:        c.Id.String(),
		UserId:    c.UserId,
		Name:      c.Name,
		Color:     c.Color,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	cdb := toDBCategory(c)
	return r.DB.WithContext(ctx).Table("categories").Create(cdb).Error
}

func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	cdb := toDBCategory(c)
	return r.DB.WithContext(ctx).Table("categories").
		Where("id = ? AND user_id = ?", cdb.Id, cdb.UserId).
		Select("name", "color", "updated_at").
		Updates(cdb).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, categoryID ulid.ULID, userID string) error {
	return r.DB.WithContext(ctx).Table("categories").
		Where("id = ? AND user_id = ?", categoryID.String(), userID).
		Delete(&categoryDB{}).Error
}

func (r *CategoryRepository) GetByID(ctx context.Context, categoryID ulid.ULID, userID string) (*category.Category, error) {
	var cdb categoryDB
	err := r.DB.WithContext(ctx).Table("categories").
		Where("id = ? AND user_id = ?", categoryID.String(), userID).
		First(&cdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainCategory(&cdb)
}

func (r *CategoryRepository) GetAll(ctx context.Context, userID string) ([]*category.Category, error) {
	var rows []categoryDB
	err := r.DB.WithContext(ctx).Table("categories").
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]*category.Category, 0, len(rows))
	for i := range rows {
		item, err := toDomainCategory(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *CategoryRepository) GetByName(ctx context.Context, name string, userID string) (*category.Category, error) {
	var cdb categoryDB
	err := r.DB.WithContext(ctx).Table("categories").
		Where("LOWER(name) = LOWER(?) AND user_id = ?", name, userID).
		First(&cdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainCategory(&cdb)
}

func (r *CategoryRepository) Exists(ctx context.Context, categoryID ulid.ULID, userID string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table("categories").
		Where("id = ? AND user_id = ?", categoryID.String(), userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
