package category

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// DefaultColor is applied when a category is created without one.
const DefaultColor = "#999999"

type Category struct {
	Id        ulid.ULID `json:"id" gorm:"type:varchar(26);primaryKey"`
	UserId    string    `json:"-" gorm:"type:varchar(36);not null;index:idx_categories_user_name,unique"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null;index:idx_categories_user_name,unique"`
	Color     string    `json:"color" gorm:"type:varchar(7);default:'#999999'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
