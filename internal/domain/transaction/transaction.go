package transaction

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Types string

const (
	Income  Types = "income"
	Expense Types = "expense"
)

type Currency string

const (
	ARS Currency = "ARS"
	USD Currency = "USD"
)

// Transaction is an income or expense in its native currency plus its
// ARS equivalent. For ARS records AmountARS always equals Amount; for
// USD records it is the conversion resolved when the record was last
// written, never recomputed on rate changes.
type Transaction struct {
	Id           ulid.ULID           `gorm:"type:varchar(26);primaryKey"`
	UserId       string              `gorm:"type:varchar(36);index:idx_transactions_user_date,priority:1;not null"`
	Date         time.Time           `gorm:"type:date;not null;index:idx_transactions_user_date,priority:2"`
	Type         Types               `gorm:"type:varchar(10);not null"`
	Amount       decimal.Decimal     `gorm:"type:decimal(15,2);not null"`
	Currency     Currency            `gorm:"type:varchar(3);not null"`
	AmountARS    decimal.NullDecimal `gorm:"type:decimal(15,2);column:amount_ars"`
	CategoryId   *ulid.ULID          `gorm:"type:varchar(26);index:idx_transactions_category_id"`
	CategoryName string              `gorm:"-"`
	Description  *string             `gorm:"type:varchar(500)"`
	CreatedAt    time.Time           `gorm:"autoCreateTime;not null"`
	UpdatedAt    time.Time           `gorm:"autoUpdateTime;not null"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// Filters narrows transaction listings.
type Filters struct {
	Type       *Types
	CategoryID *ulid.ULID
	DateFrom   *time.Time
	DateTo     *time.Time
}
