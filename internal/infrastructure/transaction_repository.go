package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/santiagopugliese/personal-finances/internal/domain/transaction"
	"github.com/santiagopugliese/personal-finances/internal/pkg"
)

type TransactionRepository struct {
	DB *gorm.DB
}

var _ transaction.Repository = (*TransactionRepository)(nil)

type transactionDB struct {
	Id           string              `gorm:"type:varchar(26);primaryKey;column:id"`
	UserId       string              `gorm:"type:varchar(36);index;not null;column:user_id"`
	Date         time.Time           `gorm:"type:date;not null;column:date"`
	Type         string              `gorm:"type:varchar(10);not null;column:type"`
	Amount       decimal.Decimal     `gorm:"type:decimal(15,2);not null;column:amount"`
	Currency     string              `gorm:"type:varchar(3);not null;column:currency"`
	AmountARS    decimal.NullDecimal `gorm:"type:decimal(15,2);column:amount_ars"`
	CategoryId   *string             `gorm:"type:varchar(26);index;column:category_id"`
	CategoryName *string             `gorm:"->;column:category_name"`
	Description  *string             `gorm:"type:varchar(500);column:description"`
	CreatedAt    time.Time           `gorm:"not null;column:created_at"`
	UpdatedAt    time.Time           `gorm:"not null;column:updated_at"`
}

func toDomainTransaction(tdb *transactionDB) (*transaction.Transaction, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, err
	}

	cid, err := pkg.ParseULIDPtr(tdb.CategoryId)
	if err != nil {
		return nil, err
	}

	t := &transaction.Transaction{
		Id:          id,
		UserId:      tdb.UserId,
		Date:        tdb.Date,
		Type:        transaction.Types(tdb.Type),
		Amount:      tdb.Amount,
		Currency:    transaction.Currency(tdb.Currency),
		AmountARS:   tdb.AmountARS,
		CategoryId:  cid,
		Description: tdb.Description,
		CreatedAt:   tdb.CreatedAt,
		UpdatedAt:   tdb.UpdatedAt,
	}

	if tdb.CategoryName != nil {
		t.CategoryName = *tdb.CategoryName
	}

	return t, nil
}

func toDBTransaction(t *transaction.Transaction) *transactionDB {
	var categoryID *string
	if t.CategoryId != nil {
		s := t.CategoryId.String()
		categoryID = &s
	}
	return &transactionDB{
		Id:          t.Id.String(),
		UserId:      t.UserId,
		Date:        t.Date,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Currency:    string(t.Currency),
		AmountARS:   t.AmountARS,
		CategoryId:  categoryID,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	return r.DB.WithContext(ctx).Table("transactions").Create(tdb).Error
}

// Update writes an explicit column list so fields cleared to NULL
// (category_id, description) actually reach the row.
func (r *TransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	return r.DB.WithContext(ctx).Table("transactions").
		Where("id = ? AND user_id = ?", tdb.Id, tdb.UserId).
		Select("date", "type", "amount", "currency", "amount_ars", "category_id", "description", "updated_at").
		Updates(tdb).Error
}

func (r *TransactionRepository) Delete(ctx context.Context, transactionID ulid.ULID, userID string) error {
	return r.DB.WithContext(ctx).Table("transactions").
		Where("id = ? AND user_id = ?", transactionID.String(), userID).
		Delete(&transactionDB{}).Error
}

func (r *TransactionRepository) GetByIDAndUser(ctx context.Context, transactionID ulid.ULID, userID string) (*transaction.Transaction, error) {
	var tdb transactionDB
	err := r.DB.WithContext(ctx).Table("transactions t").
		Select("t.*, c.name as category_name").
		Joins("LEFT JOIN categories c ON t.category_id = c.id").
		Where("t.id = ? AND t.user_id = ?", transactionID.String(), userID).
		First(&tdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainTransaction(&tdb)
}

func (r *TransactionRepository) GetAll(ctx context.Context, userID string, filters *transaction.Filters, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	query := r.DB.WithContext(ctx).Table("transactions t").
		Select("t.*, c.name as category_name").
		Joins("LEFT JOIN categories c ON t.category_id = c.id").
		Where("t.user_id = ?", userID)

	if filters != nil {
		if filters.Type != nil {
			query = query.Where("t.type = ?", string(*filters.Type))
		}
		if filters.CategoryID != nil {
			query = query.Where("t.category_id = ?", filters.CategoryID.String())
		}
		if filters.DateFrom != nil {
			query = query.Where("t.date >= ?", *filters.DateFrom)
		}
		if filters.DateTo != nil {
			query = query.Where("t.date <= ?", *filters.DateTo)
		}
	}

	return pkg.Paginate(query, pagination, "t.date DESC, t.created_at DESC", toDomainTransaction)
}
