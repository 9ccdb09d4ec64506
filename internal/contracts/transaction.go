package contracts

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/santiagopugliese/personal-finances/internal/domain/transaction"
	appErrors "github.com/santiagopugliese/personal-finances/internal/errors"
	"github.com/santiagopugliese/personal-finances/internal/pkg"
)

const dateLayout = "2006-01-02"

type TransactionCreateRequest struct {
	Date        string           `json:"date" binding:"required,datetime=2006-01-02"`
	Type        string           `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal  `json:"amount" binding:"required"`
	Currency    string           `json:"currency" binding:"required,oneof=ARS USD"`
	CategoryId  *string          `json:"category_id" binding:"omitempty,len=26"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	AmountARS   *decimal.Decimal `json:"amount_ars"`
}

func (r *TransactionCreateRequest) ToInput() (*transaction.CreateInput, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return nil, appErrors.NewValidationError("date", "debe tener formato YYYY-MM-DD")
	}

	categoryID, err := pkg.ParseULIDPtr(r.CategoryId)
	if err != nil {
		return nil, appErrors.NewValidationError("category_id", "no es un identificador válido")
	}

	return &transaction.CreateInput{
		Date:        date,
		Type:        transaction.Types(r.Type),
		Amount:      r.Amount,
		Currency:    transaction.Currency(r.Currency),
		CategoryId:  categoryID,
		Description: r.Description,
		AmountARS:   r.AmountARS,
	}, nil
}

// TransactionUpdateRequest distinguishes absent fields from fields sent
// as null: only category_id and description accept null, the rest
// reject it.
type TransactionUpdateRequest struct {
	Date        pkg.Optional[string]          `json:"date"`
	Type        pkg.Optional[string]          `json:"type"`
	Amount      pkg.Optional[decimal.Decimal] `json:"amount"`
	Currency    pkg.Optional[string]          `json:"currency"`
	CategoryId  pkg.Optional[string]          `json:"category_id"`
	Description pkg.Optional[string]          `json:"description"`
	AmountARS   pkg.Optional[decimal.Decimal] `json:"amount_ars"`
}

func (r *TransactionUpdateRequest) ToPatch() (*transaction.Patch, error) {
	patch := &transaction.Patch{}

	if r.Date.Set {
		if !r.Date.Valid {
			return nil, appErrors.NewValidationError("date", "no puede ser null")
		}
		date, err := time.Parse(dateLayout, r.Date.Value)
		if err != nil {
			return nil, appErrors.NewValidationError("date", "debe tener formato YYYY-MM-DD")
		}
		patch.Date = &date
	}

	if r.Type.Set {
		if !r.Type.Valid {
			return nil, appErrors.NewValidationError("type", "no puede ser null")
		}
		t := transaction.Types(r.Type.Value)
		patch.Type = &t
	}

	if r.Amount.Set {
		if !r.Amount.Valid {
			return nil, appErrors.NewValidationError("amount", "no puede ser null")
		}
		amount := r.Amount.Value
		patch.Amount = &amount
	}

	if r.Currency.Set {
		if !r.Currency.Valid {
			return nil, appErrors.NewValidationError("currency", "no puede ser null")
		}
		currency := transaction.Currency(r.Currency.Value)
		patch.Currency = &currency
	}

	if r.CategoryId.Set {
		if r.CategoryId.Valid {
			categoryID, err := pkg.ParseULID(r.CategoryId.Value)
			if err != nil {
				return nil, appErrors.NewValidationError("category_id", "no es un identificador válido")
			}
			patch.CategoryId = pkg.Some(categoryID)
		} else {
			patch.CategoryId = pkg.Null[ulid.ULID]()
		}
	}

	if r.Description.Set {
		if r.Description.Valid {
			patch.Description = pkg.Some(r.Description.Value)
		} else {
			patch.Description = pkg.Null[string]()
		}
	}

	if r.AmountARS.Set {
		if !r.AmountARS.Valid {
			return nil, appErrors.NewValidationError("amount_ars", "no puede ser null")
		}
		amountARS := r.AmountARS.Value
		patch.AmountARS = &amountARS
	}

	return patch, nil
}

type TransactionResponse struct {
	Id           string           `json:"id"`
	Date         string           `json:"date"`
	Type         string           `json:"type"`
	Amount       decimal.Decimal  `json:"amount"`
	Currency     string           `json:"currency"`
	AmountARS    *decimal.Decimal `json:"amount_ars"`
	CategoryId   *string          `json:"category_id"`
	CategoryName *string          `json:"category_name"`
	Description  *string          `json:"description"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func NewTransactionResponse(t *transaction.Transaction) *TransactionResponse {
	resp := &TransactionResponse{
		Id:          t.Id.String(),
		Date:        t.Date.Format(dateLayout),
		Type:        string(t.Type),
		Amount:      t.Amount,
		Currency:    string(t.Currency),
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.AmountARS.Valid {
		v := t.AmountARS.Decimal
		resp.AmountARS = &v
	}
	if t.CategoryId != nil {
		id := t.CategoryId.String()
		resp.CategoryId = &id
	}
	if t.CategoryName != "" {
		name := t.CategoryName
		resp.CategoryName = &name
	}
	return resp
}

type TransactionSingleResponse struct {
	Transaction *TransactionResponse `json:"transaction"`
}
