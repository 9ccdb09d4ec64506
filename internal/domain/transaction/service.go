package transaction

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	appErrors "github.com/santiagopugliese/personal-finances/internal/errors"
	"github.com/santiagopugliese/personal-finances/internal/pkg"
)

const maxDescriptionLength = 500

// Service reconciles transaction writes: it merges partial updates
// over stored state, validates the result, and resolves the stored
// ARS equivalent against the latest rate before anything is persisted.
//
// A caller-supplied amount_ars is trusted verbatim instead of being
// recomputed server-side. That is a known integrity gap, kept on
// purpose because clients preview the conversion before submitting.
type Service struct {
	Repository Repository
	Categories CategoryChecker
	Rates      RateProvider
}

func (s *Service) CreateTransaction(ctx context.Context, userID string, input CreateInput) (*Transaction, error) {
	t := Transaction{
		Id:          pkg.GenerateULID(),
		UserId:      userID,
		Date:        input.Date,
		Type:        input.Type,
		Amount:      input.Amount,
		Currency:    input.Currency,
		CategoryId:  input.CategoryId,
		Description: input.Description,
	}

	if err := s.validate(&t, input.AmountARS); err != nil {
		return nil, err
	}

	if err := s.checkCategory(ctx, t.CategoryId, userID); err != nil {
		return nil, err
	}

	if err := s.resolve(ctx, &t, input.AmountARS); err != nil {
		return nil, err
	}

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	if err := s.Repository.Create(ctx, &t); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return &t, nil
}

// UpdateTransaction applies a partial patch. Validation runs against
// the merged record, and any failure rejects the whole update; the
// stored row is only written once everything resolved.
func (s *Service) UpdateTransaction(ctx context.Context, transactionID ulid.ULID, userID string, patch Patch) (*Transaction, error) {
	stored, err := s.GetTransactionByID(ctx, transactionID, userID)
	if err != nil {
		return nil, err
	}

	merged := patch.merge(stored)

	if err := s.validate(&merged, patch.AmountARS); err != nil {
		return nil, err
	}

	if err := s.checkCategory(ctx, merged.CategoryId, userID); err != nil {
		return nil, err
	}

	// The ARS equivalent is re-resolved only when the merged currency
	// is ARS, when amount or currency changed, when the patch carries
	// an explicit amount_ars, or when the stored value is missing.
	// Editing just the description must not silently move a historical
	// conversion.
	needsResolution := merged.Currency == ARS ||
		patch.touchesConversion() ||
		patch.AmountARS != nil ||
		!stored.AmountARS.Valid

	if needsResolution {
		if err := s.resolve(ctx, &merged, patch.AmountARS); err != nil {
			return nil, err
		}
	}

	merged.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, &merged); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return &merged, nil
}

func (s *Service) DeleteTransaction(ctx context.Context, transactionID ulid.ULID, userID string) error {
	if _, err := s.GetTransactionByID(ctx, transactionID, userID); err != nil {
		return err
	}

	if err := s.Repository.Delete(ctx, transactionID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) GetTransactionByID(ctx context.Context, transactionID ulid.ULID, userID string) (*Transaction, error) {
	t, err := s.Repository.GetByIDAndUser(ctx, transactionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrTransactionNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return t, nil
}

func (s *Service) GetAllTransactions(ctx context.Context, userID string, filters *Filters, pagination *pkg.PaginationParams) ([]*Transaction, int64, error) {
	transactions, total, err := s.Repository.GetAll(ctx, userID, filters, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return transactions, total, nil
}

// resolve writes the definitive AmountARS into t. ARS is authoritative
// from Amount and ignores any caller-supplied value; USD takes the
// explicit value verbatim or converts via the latest rate.
func (s *Service) resolve(ctx context.Context, t *Transaction, explicitARS *decimal.Decimal) error {
	if t.Currency == ARS {
		t.AmountARS = decimal.NewNullDecimal(t.Amount)
		return nil
	}

	var rate *decimal.Decimal
	if explicitARS == nil {
		r, ok, err := s.Rates.LatestSell(ctx)
		if err != nil {
			if appErrors.IsAppError(err) {
				return err
			}
			return appErrors.NewDatabaseError(err)
		}
		if ok {
			rate = &r
		}
	}

	resolved, err := resolveAmountARS(t.Amount, explicitARS, rate)
	if err != nil {
		return err
	}

	t.AmountARS = decimal.NewNullDecimal(resolved)
	return nil
}

func (s *Service) validate(t *Transaction, explicitARS *decimal.Decimal) error {
	if t.Date.IsZero() {
		return appErrors.NewValidationError("date", "es obligatoria")
	}

	switch t.Type {
	case Income, Expense:
	default:
		return appErrors.NewValidationError("type", "debe ser 'income' o 'expense'")
	}

	switch t.Currency {
	case ARS, USD:
	default:
		return appErrors.NewValidationError("currency", "debe ser 'ARS' o 'USD'")
	}

	if t.Amount.IsNegative() {
		return appErrors.NewValidationError("amount", "no puede ser negativo")
	}

	if explicitARS != nil && explicitARS.IsNegative() {
		return appErrors.NewValidationError("amount_ars", "no puede ser negativo")
	}

	if t.Description != nil && utf8.RuneCountInString(*t.Description) > maxDescriptionLength {
		return appErrors.NewValidationError("description", "debe tener como máximo 500 caracteres")
	}

	return nil
}

func (s *Service) checkCategory(ctx context.Context, categoryID *ulid.ULID, userID string) error {
	if categoryID == nil {
		return nil
	}

	ok, err := s.Categories.Exists(ctx, *categoryID, userID)
	if err != nil {
		if appErrors.IsAppError(err) {
			return err
		}
		return appErrors.NewDatabaseError(err)
	}
	if !ok {
		return appErrors.NewInvalidReferenceError("category_id")
	}

	return nil
}
