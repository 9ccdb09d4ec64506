package transaction

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/santiagopugliese/personal-finances/internal/pkg"
)

// CreateInput is a validated-at-the-service creation request.
// AmountARS, when present, is a client-computed conversion taken
// verbatim for USD records (and ignored for ARS ones).
type CreateInput struct {
	Date        time.Time
	Type        Types
	Amount      decimal.Decimal
	Currency    Currency
	CategoryId  *ulid.ULID
	Description *string
	AmountARS   *decimal.Decimal
}

// Patch is a partial update. Nil pointer fields keep the stored value.
// CategoryId and Description additionally accept explicit null (clear),
// hence the tri-state Optional.
type Patch struct {
	Date        *time.Time
	Type        *Types
	Amount      *decimal.Decimal
	Currency    *Currency
	CategoryId  pkg.Optional[ulid.ULID]
	Description pkg.Optional[string]
	AmountARS   *decimal.Decimal
}

// merge applies the patch over a copy of the stored record. Resolution
// of AmountARS is not done here; the service decides that afterwards.
func (p Patch) merge(stored *Transaction) Transaction {
	merged := *stored

	if p.Date != nil {
		merged.Date = *p.Date
	}
	if p.Type != nil {
		merged.Type = *p.Type
	}
	if p.Amount != nil {
		merged.Amount = *p.Amount
	}
	if p.Currency != nil {
		merged.Currency = *p.Currency
	}
	if p.CategoryId.Set {
		merged.CategoryId = p.CategoryId.Ptr()
	}
	if p.Description.Set {
		merged.Description = p.Description.Ptr()
	}

	return merged
}

// touchesConversion reports whether the patch changes a field that
// forces the ARS equivalent of a USD record to be re-resolved.
func (p Patch) touchesConversion() bool {
	return p.Amount != nil || p.Currency != nil
}
