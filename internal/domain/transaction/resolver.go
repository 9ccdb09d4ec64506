package transaction

import (
	"github.com/shopspring/decimal"

	appErrors "github.com/santiagopugliese/personal-finances/internal/errors"
)

// Round2 rounds to 2 fractional digits, half away from zero. Decimal
// arithmetic keeps the result reproducible across runs.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// resolveAmountARS decides the ARS equivalent of a USD amount.
// An explicit caller-computed value wins verbatim, no rounding imposed.
// Otherwise the latest rate converts with Round2, and with neither the
// resolution fails as RATE_UNAVAILABLE.
func resolveAmountARS(amountUSD decimal.Decimal, explicitARS *decimal.Decimal, rate *decimal.Decimal) (decimal.Decimal, error) {
	if explicitARS != nil {
		return *explicitARS, nil
	}
	if rate != nil {
		return Round2(amountUSD.Mul(*rate)), nil
	}
	return decimal.Decimal{}, appErrors.ErrRateUnavailable
}
