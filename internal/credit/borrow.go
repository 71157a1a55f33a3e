package credit

import (
	"github.com/shopspring/decimal"
)

// Normalize converts an actual asset amount to normalized principal units
// at the given index.
//
// principal = amount / index
func Normalize(amount, index decimal.Decimal) decimal.Decimal {
	if index.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	return amount.Div(index).Truncate(MaxPrecision)
}

// ActualOwed converts normalized principal back to the actual amount owed
// at the given index.
//
// owed = principal * index
func ActualOwed(principal, index decimal.Decimal) decimal.Decimal {
	if principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	return principal.Mul(index).Truncate(MaxPrecision)
}
