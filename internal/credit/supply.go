package credit

import (
	"credit/pkg/number"

	"github.com/shopspring/decimal"
)

// SharesForDeposit shares minted for depositing amount into a pool with
// the given totals. The very first deposit mints 1:1.
//
// shares = amount * totalShares / totalClaim
func SharesForDeposit(amount, totalShares, totalClaim decimal.Decimal) decimal.Decimal {
	if totalShares.LessThanOrEqual(decimal.Zero) {
		return amount
	}
	if totalClaim.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	return amount.Mul(totalShares).Div(totalClaim).Truncate(MaxPrecision)
}

// SharesForWithdrawal shares burned to redeem an exact underlying amount.
// Rounds up so the pool never pays out more than the burned claim.
func SharesForWithdrawal(amount, totalShares, totalClaim decimal.Decimal) decimal.Decimal {
	if totalShares.LessThanOrEqual(decimal.Zero) || totalClaim.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	return number.Ceil(amount.Mul(totalShares).Div(totalClaim), MaxPrecision)
}

// AmountForShares underlying amount a share count currently redeems for.
//
// amount = shares * totalClaim / totalShares
func AmountForShares(shares, totalShares, totalClaim decimal.Decimal) decimal.Decimal {
	if totalShares.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	return shares.Mul(totalClaim).Div(totalShares).Truncate(MaxPrecision)
}
