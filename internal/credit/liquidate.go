package credit

import (
	"github.com/shopspring/decimal"
)

var one = decimal.New(1, 0)

// SeizeForDebtValue collateral-token amount handed to a liquidator for
// extinguishing debtValue USD of debt, bonus included.
//
// seize = debtValue * (1 + bonus) / price
func SeizeForDebtValue(debtValue, price, bonus decimal.Decimal) decimal.Decimal {
	if price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	return debtValue.Mul(one.Add(bonus)).Div(price).Truncate(MaxPrecision)
}

// AbsorbableDebtValue USD debt a collateral balance can absorb once the
// liquidation bonus is carved out of it.
//
// value = balance * price / (1 + bonus)
func AbsorbableDebtValue(balance, price, bonus decimal.Decimal) decimal.Decimal {
	if balance.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	return balance.Mul(price).Div(one.Add(bonus)).Truncate(MaxPrecision)
}

// RoundTarget debt-in-repay-asset a single liquidation round goes after:
// half of the debt outstanding when the liquidation started, never more
// than what is still owed or than the liquidator's remaining requested
// amount. Two full rounds therefore extinguish an entire position.
func RoundTarget(startOwed, owed, requested decimal.Decimal) decimal.Decimal {
	target := startOwed.Div(decimal.New(2, 0)).Truncate(MaxPrecision)
	if target.GreaterThan(owed) {
		target = owed
	}
	if target.GreaterThan(requested) {
		target = requested
	}
	return target
}
