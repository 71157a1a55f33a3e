package ledger

import (
	"context"
	"testing"

	"credit/core"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiquidateGuards(t *testing.T) {
	ctx := context.Background()
	e := newEnv(map[string]map[string]decimal.Decimal{
		testLedgerAcc: {usdt: decimal.New(1000, 0)},
		alice:         {btc: decimal.New(1, 0)},
		bob:           {usdt: decimal.New(100, 0)},
	})
	e.bootstrapLending(t, decimal.Zero)

	err := e.ledger.Borrow(ctx, alice, usdt, decimal.New(100, 0))
	require.NoError(t, err)

	_, err = e.ledger.Liquidate(ctx, bob, alice, usdt, decimal.New(50, 0), nil)
	assert.Equal(t, core.ErrCollateralPreferenceEmpty, err)

	_, err = e.ledger.Liquidate(ctx, bob, alice, eth, decimal.New(50, 0), []string{btc})
	assert.Equal(t, core.ErrUnsupportedBorrowAsset, err)

	_, err = e.ledger.Liquidate(ctx, bob, alice, usdt, decimal.New(50, 0), []string{eth})
	assert.Equal(t, core.ErrNotACollateralToken, err)

	// healthy position: 3000 * 0.75 well above a 100 debt
	_, err = e.ledger.Liquidate(ctx, bob, alice, usdt, decimal.New(50, 0), []string{btc})
	assert.Equal(t, core.ErrCannotLiquidateYet, err)

	// guard failures mutate nothing
	owed, err := e.ledger.ActualOwed(ctx, alice, usdt)
	require.NoError(t, err)
	assert.Equal(t, "100", owed.String())
	assert.Equal(t, "1", e.balance(t, alice, btc).String())
	assert.Equal(t, "100", e.balance(t, bob, usdt).String())
}

func TestLiquidateWithBonus(t *testing.T) {
	ctx := context.Background()
	e := newEnv(map[string]map[string]decimal.Decimal{
		testLedgerAcc: {usdt: decimal.New(1000, 0)},
		alice:         {btc: decimal.New(1, 0)},
		bob:           {usdt: decimal.New(100, 0)},
	})
	e.setPrice(t, usdt, decimal.New(1, 0))
	e.setPrice(t, btc, decimal.New(100, 0))

	err := e.ledger.SupportBorrowAsset(ctx, testAdmin, usdt, decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	err = e.ledger.SupportCollateral(ctx, testAdmin, btc, core.CollateralConfig{
		LTV:                  decimal.NewFromFloat(0.5),
		LiquidationThreshold: decimal.NewFromFloat(0.5),
		LiquidationBonus:     decimal.NewFromFloat(0.05),
	})
	require.NoError(t, err)

	err = e.ledger.Borrow(ctx, alice, usdt, decimal.New(45, 0))
	require.NoError(t, err)

	// collateral halves, weighted value 25 < 45 owed
	e.setPrice(t, btc, decimal.New(50, 0))

	liquidatable, err := e.ledger.Liquidatable(ctx, alice)
	require.NoError(t, err)
	assert.True(t, liquidatable)

	result, err := e.ledger.Liquidate(ctx, bob, alice, usdt, decimal.NewFromFloat(22.5), []string{btc})
	require.NoError(t, err)

	// one round of half the starting debt
	assert.Equal(t, 1, result.Rounds)
	assert.Equal(t, "22.5", result.DebtRepaid.String())

	// 22.5 usd of debt at 50 usd/btc plus the 5% bonus
	assert.Equal(t, "0.4725", result.Seized[btc].String())
	assert.Equal(t, "0.4725", e.balance(t, bob, btc).String())
	assert.Equal(t, "0.5275", e.balance(t, alice, btc).String())
	assert.Equal(t, "77.5", e.balance(t, bob, usdt).String())

	owed, err := e.ledger.ActualOwed(ctx, alice, usdt)
	require.NoError(t, err)
	assert.Equal(t, "22.5", owed.String())
}

// a debt bigger than the remaining collateral is written off whole: the
// liquidator pays the full debt and receives every collateral unit the
// account still holds.
func TestLiquidateExhaustsCollateral(t *testing.T) {
	ctx := context.Background()
	e := newEnv(map[string]map[string]decimal.Decimal{
		testLedgerAcc: {usdt: decimal.New(1000, 0)},
		alice:         {btc: decimal.NewFromFloat(0.01)},
		bob:           {usdt: decimal.New(100, 0)},
	})
	e.bootstrapLending(t, decimal.Zero)

	err := e.ledger.Borrow(ctx, alice, usdt, decimal.New(15, 0))
	require.NoError(t, err)

	e.setPrice(t, btc, decimal.New(1000, 0))
	err = e.ledger.SetCollateralConfig(ctx, testAdmin, btc, core.CollateralConfig{
		LTV:                  decimal.NewFromFloat(0.1),
		LiquidationThreshold: decimal.NewFromFloat(0.1),
		LiquidationBonus:     decimal.Zero,
	})
	require.NoError(t, err)

	result, err := e.ledger.Liquidate(ctx, bob, alice, usdt, decimal.New(15, 0), []string{btc})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Rounds)
	assert.Equal(t, "15", result.DebtRepaid.String())
	assert.Equal(t, "0.01", result.Seized[btc].String())

	assert.True(t, e.balance(t, alice, btc).IsZero())
	assert.Equal(t, "0.01", e.balance(t, bob, btc).String())
	assert.Equal(t, "85", e.balance(t, bob, usdt).String())
	assert.Equal(t, "1000", e.balance(t, testLedgerAcc, usdt).String())

	owed, err := e.ledger.ActualOwed(ctx, alice, usdt)
	require.NoError(t, err)
	assert.True(t, owed.IsZero())

	total, err := e.ledger.TotalOwed(ctx, usdt)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestLiquidateStopsWhenHealthy(t *testing.T) {
	ctx := context.Background()
	e := newEnv(map[string]map[string]decimal.Decimal{
		testLedgerAcc: {usdt: decimal.New(1000, 0)},
		alice:         {btc: decimal.New(1, 0)},
		bob:           {usdt: decimal.New(1000, 0)},
	})
	e.bootstrapLending(t, decimal.Zero)

	err := e.ledger.Borrow(ctx, alice, usdt, decimal.New(1000, 0))
	require.NoError(t, err)

	// 3000 -> 1300: threshold-weighted collateral 975, just below the
	// 1000 debt
	e.setPrice(t, btc, decimal.New(1300, 0))

	liquidatable, err := e.ledger.Liquidatable(ctx, alice)
	require.NoError(t, err)
	assert.True(t, liquidatable)

	result, err := e.ledger.Liquidate(ctx, bob, alice, usdt, decimal.New(1000, 0), []string{btc})
	require.NoError(t, err)

	// one round repaying 500 restores health, rounds stop early
	assert.Equal(t, 1, result.Rounds)
	assert.Equal(t, "500", result.DebtRepaid.String())

	liquidatable, err = e.ledger.Liquidatable(ctx, alice)
	require.NoError(t, err)
	assert.False(t, liquidatable)
}
