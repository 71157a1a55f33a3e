package ledger

import (
	"context"
	"testing"
	"time"

	"credit/core"
	authservice "credit/service/auth"
	custodyservice "credit/service/custody"
	oracleservice "credit/service/oracle"
	orchestrationservice "credit/service/orchestration"
	borrowstore "credit/store/borrow"
	collateralstore "credit/store/collateral"
	marketstore "credit/store/market"
	pricestore "credit/store/price"
	supplystore "credit/store/supply"
	transactionstore "credit/store/transaction"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAdmin     = "admin"
	testLedgerAcc = "ledger-account"

	usdt = "usdt"
	btc  = "btc"
	eth  = "eth"

	alice = "alice"
	bob   = "bob"
	carol = "carol"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) warp(d time.Duration) { c.now = c.now.Add(d) }

type env struct {
	clock        *testClock
	markets      core.IMarketStore
	collaterals  core.ICollateralStore
	borrows      core.IBorrowStore
	supplies     core.ISupplyStore
	transactions core.ITransactionStore
	prices       core.IPriceStore
	custody      core.IAccountCustody
	ledger       core.ILedger
}

func newEnv(balances map[string]map[string]decimal.Decimal) *env {
	clock := &testClock{now: time.Unix(1700000000, 0)}

	e := &env{
		clock:        clock,
		markets:      marketstore.New(),
		collaterals:  collateralstore.New(),
		borrows:      borrowstore.New(),
		supplies:     supplystore.New(),
		transactions: transactionstore.New(),
		prices:       pricestore.New(),
		custody:      custodyservice.NewWithBalances(balances),
	}

	system := &core.System{
		LedgerAccountID: testLedgerAcc,
		Version:         "test",
	}

	e.ledger = New(
		system,
		e.markets,
		e.collaterals,
		e.borrows,
		e.supplies,
		e.transactions,
		oracleservice.New(e.prices, time.Hour, clock),
		e.custody,
		authservice.New([]string{testAdmin}),
		orchestrationservice.New(),
		clock,
	)

	return e
}

func (e *env) setPrice(t *testing.T, assetID string, price decimal.Decimal) {
	t.Helper()

	err := e.prices.Save(context.Background(), &core.Price{
		AssetID:   assetID,
		Price:     price,
		UpdatedAt: e.clock.now,
	})
	require.NoError(t, err)
}

func (e *env) balance(t *testing.T, userID, assetID string) decimal.Decimal {
	t.Helper()

	balance, err := e.custody.BalanceOf(context.Background(), userID, assetID)
	require.NoError(t, err)
	return balance
}

// bootstrapLending sets up a usdt market with the given rate, btc as
// collateral at ltv 0.5 / threshold 0.75, and prices for both.
func (e *env) bootstrapLending(t *testing.T, rate decimal.Decimal) {
	t.Helper()
	ctx := context.Background()

	e.setPrice(t, usdt, decimal.New(1, 0))
	e.setPrice(t, btc, decimal.New(3000, 0))

	err := e.ledger.SupportBorrowAsset(ctx, testAdmin, usdt, rate, decimal.Zero)
	require.NoError(t, err)

	err = e.ledger.SupportCollateral(ctx, testAdmin, btc, core.CollateralConfig{
		LTV:                  decimal.NewFromFloat(0.5),
		LiquidationThreshold: decimal.NewFromFloat(0.75),
		LiquidationBonus:     decimal.Zero,
	})
	require.NoError(t, err)
}

func TestRegistryAuthorization(t *testing.T) {
	ctx := context.Background()
	e := newEnv(nil)
	e.setPrice(t, btc, decimal.New(3000, 0))

	err := e.ledger.SupportBorrowAsset(ctx, "mallory", usdt, decimal.Zero, decimal.Zero)
	assert.Equal(t, core.ErrOperationForbidden, err)

	err = e.ledger.SupportCollateral(ctx, "mallory", btc, core.CollateralConfig{
		LTV:                  decimal.NewFromFloat(0.5),
		LiquidationThreshold: decimal.NewFromFloat(0.75),
	})
	assert.Equal(t, core.ErrOperationForbidden, err)
}

func TestSupportBorrowAsset(t *testing.T) {
	ctx := context.Background()
	e := newEnv(nil)

	err := e.ledger.SupportBorrowAsset(ctx, testAdmin, usdt, decimal.New(1, -7), decimal.Zero)
	require.NoError(t, err)

	err = e.ledger.SupportBorrowAsset(ctx, testAdmin, usdt, decimal.New(1, -7), decimal.Zero)
	assert.Equal(t, core.ErrAlreadyConfigured, err)

	// per-second rate above the cap
	err = e.ledger.SupportBorrowAsset(ctx, testAdmin, eth, decimal.New(1, -3), decimal.Zero)
	assert.Equal(t, core.ErrInvalidValue, err)

	index, err := e.ledger.CurrentIndex(ctx, usdt)
	require.NoError(t, err)
	assert.Equal(t, "1", index.String())
}

func TestSupportCollateral(t *testing.T) {
	ctx := context.Background()
	e := newEnv(nil)

	// no oracle quote yet
	err := e.ledger.SupportCollateral(ctx, testAdmin, btc, core.CollateralConfig{
		LTV:                  decimal.NewFromFloat(0.5),
		LiquidationThreshold: decimal.NewFromFloat(0.75),
	})
	assert.Error(t, err)

	e.setPrice(t, btc, decimal.Zero)
	err = e.ledger.SupportCollateral(ctx, testAdmin, btc, core.CollateralConfig{
		LTV:                  decimal.NewFromFloat(0.5),
		LiquidationThreshold: decimal.NewFromFloat(0.75),
	})
	assert.Equal(t, core.ErrOraclePriceZero, err)

	e.setPrice(t, btc, decimal.New(3000, 0))

	// ltv above threshold
	err = e.ledger.SupportCollateral(ctx, testAdmin, btc, core.CollateralConfig{
		LTV:                  decimal.NewFromFloat(0.8),
		LiquidationThreshold: decimal.NewFromFloat(0.75),
	})
	assert.Equal(t, core.ErrInvalidValue, err)

	// threshold + bonus above 100%
	err = e.ledger.SupportCollateral(ctx, testAdmin, btc, core.CollateralConfig{
		LTV:                  decimal.NewFromFloat(0.5),
		LiquidationThreshold: decimal.NewFromFloat(0.9),
		LiquidationBonus:     decimal.NewFromFloat(0.2),
	})
	assert.Equal(t, core.ErrInvalidValue, err)

	err = e.ledger.SupportCollateral(ctx, testAdmin, btc, core.CollateralConfig{
		LTV:                  decimal.NewFromFloat(0.5),
		LiquidationThreshold: decimal.NewFromFloat(0.75),
		LiquidationBonus:     decimal.NewFromFloat(0.05),
	})
	require.NoError(t, err)

	err = e.ledger.SupportCollateral(ctx, testAdmin, btc, core.CollateralConfig{
		LTV:                  decimal.NewFromFloat(0.5),
		LiquidationThreshold: decimal.NewFromFloat(0.75),
	})
	assert.Equal(t, core.ErrAlreadyConfigured, err)
}

func TestUnsupportBorrowAsset(t *testing.T) {
	ctx := context.Background()
	e := newEnv(map[string]map[string]decimal.Decimal{
		testLedgerAcc: {usdt: decimal.New(1000, 0)},
		alice:         {btc: decimal.New(1, 0)},
	})
	e.bootstrapLending(t, decimal.Zero)

	// the last borrowable asset stays even with zero outstanding
	err := e.ledger.UnsupportBorrowAsset(ctx, testAdmin, usdt)
	assert.Equal(t, core.ErrNoBorrowAssetLeft, err)

	err = e.ledger.SupportBorrowAsset(ctx, testAdmin, eth, decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	err = e.ledger.Borrow(ctx, alice, usdt, decimal.New(100, 0))
	require.NoError(t, err)

	// outstanding principal blocks removal regardless of asset count
	err = e.ledger.UnsupportBorrowAsset(ctx, testAdmin, usdt)
	assert.Equal(t, core.ErrBorrowAssetStillInUse, err)

	err = e.ledger.UnsupportBorrowAsset(ctx, testAdmin, eth)
	require.NoError(t, err)
}

func TestUnsupportCollateral(t *testing.T) {
	ctx := context.Background()
	e := newEnv(nil)
	e.bootstrapLending(t, decimal.Zero)

	e.setPrice(t, usdt, decimal.New(1, 0))
	err := e.ledger.SupportCollateral(ctx, testAdmin, usdt, core.CollateralConfig{
		LTV:                  decimal.NewFromFloat(0.8),
		LiquidationThreshold: decimal.NewFromFloat(0.9),
	})
	require.NoError(t, err)

	err = e.ledger.UnsupportCollateral(ctx, testAdmin, usdt)
	assert.Equal(t, core.ErrCollateralIsBorrowAsset, err)

	err = e.ledger.UnsupportCollateral(ctx, testAdmin, btc)
	require.NoError(t, err)
}

func TestSetBorrowRateKeepsAccruedInterest(t *testing.T) {
	ctx := context.Background()
	e := newEnv(map[string]map[string]decimal.Decimal{
		testLedgerAcc: {usdt: decimal.New(1000, 0)},
		alice:         {btc: decimal.New(1, 0)},
	})
	e.bootstrapLending(t, decimal.New(1, -7))

	err := e.ledger.Borrow(ctx, alice, usdt, decimal.New(100, 0))
	require.NoError(t, err)

	e.clock.warp(10 * time.Second)

	err = e.ledger.SetBorrowRate(ctx, testAdmin, usdt, decimal.New(2, -7))
	require.NoError(t, err)

	// 100 * (1 + 1e-7*10), accrued at the old rate
	owed, err := e.ledger.ActualOwed(ctx, alice, usdt)
	require.NoError(t, err)
	assert.Equal(t, "100.0001", owed.String())

	e.clock.warp(10 * time.Second)

	// the new rate compounds on top of the materialized index
	owed, err = e.ledger.ActualOwed(ctx, alice, usdt)
	require.NoError(t, err)
	assert.Equal(t, "100.0003000002", owed.String())
}
