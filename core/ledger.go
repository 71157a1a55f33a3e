package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// CollateralConfig is the caller-facing shape for registry updates.
type CollateralConfig struct {
	LTV                  decimal.Decimal `json:"ltv"`
	LiquidationThreshold decimal.Decimal `json:"liquidation_threshold"`
	LiquidationBonus     decimal.Decimal `json:"liquidation_bonus"`
}

// LiquidationResult summary of one liquidate call.
type LiquidationResult struct {
	// DebtRepaid repay-asset amount collected from the liquidator,
	// equal to the debt extinguished across all rounds
	DebtRepaid decimal.Decimal `json:"debt_repaid"`
	// Seized collateral transferred to the liquidator, per asset
	Seized map[string]decimal.Decimal `json:"seized"`
	// Rounds number of liquidation rounds executed
	Rounds int `json:"rounds"`
}

// ILedger is the collateralized credit ledger: a single aggregate owning
// every market, borrow position and supply position, mutated only through
// this API. Every mutating call is atomic; either all staged changes
// commit or none do.
type ILedger interface {
	// registry
	SupportCollateral(ctx context.Context, caller, assetID string, cfg CollateralConfig) error
	UnsupportCollateral(ctx context.Context, caller, assetID string) error
	SetCollateralConfig(ctx context.Context, caller, assetID string, cfg CollateralConfig) error
	SupportBorrowAsset(ctx context.Context, caller, assetID string, rate, minShares decimal.Decimal) error
	UnsupportBorrowAsset(ctx context.Context, caller, assetID string) error
	SetBorrowRate(ctx context.Context, caller, assetID string, rate decimal.Decimal) error
	SetMinShares(ctx context.Context, caller, assetID string, minShares decimal.Decimal) error

	// lending
	Borrow(ctx context.Context, userID, assetID string, amount decimal.Decimal) error
	Repay(ctx context.Context, payer, userID, assetID string, amount decimal.Decimal) (decimal.Decimal, error)
	Supply(ctx context.Context, depositor, beneficiary, assetID string, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, userID, assetID string, amount decimal.Decimal) (decimal.Decimal, error)
	Liquidate(ctx context.Context, liquidator, userID, repayAssetID string, amount decimal.Decimal, collateralPreference []string) (*LiquidationResult, error)

	// maintenance
	MaterializeIndex(ctx context.Context, assetID string) error

	// views, pure over committed state plus clock time
	CurrentIndex(ctx context.Context, assetID string) (decimal.Decimal, error)
	ActualOwed(ctx context.Context, userID, assetID string) (decimal.Decimal, error)
	TotalOwed(ctx context.Context, assetID string) (decimal.Decimal, error)
	FreeLiquidity(ctx context.Context, assetID string) (decimal.Decimal, error)
	SuppliedAmount(ctx context.Context, userID, assetID string) (decimal.Decimal, error)
	Liquidatable(ctx context.Context, userID string) (bool, error)
}
