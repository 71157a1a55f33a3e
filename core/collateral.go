package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Collateral is the risk configuration of one collateral-eligible asset.
// All three factors are decimal fractions of 1 (100%).
type Collateral struct {
	AssetID string `json:"asset_id"`
	// LTV max fraction of collateral value that may be borrowed
	LTV decimal.Decimal `json:"ltv"`
	// LiquidationThreshold collateral-value fraction below which the
	// position becomes liquidatable, always >= LTV
	LiquidationThreshold decimal.Decimal `json:"liquidation_threshold"`
	// LiquidationBonus extra collateral fraction paid to a liquidator
	LiquidationBonus decimal.Decimal `json:"liquidation_bonus"`
	Version          int64           `json:"version"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Validate checks the ltv <= threshold <= 1 - bonus invariant.
func (c *Collateral) Validate() error {
	if c.AssetID == "" {
		return ErrInvalidValue
	}
	if c.LTV.IsNegative() || c.LiquidationThreshold.IsNegative() || c.LiquidationBonus.IsNegative() {
		return ErrInvalidValue
	}
	if c.LTV.GreaterThan(c.LiquidationThreshold) {
		return ErrInvalidValue
	}
	if c.LiquidationThreshold.Add(c.LiquidationBonus).GreaterThan(decimal.New(1, 0)) {
		return ErrInvalidValue
	}
	return nil
}

// ICollateralStore collateral store interface
type ICollateralStore interface {
	Save(ctx context.Context, collateral *Collateral) error
	Find(ctx context.Context, assetID string) (*Collateral, error)
	All(ctx context.Context) ([]*Collateral, error)
	Update(ctx context.Context, collateral *Collateral) error
	Delete(ctx context.Context, assetID string) error
}
