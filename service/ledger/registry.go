package ledger

import (
	"context"

	"credit/core"
	"credit/internal/credit"

	"github.com/shopspring/decimal"
)

func (s *ledgerService) SupportCollateral(ctx context.Context, caller, assetID string, cfg core.CollateralConfig) error {
	if e := s.authorizer.CheckAuthorized(ctx, caller); e != nil {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	collateral := &core.Collateral{
		AssetID:              assetID,
		LTV:                  cfg.LTV,
		LiquidationThreshold: cfg.LiquidationThreshold,
		LiquidationBonus:     cfg.LiquidationBonus,
		CreatedAt:            s.clock.Now(),
		UpdatedAt:            s.clock.Now(),
	}
	if e := collateral.Validate(); e != nil {
		return e
	}

	if _, e := s.collateralStore.Find(ctx, assetID); e == nil {
		return core.ErrAlreadyConfigured
	}

	// onboarding an asset the oracle cannot value would brick every
	// health check that touches it
	price, e := s.oracleService.GetPrice(ctx, assetID)
	if e != nil {
		return e
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return core.ErrOraclePriceZero
	}

	return s.collateralStore.Save(ctx, collateral)
}

func (s *ledgerService) UnsupportCollateral(ctx context.Context, caller, assetID string) error {
	if e := s.authorizer.CheckAuthorized(ctx, caller); e != nil {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, e := s.collateralStore.Find(ctx, assetID); e != nil {
		return e
	}

	if _, e := s.marketStore.Find(ctx, assetID); e == nil {
		return core.ErrCollateralIsBorrowAsset
	}

	return s.collateralStore.Delete(ctx, assetID)
}

func (s *ledgerService) SetCollateralConfig(ctx context.Context, caller, assetID string, cfg core.CollateralConfig) error {
	if e := s.authorizer.CheckAuthorized(ctx, caller); e != nil {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	collateral, e := s.collateralStore.Find(ctx, assetID)
	if e != nil {
		return e
	}

	collateral.LTV = cfg.LTV
	collateral.LiquidationThreshold = cfg.LiquidationThreshold
	collateral.LiquidationBonus = cfg.LiquidationBonus
	collateral.UpdatedAt = s.clock.Now()
	if e := collateral.Validate(); e != nil {
		return e
	}

	return s.collateralStore.Update(ctx, collateral)
}

func (s *ledgerService) SupportBorrowAsset(ctx context.Context, caller, assetID string, rate, minShares decimal.Decimal) error {
	if e := s.authorizer.CheckAuthorized(ctx, caller); e != nil {
		return e
	}

	if assetID == "" || !credit.ValidRate(rate) || minShares.IsNegative() {
		return core.ErrInvalidValue
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, e := s.marketStore.Find(ctx, assetID); e == nil {
		return core.ErrAlreadyConfigured
	}

	now := s.clock.Now()
	market := &core.Market{
		AssetID:        assetID,
		Rate:           rate,
		InterestIndex:  credit.InitialIndex,
		LastUpdatedAt:  now,
		TotalPrincipal: decimal.Zero,
		TotalShares:    decimal.Zero,
		MinShares:      minShares,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	return s.marketStore.Save(ctx, market)
}

func (s *ledgerService) UnsupportBorrowAsset(ctx context.Context, caller, assetID string) error {
	if e := s.authorizer.CheckAuthorized(ctx, caller); e != nil {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	market, e := s.marketStore.Find(ctx, assetID)
	if e != nil {
		return e
	}

	if market.TotalPrincipal.GreaterThan(decimal.Zero) {
		return core.ErrBorrowAssetStillInUse
	}

	count, e := s.marketStore.Count(ctx)
	if e != nil {
		return e
	}
	if count <= 1 {
		return core.ErrNoBorrowAssetLeft
	}

	return s.marketStore.Delete(ctx, assetID)
}

// SetBorrowRate materializes first so interest already accrued keeps the
// old rate; the new rate only applies from now on.
func (s *ledgerService) SetBorrowRate(ctx context.Context, caller, assetID string, rate decimal.Decimal) error {
	if e := s.authorizer.CheckAuthorized(ctx, caller); e != nil {
		return e
	}

	if !credit.ValidRate(rate) {
		return core.ErrInvalidValue
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	market, e := s.marketStore.Find(ctx, assetID)
	if e != nil {
		return e
	}

	s.materialize(market)
	market.Rate = rate

	return s.marketStore.Update(ctx, market)
}

func (s *ledgerService) SetMinShares(ctx context.Context, caller, assetID string, minShares decimal.Decimal) error {
	if e := s.authorizer.CheckAuthorized(ctx, caller); e != nil {
		return e
	}

	if minShares.IsNegative() {
		return core.ErrInvalidValue
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	market, e := s.marketStore.Find(ctx, assetID)
	if e != nil {
		return e
	}

	market.MinShares = minShares
	market.UpdatedAt = s.clock.Now()

	return s.marketStore.Update(ctx, market)
}
