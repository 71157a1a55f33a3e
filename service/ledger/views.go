package ledger

import (
	"context"

	"credit/core"
	"credit/internal/credit"

	"github.com/shopspring/decimal"
)

// Views are pure functions of committed store state plus the clock, so
// they take no lock and may run concurrently with writers.

func (s *ledgerService) CurrentIndex(ctx context.Context, assetID string) (decimal.Decimal, error) {
	market, e := s.marketStore.Find(ctx, assetID)
	if e != nil {
		return decimal.Zero, core.ErrUnsupportedBorrowAsset
	}

	return credit.CurrentIndex(market.InterestIndex, market.Rate, market.LastUpdatedAt, s.clock.Now()), nil
}

func (s *ledgerService) ActualOwed(ctx context.Context, userID, assetID string) (decimal.Decimal, error) {
	index, e := s.CurrentIndex(ctx, assetID)
	if e != nil {
		return decimal.Zero, e
	}

	borrow, e := s.borrowStore.Find(ctx, userID, assetID)
	if e != nil {
		return decimal.Zero, nil
	}

	return credit.ActualOwed(borrow.Principal, index), nil
}

func (s *ledgerService) TotalOwed(ctx context.Context, assetID string) (decimal.Decimal, error) {
	market, e := s.marketStore.Find(ctx, assetID)
	if e != nil {
		return decimal.Zero, core.ErrUnsupportedBorrowAsset
	}

	index := credit.CurrentIndex(market.InterestIndex, market.Rate, market.LastUpdatedAt, s.clock.Now())
	return credit.ActualOwed(market.TotalPrincipal, index), nil
}

func (s *ledgerService) FreeLiquidity(ctx context.Context, assetID string) (decimal.Decimal, error) {
	return s.freeLiquidity(ctx, assetID)
}

// SuppliedAmount is the underlying amount the supplier's shares are
// worth at the pool's current exchange rate.
func (s *ledgerService) SuppliedAmount(ctx context.Context, userID, assetID string) (decimal.Decimal, error) {
	market, e := s.marketStore.Find(ctx, assetID)
	if e != nil {
		return decimal.Zero, core.ErrUnsupportedBorrowAsset
	}

	supply, e := s.supplyStore.Find(ctx, userID, assetID)
	if e != nil {
		return decimal.Zero, nil
	}

	claim, e := s.totalClaim(ctx, market)
	if e != nil {
		return decimal.Zero, e
	}

	return credit.AmountForShares(supply.Shares, market.TotalShares, claim), nil
}
