package ledger

import (
	"context"

	"credit/core"
	"credit/internal/credit"

	"github.com/shopspring/decimal"
)

func (s *ledgerService) Supply(ctx context.Context, depositor, beneficiary, assetID string, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, core.ErrInvalidAmount
	}
	if s.system.IsSupplierExcluded(beneficiary) {
		return decimal.Zero, core.ErrSupplierNotAllowed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	market, e := s.marketStore.Find(ctx, assetID)
	if e != nil {
		return decimal.Zero, core.ErrUnsupportedBorrowAsset
	}

	s.materialize(market)

	claim, e := s.totalClaim(ctx, market)
	if e != nil {
		return decimal.Zero, e
	}

	shares := credit.SharesForDeposit(amount, market.TotalShares, claim)
	if shares.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, core.ErrSharesCannotBeZero
	}

	supply, e := s.supplyStore.Find(ctx, beneficiary, assetID)
	if e != nil {
		supply = &core.Supply{
			UserID:    beneficiary,
			AssetID:   assetID,
			Shares:    decimal.Zero,
			CreatedAt: s.clock.Now(),
		}
	}

	supply.Shares = supply.Shares.Add(shares)
	supply.UpdatedAt = s.clock.Now()
	if supply.Shares.LessThan(market.MinShares) {
		return decimal.Zero, core.ErrSharesLessThanMinShares
	}

	if e := s.custody.Transfer(ctx, depositor, s.system.LedgerAccountID, assetID, amount); e != nil {
		return decimal.Zero, e
	}

	market.TotalShares = market.TotalShares.Add(shares)
	if e := s.marketStore.Update(ctx, market); e != nil {
		return decimal.Zero, e
	}
	if e := s.supplyStore.Save(ctx, supply); e != nil {
		return decimal.Zero, e
	}

	if e := s.journal(ctx, core.ActionSupply, beneficiary, assetID, amount, shares); e != nil {
		return decimal.Zero, e
	}

	return shares, nil
}

func (s *ledgerService) Withdraw(ctx context.Context, userID, assetID string, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, core.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	market, e := s.marketStore.Find(ctx, assetID)
	if e != nil {
		return decimal.Zero, core.ErrUnsupportedBorrowAsset
	}

	supply, e := s.supplyStore.Find(ctx, userID, assetID)
	if e != nil {
		return decimal.Zero, core.ErrInsufficientBorrowShares
	}

	s.materialize(market)

	claim, e := s.totalClaim(ctx, market)
	if e != nil {
		return decimal.Zero, e
	}
	if market.TotalShares.LessThanOrEqual(decimal.Zero) || claim.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, core.ErrZeroTotalBorrowTokens
	}

	shares := credit.SharesForWithdrawal(amount, market.TotalShares, claim)
	if shares.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, core.ErrSharesCannotBeZero
	}
	if shares.GreaterThan(supply.Shares) {
		return decimal.Zero, core.ErrInsufficientBorrowShares
	}

	remaining := supply.Shares.Sub(shares)
	if remaining.GreaterThan(decimal.Zero) && remaining.LessThan(market.MinShares) {
		return decimal.Zero, core.ErrSharesLessThanMinShares
	}

	liquidity, e := s.freeLiquidity(ctx, assetID)
	if e != nil {
		return decimal.Zero, e
	}
	if liquidity.LessThan(amount) {
		return decimal.Zero, core.ErrInsufficientLiquidity
	}

	if e := s.custody.Transfer(ctx, s.system.LedgerAccountID, userID, assetID, amount); e != nil {
		return decimal.Zero, e
	}

	market.TotalShares = market.TotalShares.Sub(shares)
	if e := s.marketStore.Update(ctx, market); e != nil {
		return decimal.Zero, e
	}

	if remaining.LessThanOrEqual(decimal.Zero) {
		if e := s.supplyStore.Delete(ctx, userID, assetID); e != nil {
			return decimal.Zero, e
		}
	} else {
		supply.Shares = remaining
		supply.UpdatedAt = s.clock.Now()
		if e := s.supplyStore.Save(ctx, supply); e != nil {
			return decimal.Zero, e
		}
	}

	if e := s.journal(ctx, core.ActionWithdraw, userID, assetID, amount, shares); e != nil {
		return decimal.Zero, e
	}

	return shares, nil
}
