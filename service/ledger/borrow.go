package ledger

import (
	"context"

	"credit/core"
	"credit/internal/credit"

	"github.com/shopspring/decimal"
)

func (s *ledgerService) Borrow(ctx context.Context, userID, assetID string, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return core.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	market, e := s.marketStore.Find(ctx, assetID)
	if e != nil {
		return core.ErrUnsupportedBorrowAsset
	}

	liquidity, e := s.freeLiquidity(ctx, assetID)
	if e != nil {
		return e
	}
	if liquidity.LessThan(amount) {
		return core.ErrInsufficientLiquidity
	}

	s.materialize(market)

	borrow, e := s.borrowStore.Find(ctx, userID, assetID)
	if e != nil {
		borrow = &core.Borrow{
			UserID:    userID,
			AssetID:   assetID,
			Principal: decimal.Zero,
			CreatedAt: s.clock.Now(),
		}
	}

	principal := credit.Normalize(amount, market.InterestIndex)
	if principal.LessThanOrEqual(decimal.Zero) {
		return core.ErrInvalidAmount
	}

	borrow.Principal = borrow.Principal.Add(principal)
	borrow.UpdatedAt = s.clock.Now()
	market.TotalPrincipal = market.TotalPrincipal.Add(principal)

	// post-condition on the staged position, before the payout lands in
	// the borrower's wallet: borrowed tokens never collateralize their
	// own loan
	if e := s.checkHealth(ctx, userID, borrow, market); e != nil {
		return e
	}

	if e := s.custody.Transfer(ctx, s.system.LedgerAccountID, userID, assetID, amount); e != nil {
		return e
	}

	if e := s.marketStore.Update(ctx, market); e != nil {
		return e
	}
	if e := s.borrowStore.Save(ctx, borrow); e != nil {
		return e
	}

	return s.journal(ctx, core.ActionBorrow, userID, assetID, amount, decimal.Zero)
}

func (s *ledgerService) Repay(ctx context.Context, payer, userID, assetID string, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, core.ErrInvalidAmount
	}
	if amount.IsZero() {
		return decimal.Zero, core.ErrRepaymentAmountIsZero
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	market, e := s.marketStore.Find(ctx, assetID)
	if e != nil {
		return decimal.Zero, core.ErrUnsupportedBorrowAsset
	}

	borrow, e := s.borrowStore.Find(ctx, userID, assetID)
	if e != nil {
		return decimal.Zero, core.ErrBorrowNotFound
	}
	if borrow.Principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, core.ErrBorrowNotFound
	}

	s.materialize(market)

	owed := credit.ActualOwed(borrow.Principal, market.InterestIndex)

	// clamp: overpaying repays exactly what is owed, excess is never
	// pulled from the payer
	applied := amount
	reduction := credit.Normalize(applied, market.InterestIndex)
	if applied.GreaterThanOrEqual(owed) {
		applied = owed
		reduction = borrow.Principal
	}

	if e := s.custody.Transfer(ctx, payer, s.system.LedgerAccountID, assetID, applied); e != nil {
		return decimal.Zero, e
	}

	borrow.Principal = borrow.Principal.Sub(reduction)
	borrow.UpdatedAt = s.clock.Now()
	market.TotalPrincipal = market.TotalPrincipal.Sub(reduction)
	if market.TotalPrincipal.IsNegative() {
		market.TotalPrincipal = decimal.Zero
	}

	if e := s.marketStore.Update(ctx, market); e != nil {
		return decimal.Zero, e
	}

	if borrow.Principal.LessThanOrEqual(decimal.Zero) {
		if e := s.borrowStore.Delete(ctx, userID, assetID); e != nil {
			return decimal.Zero, e
		}
	} else {
		if e := s.borrowStore.Save(ctx, borrow); e != nil {
			return decimal.Zero, e
		}
	}

	if e := s.journal(ctx, core.ActionRepay, userID, assetID, applied, decimal.Zero); e != nil {
		return decimal.Zero, e
	}

	return applied, nil
}
