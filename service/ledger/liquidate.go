package ledger

import (
	"context"

	"credit/core"
	"credit/internal/credit"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

func (s *ledgerService) Liquidatable(ctx context.Context, userID string) (bool, error) {
	return s.isLiquidatable(ctx, userID, nil, nil, nil)
}

// Liquidate repays the account's debt in repayAssetID on behalf of the
// liquidator, in exchange for bonus-weighted collateral walked along the
// caller's preference order. Rounds each target half of the debt
// outstanding at call time and repeat until the account is healthy, the
// requested amount is exhausted, the debt is gone, or no preferred
// collateral remains.
func (s *ledgerService) Liquidate(ctx context.Context, liquidator, userID, repayAssetID string, amount decimal.Decimal, collateralPreference []string) (*core.LiquidationResult, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, core.ErrInvalidAmount
	}
	if len(collateralPreference) == 0 {
		return nil, core.ErrCollateralPreferenceEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	market, e := s.marketStore.Find(ctx, repayAssetID)
	if e != nil {
		return nil, core.ErrUnsupportedBorrowAsset
	}

	collaterals := make([]*core.Collateral, 0, len(collateralPreference))
	for _, assetID := range collateralPreference {
		collateral, e := s.collateralStore.Find(ctx, assetID)
		if e != nil {
			return nil, core.ErrNotACollateralToken
		}
		collaterals = append(collaterals, collateral)
	}

	borrow, e := s.borrowStore.Find(ctx, userID, repayAssetID)
	if e != nil || borrow.Principal.LessThanOrEqual(decimal.Zero) {
		return nil, core.ErrBorrowNotFound
	}

	s.materialize(market)

	liquidatable, e := s.isLiquidatable(ctx, userID, borrow, market, nil)
	if e != nil {
		return nil, e
	}
	if !liquidatable {
		return nil, core.ErrCannotLiquidateYet
	}

	// collateral must not keep escaping while it is being seized
	if e := s.orchestrator.CancelPendingWithdrawals(ctx, userID); e != nil {
		return nil, e
	}

	repayPrice, e := s.oracleService.GetPrice(ctx, repayAssetID)
	if e != nil {
		return nil, e
	}

	prices := make(map[string]decimal.Decimal, len(collaterals))
	balances := make(map[string]decimal.Decimal, len(collaterals))
	for _, collateral := range collaterals {
		if _, ok := balances[collateral.AssetID]; ok {
			continue
		}

		balance, e := s.custody.BalanceOf(ctx, userID, collateral.AssetID)
		if e != nil {
			return nil, e
		}
		balances[collateral.AssetID] = balance

		price, e := s.oracleService.GetPrice(ctx, collateral.AssetID)
		if e != nil {
			return nil, e
		}
		prices[collateral.AssetID] = price
	}

	startOwed := credit.ActualOwed(borrow.Principal, market.InterestIndex)
	owed := startOwed
	requested := amount
	totalRepaid := decimal.Zero
	seized := make(map[string]decimal.Decimal)
	rounds := 0

	for owed.GreaterThan(decimal.Zero) && requested.GreaterThan(decimal.Zero) {
		available := decimal.Zero
		for _, balance := range balances {
			available = available.Add(balance)
		}
		if available.LessThanOrEqual(decimal.Zero) {
			break
		}

		target := credit.RoundTarget(startOwed, owed, requested)
		if target.LessThanOrEqual(decimal.Zero) {
			break
		}

		remainingValue := target.Mul(repayPrice)
		for _, collateral := range collaterals {
			balance := balances[collateral.AssetID]
			if balance.LessThanOrEqual(decimal.Zero) {
				continue
			}

			price := prices[collateral.AssetID]
			absorbable := credit.AbsorbableDebtValue(balance, price, collateral.LiquidationBonus)
			take := remainingValue
			if take.GreaterThan(absorbable) {
				take = absorbable
			}
			if take.LessThanOrEqual(decimal.Zero) {
				continue
			}

			seize := credit.SeizeForDebtValue(take, price, collateral.LiquidationBonus)
			if seize.GreaterThan(balance) {
				seize = balance
			}

			balances[collateral.AssetID] = balance.Sub(seize)
			seized[collateral.AssetID] = seized[collateral.AssetID].Add(seize)
			remainingValue = remainingValue.Sub(take)
			if remainingValue.LessThanOrEqual(decimal.Zero) {
				break
			}
		}

		owed = owed.Sub(target)
		requested = requested.Sub(target)
		totalRepaid = totalRepaid.Add(target)
		rounds++

		stagedBorrow := &core.Borrow{
			UserID:    userID,
			AssetID:   repayAssetID,
			Principal: credit.Normalize(owed, market.InterestIndex),
		}
		liquidatable, e = s.isLiquidatable(ctx, userID, stagedBorrow, market, balances)
		if e != nil {
			return nil, e
		}
		if !liquidatable {
			break
		}
	}

	result := &core.LiquidationResult{
		DebtRepaid: totalRepaid,
		Seized:     seized,
		Rounds:     rounds,
	}
	if totalRepaid.LessThanOrEqual(decimal.Zero) {
		return result, nil
	}

	if e := s.custody.Transfer(ctx, liquidator, s.system.LedgerAccountID, repayAssetID, totalRepaid); e != nil {
		return nil, e
	}

	seizedValue := decimal.Zero
	done := make(map[string]bool)
	for _, collateral := range collaterals {
		assetID := collateral.AssetID
		if done[assetID] {
			continue
		}
		done[assetID] = true

		amount := seized[assetID]
		if amount.LessThanOrEqual(decimal.Zero) {
			continue
		}
		if e := s.custody.Transfer(ctx, userID, liquidator, assetID, amount); e != nil {
			return nil, e
		}
		seizedValue = seizedValue.Add(amount.Mul(prices[assetID]))
	}

	reduction := credit.Normalize(totalRepaid, market.InterestIndex)
	if owed.LessThanOrEqual(decimal.Zero) || reduction.GreaterThan(borrow.Principal) {
		reduction = borrow.Principal
	}

	market.TotalPrincipal = market.TotalPrincipal.Sub(reduction)
	if market.TotalPrincipal.IsNegative() {
		market.TotalPrincipal = decimal.Zero
	}
	if e := s.marketStore.Update(ctx, market); e != nil {
		return nil, e
	}

	borrow.Principal = borrow.Principal.Sub(reduction)
	borrow.UpdatedAt = s.clock.Now()
	if borrow.Principal.LessThanOrEqual(decimal.Zero) {
		if e := s.borrowStore.Delete(ctx, userID, repayAssetID); e != nil {
			return nil, e
		}
	} else {
		if e := s.borrowStore.Save(ctx, borrow); e != nil {
			return nil, e
		}
	}

	if e := s.journal(ctx, core.ActionLiquidate, userID, repayAssetID, totalRepaid, seizedValue); e != nil {
		return nil, e
	}

	logger.FromContext(ctx).WithField("user", userID).
		WithField("liquidator", liquidator).
		Infof("liquidated %s %s over %d rounds", totalRepaid, repayAssetID, rounds)

	return result, nil
}
