package ledger

import (
	"context"
	"sync"

	"credit/core"
	"credit/internal/credit"
	"credit/pkg/id"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

// ledgerService is the single aggregate owning all credit state. A single
// writer mutex serializes mutating operations; every operation stages its
// changes on store copies and commits only after all post-conditions
// passed, so a failed call leaves nothing behind. Views read committed
// store state plus the clock and never mutate.
type ledgerService struct {
	mu sync.Mutex

	system           *core.System
	marketStore      core.IMarketStore
	collateralStore  core.ICollateralStore
	borrowStore      core.IBorrowStore
	supplyStore      core.ISupplyStore
	transactionStore core.ITransactionStore
	oracleService    core.IPriceOracleService
	custody          core.IAccountCustody
	authorizer       core.IAuthorizer
	orchestrator     core.IOrchestrator
	clock            core.Clock
}

// New new credit ledger
func New(
	system *core.System,
	marketStore core.IMarketStore,
	collateralStore core.ICollateralStore,
	borrowStore core.IBorrowStore,
	supplyStore core.ISupplyStore,
	transactionStore core.ITransactionStore,
	oracleService core.IPriceOracleService,
	custody core.IAccountCustody,
	authorizer core.IAuthorizer,
	orchestrator core.IOrchestrator,
	clock core.Clock,
) core.ILedger {
	if clock == nil {
		clock = core.NewWallClock()
	}

	return &ledgerService{
		system:           system,
		marketStore:      marketStore,
		collateralStore:  collateralStore,
		borrowStore:      borrowStore,
		supplyStore:      supplyStore,
		transactionStore: transactionStore,
		oracleService:    oracleService,
		custody:          custody,
		authorizer:       authorizer,
		orchestrator:     orchestrator,
		clock:            clock,
	}
}

// materialize snapshots the market's index at the current clock time.
// Must run before any principal change and before any rate change.
func (s *ledgerService) materialize(market *core.Market) {
	now := s.clock.Now()
	market.InterestIndex = credit.CurrentIndex(market.InterestIndex, market.Rate, market.LastUpdatedAt, now)
	market.LastUpdatedAt = now
	market.UpdatedAt = now
}

// freeLiquidity is the ledger account's own custody balance of the
// asset, not total claims.
func (s *ledgerService) freeLiquidity(ctx context.Context, assetID string) (decimal.Decimal, error) {
	return s.custody.BalanceOf(ctx, s.system.LedgerAccountID, assetID)
}

// totalClaim is what suppliers collectively own: free liquidity plus
// everything currently owed by borrowers.
func (s *ledgerService) totalClaim(ctx context.Context, market *core.Market) (decimal.Decimal, error) {
	liquidity, e := s.freeLiquidity(ctx, market.AssetID)
	if e != nil {
		return decimal.Zero, e
	}

	index := credit.CurrentIndex(market.InterestIndex, market.Rate, market.LastUpdatedAt, s.clock.Now())
	return liquidity.Add(credit.ActualOwed(market.TotalPrincipal, index)), nil
}

// debtValue sums the USD value owed by userID across all borrow assets.
// staged, when non-nil, replaces the committed position and market for
// its asset so post-conditions see the operation being staged.
func (s *ledgerService) debtValue(ctx context.Context, userID string, staged *core.Borrow, stagedMarket *core.Market) (decimal.Decimal, error) {
	borrows, e := s.borrowStore.FindByUser(ctx, userID)
	if e != nil {
		return decimal.Zero, e
	}

	if staged != nil {
		replaced := false
		for i, b := range borrows {
			if b.AssetID == staged.AssetID {
				borrows[i] = staged
				replaced = true
				break
			}
		}
		if !replaced {
			borrows = append(borrows, staged)
		}
	}

	now := s.clock.Now()
	value := decimal.Zero
	for _, borrow := range borrows {
		if borrow.Principal.LessThanOrEqual(decimal.Zero) {
			continue
		}

		market := stagedMarket
		if market == nil || market.AssetID != borrow.AssetID {
			market, e = s.marketStore.Find(ctx, borrow.AssetID)
			if e != nil {
				return decimal.Zero, e
			}
		}

		price, e := s.oracleService.GetPrice(ctx, borrow.AssetID)
		if e != nil {
			return decimal.Zero, e
		}

		index := credit.CurrentIndex(market.InterestIndex, market.Rate, market.LastUpdatedAt, now)
		owed := credit.ActualOwed(borrow.Principal, index)
		value = value.Add(owed.Mul(price))
	}

	return value, nil
}

// collateralValue aggregates userID's collateral in USD, each asset
// weighted by the given factor of its config. balances overrides custody
// balances for assets already touched by a staged liquidation.
func (s *ledgerService) collateralValue(ctx context.Context, userID string, weight func(*core.Collateral) decimal.Decimal, balances map[string]decimal.Decimal) (decimal.Decimal, error) {
	collaterals, e := s.collateralStore.All(ctx)
	if e != nil {
		return decimal.Zero, e
	}

	value := decimal.Zero
	for _, collateral := range collaterals {
		balance, ok := balances[collateral.AssetID]
		if !ok {
			balance, e = s.custody.BalanceOf(ctx, userID, collateral.AssetID)
			if e != nil {
				return decimal.Zero, e
			}
		}
		if balance.LessThanOrEqual(decimal.Zero) {
			continue
		}

		price, e := s.oracleService.GetPrice(ctx, collateral.AssetID)
		if e != nil {
			return decimal.Zero, e
		}

		value = value.Add(balance.Mul(price).Mul(weight(collateral)))
	}

	return value, nil
}

// checkHealth verifies the post-borrow condition: LTV-weighted collateral
// value must cover the account's entire debt value.
func (s *ledgerService) checkHealth(ctx context.Context, userID string, staged *core.Borrow, stagedMarket *core.Market) error {
	debt, e := s.debtValue(ctx, userID, staged, stagedMarket)
	if e != nil {
		return e
	}
	if debt.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	capacity, e := s.collateralValue(ctx, userID, func(c *core.Collateral) decimal.Decimal {
		return c.LTV
	}, nil)
	if e != nil {
		return e
	}

	if capacity.LessThan(debt) {
		return core.ErrAccountUnhealthy
	}

	return nil
}

// isLiquidatable compares threshold-weighted collateral value against
// total debt value, on committed state plus the supplied overrides.
func (s *ledgerService) isLiquidatable(ctx context.Context, userID string, staged *core.Borrow, stagedMarket *core.Market, balances map[string]decimal.Decimal) (bool, error) {
	debt, e := s.debtValue(ctx, userID, staged, stagedMarket)
	if e != nil {
		return false, e
	}
	if debt.LessThanOrEqual(decimal.Zero) {
		return false, nil
	}

	weighted, e := s.collateralValue(ctx, userID, func(c *core.Collateral) decimal.Decimal {
		return c.LiquidationThreshold
	}, balances)
	if e != nil {
		return false, e
	}

	return weighted.LessThan(debt), nil
}

func (s *ledgerService) journal(ctx context.Context, action core.Action, userID, assetID string, amount, extra decimal.Decimal) error {
	transaction := &core.Transaction{
		TraceID:   id.GenTraceID(),
		Action:    action,
		UserID:    userID,
		AssetID:   assetID,
		Amount:    amount,
		Extra:     extra,
		CreatedAt: s.clock.Now(),
	}

	if e := s.transactionStore.Create(ctx, transaction); e != nil {
		logger.FromContext(ctx).WithField("action", action).Errorln("journal:", e)
		return e
	}

	return nil
}

// MaterializeIndex snapshots the asset's index at the current time.
// Semantically a no-op for accounting, views always extrapolate; it only
// refreshes the queryable snapshot.
func (s *ledgerService) MaterializeIndex(ctx context.Context, assetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	market, e := s.marketStore.Find(ctx, assetID)
	if e != nil {
		return e
	}

	s.materialize(market)
	return s.marketStore.Update(ctx, market)
}
