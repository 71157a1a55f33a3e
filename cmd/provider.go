package cmd

import (
	"context"

	"credit/core"
	"credit/internal/credit"
	authservice "credit/service/auth"
	custodyservice "credit/service/custody"
	ledgerservice "credit/service/ledger"
	oracleservice "credit/service/oracle"
	orchestrationservice "credit/service/orchestration"
	"credit/store/borrow"
	"credit/store/collateral"
	"credit/store/market"
	"credit/store/price"
	"credit/store/supply"
	"credit/store/transaction"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func provideSystem() *core.System {
	return &core.System{
		LedgerAccountID:   cfg.Ledger.AccountID,
		ExcludedSuppliers: cfg.Ledger.ExcludedSuppliers,
		Version:           rootCmd.Version,
	}
}

// ---------------store-----------------------------------------

func provideMarketStore() core.IMarketStore {
	return market.New()
}

func provideCollateralStore() core.ICollateralStore {
	return collateral.New()
}

func provideBorrowStore() core.IBorrowStore {
	return borrow.New()
}

func provideSupplyStore() core.ISupplyStore {
	return supply.New()
}

func provideTransactionStore() core.ITransactionStore {
	return transaction.New()
}

func providePriceStore() core.IPriceStore {
	return price.New()
}

// ------------------service------------------------------------

func provideOracleService(priceStore core.IPriceStore, clock core.Clock) core.IPriceOracleService {
	return oracleservice.New(priceStore, cfg.Oracle.StalenessWindow, clock)
}

func provideCustody() core.IAccountCustody {
	balances := make(map[string]map[string]decimal.Decimal)
	for _, b := range cfg.Genesis.Balances {
		if balances[b.UserID] == nil {
			balances[b.UserID] = make(map[string]decimal.Decimal)
		}
		balances[b.UserID][b.AssetID] = b.Amount
	}

	return custodyservice.NewWithBalances(balances)
}

func provideAuthorizer() core.IAuthorizer {
	return authservice.New(cfg.Ledger.Admins)
}

func provideOrchestrator() core.IOrchestrator {
	return orchestrationservice.New()
}

func provideLedger(
	system *core.System,
	marketStore core.IMarketStore,
	collateralStore core.ICollateralStore,
	borrowStore core.IBorrowStore,
	supplyStore core.ISupplyStore,
	transactionStore core.ITransactionStore,
	priceStore core.IPriceStore,
	clock core.Clock,
) core.ILedger {
	return ledgerservice.New(
		system,
		marketStore,
		collateralStore,
		borrowStore,
		supplyStore,
		transactionStore,
		provideOracleService(priceStore, clock),
		provideCustody(),
		provideAuthorizer(),
		provideOrchestrator(),
		clock,
	)
}

// seedGenesis loads the configured markets, collaterals and prices into
// the stores. Collateral configs go through Validate so a bad genesis
// fails the boot instead of poisoning the ledger.
func seedGenesis(
	ctx context.Context,
	marketStore core.IMarketStore,
	collateralStore core.ICollateralStore,
	priceStore core.IPriceStore,
	clock core.Clock,
) {
	now := clock.Now()

	for _, p := range cfg.Genesis.Prices {
		e := priceStore.Save(ctx, &core.Price{
			AssetID:   p.AssetID,
			Price:     p.Price,
			UpdatedAt: now,
		})
		if e != nil {
			logrus.WithError(e).Panicln("genesis price", p.AssetID)
		}
	}

	for _, m := range cfg.Genesis.Markets {
		if !credit.ValidRate(m.Rate) {
			logrus.Panicln("genesis market rate out of range:", m.AssetID)
		}

		e := marketStore.Save(ctx, &core.Market{
			AssetID:        m.AssetID,
			Rate:           m.Rate,
			InterestIndex:  credit.InitialIndex,
			LastUpdatedAt:  now,
			TotalPrincipal: decimal.Zero,
			TotalShares:    decimal.Zero,
			MinShares:      m.MinShares,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if e != nil {
			logrus.WithError(e).Panicln("genesis market", m.AssetID)
		}
	}

	for _, c := range cfg.Genesis.Collaterals {
		collateral := &core.Collateral{
			AssetID:              c.AssetID,
			LTV:                  c.LTV,
			LiquidationThreshold: c.LiquidationThreshold,
			LiquidationBonus:     c.LiquidationBonus,
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		if e := collateral.Validate(); e != nil {
			logrus.WithError(e).Panicln("genesis collateral", c.AssetID)
		}
		if e := collateralStore.Save(ctx, collateral); e != nil {
			logrus.WithError(e).Panicln("genesis collateral", c.AssetID)
		}
	}
}
