package config

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config node config
type Config struct {
	Ledger  Ledger  `json:"ledger"`
	Oracle  Oracle  `json:"oracle"`
	Genesis Genesis `json:"genesis"`
}

// Ledger ledger account config
type Ledger struct {
	// AccountID custody account holding the pool's free liquidity
	AccountID string `json:"account_id"`
	// Admins callers allowed to mutate the registry
	Admins []string `json:"admins"`
	// ExcludedSuppliers accounts that may never hold a supply position
	ExcludedSuppliers []string `json:"excluded_suppliers"`
}

// Oracle price oracle config
type Oracle struct {
	// StalenessWindow quotes older than this fail closed
	StalenessWindow time.Duration `json:"staleness_window"`
}

// Genesis state seeded at boot
type Genesis struct {
	Markets     []GenesisMarket     `json:"markets"`
	Collaterals []GenesisCollateral `json:"collaterals"`
	Prices      []GenesisPrice      `json:"prices"`
	Balances    []GenesisBalance    `json:"balances"`
}

// GenesisMarket a borrowable asset present at boot
type GenesisMarket struct {
	AssetID   string          `json:"asset_id"`
	Rate      decimal.Decimal `json:"rate"`
	MinShares decimal.Decimal `json:"min_shares"`
}

// GenesisCollateral a collateral asset present at boot
type GenesisCollateral struct {
	AssetID              string          `json:"asset_id"`
	LTV                  decimal.Decimal `json:"ltv"`
	LiquidationThreshold decimal.Decimal `json:"liquidation_threshold"`
	LiquidationBonus     decimal.Decimal `json:"liquidation_bonus"`
}

// GenesisPrice an initial oracle quote
type GenesisPrice struct {
	AssetID string          `json:"asset_id"`
	Price   decimal.Decimal `json:"price"`
}

// GenesisBalance an initial custody balance
type GenesisBalance struct {
	UserID  string          `json:"user_id"`
	AssetID string          `json:"asset_id"`
	Amount  decimal.Decimal `json:"amount"`
}
