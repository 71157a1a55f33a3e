package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Market is the ledger-side state of one borrowable asset: its interest
// configuration, the last materialized interest index, and the aggregate
// principal and supply-share totals.
type Market struct {
	AssetID string `json:"asset_id"`
	// Rate interest per second, as a decimal fraction
	Rate decimal.Decimal `json:"rate"`
	// InterestIndex last materialized index, starts at 1
	InterestIndex decimal.Decimal `json:"interest_index"`
	LastUpdatedAt time.Time       `json:"last_updated_at"`
	// TotalPrincipal normalized borrow principal outstanding
	TotalPrincipal decimal.Decimal `json:"total_principal"`
	// TotalShares supply shares outstanding
	TotalShares decimal.Decimal `json:"total_shares"`
	// MinShares floor for a non-zero supply position
	MinShares decimal.Decimal `json:"min_shares"`
	Version   int64           `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IMarketStore market store interface
type IMarketStore interface {
	Save(ctx context.Context, market *Market) error
	Find(ctx context.Context, assetID string) (*Market, error)
	All(ctx context.Context) ([]*Market, error)
	AllAsMap(ctx context.Context) (map[string]*Market, error)
	Update(ctx context.Context, market *Market) error
	Delete(ctx context.Context, assetID string) error
	Count(ctx context.Context) (int64, error)
}
