package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Supply per-account, per-asset share count of the pooled liquidity
// position. Shares convert to underlying amount at the pool's exchange
// rate (total claim / total shares).
type Supply struct {
	UserID    string          `json:"user_id"`
	AssetID   string          `json:"asset_id"`
	Shares    decimal.Decimal `json:"shares"`
	Version   int64           `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ISupplyStore supply store interface
type ISupplyStore interface {
	Save(ctx context.Context, supply *Supply) error
	Find(ctx context.Context, userID, assetID string) (*Supply, error)
	FindByUser(ctx context.Context, userID string) ([]*Supply, error)
	FindByAsset(ctx context.Context, assetID string) ([]*Supply, error)
	CountOfSuppliers(ctx context.Context, assetID string) (int64, error)
	All(ctx context.Context) ([]*Supply, error)
	Delete(ctx context.Context, userID, assetID string) error
}
