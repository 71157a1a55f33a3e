package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Price one oracle quote, USD per unit of the asset.
type Price struct {
	AssetID   string          `json:"asset_id"`
	Price     decimal.Decimal `json:"price"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IPriceStore price store interface
type IPriceStore interface {
	Save(ctx context.Context, price *Price) error
	Find(ctx context.Context, assetID string) (*Price, error)
	All(ctx context.Context) ([]*Price, error)
}

// IPriceOracleService price oracle collaborator. GetPrice fails closed on
// a zero or stale quote; any failure is fatal to the calling operation.
type IPriceOracleService interface {
	GetPrice(ctx context.Context, assetID string) (decimal.Decimal, error)
}
