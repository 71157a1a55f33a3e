package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Borrow per-account, per-asset normalized borrow principal. The actual
// amount owed is Principal * currentIndex of the asset's market.
type Borrow struct {
	UserID    string          `json:"user_id"`
	AssetID   string          `json:"asset_id"`
	Principal decimal.Decimal `json:"principal"`
	Version   int64           `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IBorrowStore borrow store interface
type IBorrowStore interface {
	Save(ctx context.Context, borrow *Borrow) error
	Find(ctx context.Context, userID, assetID string) (*Borrow, error)
	FindByUser(ctx context.Context, userID string) ([]*Borrow, error)
	FindByAsset(ctx context.Context, assetID string) ([]*Borrow, error)
	CountOfBorrowers(ctx context.Context, assetID string) (int64, error)
	All(ctx context.Context) ([]*Borrow, error)
	Users(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, userID, assetID string) error
}
