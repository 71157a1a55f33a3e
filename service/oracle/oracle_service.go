package oracle

import (
	"context"
	"time"

	"credit/core"

	"github.com/shopspring/decimal"
)

type oracleService struct {
	priceStore core.IPriceStore
	staleness  time.Duration
	clock      core.Clock
}

// New new price oracle service backed by a price store. Quotes older
// than staleness are rejected; a zero quote is always rejected.
func New(priceStore core.IPriceStore, staleness time.Duration, clock core.Clock) core.IPriceOracleService {
	if clock == nil {
		clock = core.NewWallClock()
	}

	return &oracleService{
		priceStore: priceStore,
		staleness:  staleness,
		clock:      clock,
	}
}

func (s *oracleService) GetPrice(ctx context.Context, assetID string) (decimal.Decimal, error) {
	price, e := s.priceStore.Find(ctx, assetID)
	if e != nil {
		return decimal.Zero, e
	}

	if price.Price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, core.ErrOraclePriceZero
	}

	if s.staleness > 0 && s.clock.Now().Sub(price.UpdatedAt) > s.staleness {
		return decimal.Zero, core.ErrStalePrice
	}

	return price.Price, nil
}
