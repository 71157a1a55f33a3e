package credit

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	// InitialIndex index value representing 1.0, the reference point of
	// a freshly supported borrow asset
	InitialIndex = decimal.New(1, 0)
	// MaxRatePerSecond cap on the per-second interest rate; bounds the
	// growth factor over realistic time horizons
	MaxRatePerSecond = decimal.New(1, -6)
	// MaxPrecision decimal places kept after compound expressions
	MaxPrecision int32 = 16
)

// CurrentIndex extrapolates the index from its last snapshot with simple
// interest over whole elapsed seconds. Pure view; compounding happens
// because every principal-changing operation materializes the snapshot
// first.
//
// index = snapshot + snapshot * rate * (now - last)
func CurrentIndex(snapshot, rate decimal.Decimal, lastUpdatedAt, now time.Time) decimal.Decimal {
	seconds := now.Unix() - lastUpdatedAt.Unix()
	if seconds <= 0 {
		return snapshot
	}

	growth := snapshot.Mul(rate).Mul(decimal.NewFromInt(seconds))
	return snapshot.Add(growth).Truncate(MaxPrecision)
}

// ValidRate reports whether rate is usable as a per-second interest rate.
func ValidRate(rate decimal.Decimal) bool {
	return !rate.IsNegative() && rate.LessThanOrEqual(MaxRatePerSecond)
}
