package credit

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrentIndex(t *testing.T) {
	t0 := time.Unix(1700000000, 0)
	rate := decimal.New(1, -7)

	// no elapsed time, no growth
	index := CurrentIndex(InitialIndex, rate, t0, t0)
	assert.Equal(t, "1", index.String())

	index = CurrentIndex(InitialIndex, rate, t0, t0.Add(10*time.Second))
	assert.Equal(t, "1.000001", index.String())

	// clock going backwards never decreases the index
	index = CurrentIndex(InitialIndex, rate, t0, t0.Add(-time.Minute))
	assert.Equal(t, "1", index.String())

	// sub-second fractions do not count
	index = CurrentIndex(InitialIndex, rate, t0, t0.Add(2500*time.Millisecond))
	assert.Equal(t, "1.0000002", index.String())
}

func TestCurrentIndexMonotonic(t *testing.T) {
	t0 := time.Unix(1700000000, 0)
	rate := decimal.New(3, -7)

	prev := InitialIndex
	for i := 1; i <= 100; i++ {
		index := CurrentIndex(InitialIndex, rate, t0, t0.Add(time.Duration(i)*time.Second))
		assert.True(t, index.GreaterThan(prev), "index %s at %ds", index, i)
		prev = index
	}
}

func TestCurrentIndexRateChange(t *testing.T) {
	t0 := time.Unix(1700000000, 0)
	t1 := t0.Add(10 * time.Second)
	t2 := t1.Add(10 * time.Second)

	oldRate := decimal.New(1, -7)
	newRate := decimal.New(2, -7)

	// snapshot at the rate change keeps interest accrued at the old rate
	snapshot := CurrentIndex(InitialIndex, oldRate, t0, t1)
	assert.Equal(t, "1.000001", snapshot.String())

	index := CurrentIndex(snapshot, newRate, t1, t2)
	assert.Equal(t, "1.000003000002", index.String())
}

func TestValidRate(t *testing.T) {
	assert.True(t, ValidRate(decimal.Zero))
	assert.True(t, ValidRate(MaxRatePerSecond))
	assert.False(t, ValidRate(decimal.New(-1, -7)))
	assert.False(t, ValidRate(decimal.New(2, -6)))
}

func TestNormalizeOwedRoundTrip(t *testing.T) {
	index := decimal.NewFromFloat(1.0001)
	amount := decimal.New(100, 0)

	principal := Normalize(amount, index)
	owed := ActualOwed(principal, index)

	diff := owed.Sub(amount).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.New(1, -12)), "diff %s", diff)
}
