package number

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestCeil(t *testing.T) {
	data := map[string]string{
		"0.10304":     "0.11",
		"0.100000001": "0.11",
		"0.108":       "0.11",
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			c := Ceil(Decimal(k), 2)
			assert.Equal(t, v, c.String(), "should be ceil")
		})
	}
}

func TestFloor(t *testing.T) {
	data := map[string]string{
		"0.10304":     "0.1",
		"0.199999999": "0.19",
		"0.108":       "0.1",
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			f := Floor(Decimal(k), 2)
			assert.Equal(t, v, f.String(), "should be floor")
		})
	}
}
