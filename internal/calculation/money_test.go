package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoneyHelpers(t *testing.T) {
	t.Run("ApplyRate", func(t *testing.T) {
		got := ApplyRate(decimal.NewFromInt(1000), decimal.NewFromFloat(0.0307))
		assert.True(t, got.Equal(decimal.NewFromFloat(30.7)))
	})

	t.Run("ClampMin", func(t *testing.T) {
		assert.True(t, ClampMin(decimal.NewFromInt(-5), decimal.Zero).IsZero())
		assert.True(t, ClampMin(decimal.NewFromInt(5), decimal.Zero).Equal(decimal.NewFromInt(5)))
	})

	t.Run("SumAll", func(t *testing.T) {
		got := SumAll(decimal.NewFromFloat(0.1), decimal.NewFromFloat(0.2), decimal.NewFromFloat(0.3))
		assert.True(t, got.Equal(decimal.NewFromFloat(0.6)))
	})

	t.Run("chained operations stay exact", func(t *testing.T) {
		// 0.1 added a thousand times is exactly 100, not 99.9999...
		total := decimal.Zero
		cent := decimal.NewFromFloat(0.1)
		for i := 0; i < 1000; i++ {
			total = total.Add(cent)
		}
		assert.True(t, total.Equal(decimal.NewFromInt(100)))
	})

	t.Run("rounding", func(t *testing.T) {
		assert.Equal(t, "12.35", RoundToCents(decimal.NewFromFloat(12.345)).StringFixed(2))
		assert.Equal(t, "12", RoundToWholeDollar(decimal.NewFromFloat(12.4)).String())
		assert.Equal(t, "13", RoundToWholeDollar(decimal.NewFromFloat(12.5)).String())
	})
}
