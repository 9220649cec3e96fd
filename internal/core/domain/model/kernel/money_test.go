package kernel_test

import (
	"testing"

	"foodfast/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromFloat(t *testing.T) {
	t.Run("should create money rounded to two decimals", func(t *testing.T) {
		m, err := kernel.NewMoneyFromFloat(9.999)

		require.NoError(t, err)
		assert.Equal(t, "10.00", m.String())
	})

	t.Run("should accept zero", func(t *testing.T) {
		m, err := kernel.NewMoneyFromFloat(0)

		require.NoError(t, err)
		assert.False(t, m.IsPositive())
		require.NoError(t, m.Validate())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoneyFromFloat(-0.01)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNegative, err)
	})
}

func TestMoney_MulQuantity(t *testing.T) {
	t.Run("should round each line total independently", func(t *testing.T) {
		// 9.99 * 2 = 19.98 and 3.50 * 1 = 3.50; the summed total is 23.48.
		first := kernel.MustMoneyFromFloat(9.99).MulQuantity(2)
		second := kernel.MustMoneyFromFloat(3.50).MulQuantity(1)

		assert.Equal(t, "19.98", first.String())
		assert.Equal(t, "3.50", second.String())
		assert.Equal(t, "23.48", first.Add(second).String())
	})

	t.Run("should avoid float accumulation errors", func(t *testing.T) {
		total := kernel.MustMoneyFromFloat(0.10).MulQuantity(3)

		assert.Equal(t, "0.30", total.String())
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should sum starting from the zero value", func(t *testing.T) {
		var total kernel.Money
		for _, v := range []float64{10.00, 5.00, 20.00} {
			total = total.Add(kernel.MustMoneyFromFloat(v))
		}

		assert.Equal(t, "35.00", total.String())
		assert.InDelta(t, 35.00, total.Float64(), 0.0001)
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("should compare numerically", func(t *testing.T) {
		assert.True(t, kernel.MustMoneyFromFloat(5).IsEqual(kernel.MustMoneyFromFloat(5.00)))
		assert.False(t, kernel.MustMoneyFromFloat(5).IsEqual(kernel.MustMoneyFromFloat(5.01)))
	})
}
