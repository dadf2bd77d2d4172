package kernel_test

import (
	"testing"

	"zones/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from valid cents", func(t *testing.T) {
		m, err := kernel.NewMoney(3000)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, int64(3000), m.Cents())
		assert.False(t, m.IsZero())
	})

	t.Run("should create zero money", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("should fail with negative cents", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cents is invalid")
		assert.Contains(t, err.Error(), "-1 is negative")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var m kernel.Money

		require.Error(t, m.Validate())
		assert.Contains(t, m.Validate().Error(), "money must be created")
	})
}

func TestMoney_Covers(t *testing.T) {
	minimum, _ := kernel.NewMoney(3000)

	t.Run("amount above minimum covers it", func(t *testing.T) {
		subtotal, _ := kernel.NewMoney(3500)
		assert.True(t, subtotal.Covers(minimum))
	})

	t.Run("amount exactly at minimum covers it", func(t *testing.T) {
		subtotal, _ := kernel.NewMoney(3000)
		assert.True(t, subtotal.Covers(minimum))
	})

	t.Run("amount below minimum does not cover it", func(t *testing.T) {
		subtotal, _ := kernel.NewMoney(2999)
		assert.False(t, subtotal.Covers(minimum))
	})
}

func TestMoney_Shortfall(t *testing.T) {
	minimum, _ := kernel.NewMoney(3000)

	t.Run("reports the missing amount", func(t *testing.T) {
		subtotal, _ := kernel.NewMoney(2000)

		shortfall := subtotal.Shortfall(minimum)
		assert.Equal(t, int64(1000), shortfall.Cents())
	})

	t.Run("reports zero when covered", func(t *testing.T) {
		subtotal, _ := kernel.NewMoney(3000)

		assert.True(t, subtotal.Shortfall(minimum).IsZero())
	})
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		cents    int64
		expected string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{250, "2.50"},
		{3000, "30.00"},
		{123456, "1234.56"},
	}

	for _, tt := range tests {
		m, err := kernel.NewMoney(tt.cents)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, m.String())
	}
}

func TestMoney_IsEqual(t *testing.T) {
	a, _ := kernel.NewMoney(100)
	b, _ := kernel.NewMoney(100)
	c, _ := kernel.NewMoney(101)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
