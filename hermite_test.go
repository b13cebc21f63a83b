package specials_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strike65/specials"
)

func TestHermite_KnownValues(t *testing.T) {
	cases := []struct {
		n    int
		x    float64
		want float64
	}{
		{0, 1.7, 1},
		{1, 1.7, 3.4},   // 2x
		{2, 0.5, -1},    // 4x^2 - 2
		{3, 2, 40},      // 8x^3 - 12x
		{4, 0, 12},      // H_4(0)
	}
	for _, tc := range cases {
		v, err := specials.Hermite(tc.n, tc.x)
		require.NoError(t, err, "n=%d", tc.n)
		assert.InDelta(t, tc.want, v, 1e-12, "n=%d", tc.n)
	}
}

func TestHermite_Validation(t *testing.T) {
	_, err := specials.Hermite(-3, 0.0)
	assert.Equal(t, specials.CodeNotPositive, specials.CodeOf(err))
}

func TestHermite_ReducedTier(t *testing.T) {
	v, err := specials.Hermite(3, float32(2))
	require.NoError(t, err)
	assert.Equal(t, float32(40), v)
}
