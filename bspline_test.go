package specials_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strike65/specials"
)

func TestCardinalBSpline_Evaluate(t *testing.T) {
	// Order-4 spline at x = 0.25: strictly inside the support, value in (0, 1].
	v, err := specials.CardinalBSpline(4, 0.25)
	require.NoError(t, err)
	assert.Greater(t, v, 0.0)
	assert.LessOrEqual(t, v, 1.0)
	assert.InDelta(t, 0.5608723958333333, v, 1e-12)

	// Symmetry of the centered spline.
	w, err := specials.CardinalBSpline(4, -0.25)
	require.NoError(t, err)
	assert.InDelta(t, v, w, 1e-12)

	// Order 0 is the unit box.
	b, err := specials.CardinalBSpline(0, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 1.0, b)
}

func TestCardinalBSpline_OutsideInterval(t *testing.T) {
	_, err := specials.CardinalBSpline(4, 1.5)
	var oor specials.OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, "x", oor.Param)
	assert.Equal(t, -1.0, oor.Min)
	assert.Equal(t, 1.0, oor.Max)

	_, err = specials.CardinalBSpline(4, -1.0001)
	assert.Equal(t, specials.CodeOutOfRange, specials.CodeOf(err))

	// Endpoints are included.
	_, err = specials.CardinalBSpline(4, 1.0)
	assert.NoError(t, err)
}

func TestCardinalBSpline_NegativeOrder(t *testing.T) {
	_, err := specials.CardinalBSpline(-1, 0.0)
	assert.Equal(t, specials.CodeNotPositive, specials.CodeOf(err))
}

func TestCardinalBSpline_Derivatives(t *testing.T) {
	// The centered even-order spline peaks at 0, so B' vanishes there and
	// B'' is negative.
	d1, err := specials.CardinalBSplinePrime(4, 0.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, d1, 1e-12)

	d2, err := specials.CardinalBSplineDoublePrime(4, 0.0)
	require.NoError(t, err)
	assert.Negative(t, d2)

	// Central difference cross-check for the first derivative.
	const h = 1e-6
	fp, _ := specials.CardinalBSpline(4, 0.5+h)
	fm, _ := specials.CardinalBSpline(4, 0.5-h)
	d1, err = specials.CardinalBSplinePrime(4, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, (fp-fm)/(2*h), d1, 1e-5)
}

func TestCardinalBSpline_ReducedTier(t *testing.T) {
	v32, err := specials.CardinalBSpline[float32](4, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, 0.5608723958333333, float64(v32), 1e-4)
}
