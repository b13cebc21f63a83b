package specials_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strike65/specials"
)

func TestSphericalHarmonic_KnownValues(t *testing.T) {
	// Y_0^0 = 1/(2 sqrt(pi)) everywhere.
	v, err := specials.SphericalHarmonic(0, 0, 1.2, -0.7)
	require.NoError(t, err)
	assert.InDelta(t, 0.28209479177387814, real(v), 1e-12)
	assert.InDelta(t, 0.0, imag(v), 1e-12)

	// Y_1^0 = sqrt(3/(4 pi)) cos(theta).
	v, err = specials.SphericalHarmonic(1, 0, math.Pi/3, 0)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(3/(4*math.Pi))*0.5, real(v), 1e-12)

	// Y_1^1 = -sqrt(3/(8 pi)) sin(theta) e^{i phi}, Condon-Shortley phase.
	v, err = specials.SphericalHarmonic(1, 1, math.Pi/2, 0)
	require.NoError(t, err)
	assert.InDelta(t, -0.3454941494713355, real(v), 1e-12)
	assert.InDelta(t, 0.0, imag(v), 1e-12)

	// Negative order obeys Y_n^{-m} = (-1)^m conj(Y_n^m).
	p, err := specials.SphericalHarmonic(2, 1, 0.9, 0.4)
	require.NoError(t, err)
	n, err := specials.SphericalHarmonic(2, -1, 0.9, 0.4)
	require.NoError(t, err)
	want := -cmplx.Conj(p)
	assert.InDelta(t, real(want), real(n), 1e-12)
	assert.InDelta(t, imag(want), imag(n), 1e-12)

	// The phi dependence is a pure phase factor.
	a, err := specials.SphericalHarmonic(3, 2, 1.1, 0.25)
	require.NoError(t, err)
	b, err := specials.SphericalHarmonic(3, 2, 1.1, 0)
	require.NoError(t, err)
	rot := b * cmplx.Exp(complex(0, 2*0.25))
	assert.InDelta(t, real(rot), real(a), 1e-12)
	assert.InDelta(t, imag(rot), imag(a), 1e-12)
}

func TestSphericalHarmonic_OrderBound(t *testing.T) {
	_, err := specials.SphericalHarmonic(2, 3, 0.5, 0.5)
	var oor specials.OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, "m", oor.Param)
	assert.Equal(t, -2.0, oor.Min)
	assert.Equal(t, 2.0, oor.Max)

	_, err = specials.SphericalHarmonic(2, -3, 0.5, 0.5)
	assert.ErrorAs(t, err, &oor)
}

func TestSphericalHarmonic_NonFinite(t *testing.T) {
	_, err := specials.SphericalHarmonic(1, 0, math.NaN(), 0)
	var nf specials.NotFiniteError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "theta", nf.Param)

	_, err = specials.SphericalHarmonic(1, 0, 0, math.Inf(1))
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "phi", nf.Param)
}

func TestSphericalHarmonic32(t *testing.T) {
	v, err := specials.SphericalHarmonic32(0, 0, 0.3, 0.3)
	require.NoError(t, err)
	assert.InDelta(t, 0.28209479177387814, float64(real(v)), 1e-6)

	_, err = specials.SphericalHarmonic32(1, 2, 0.3, 0.3)
	assert.Error(t, err)
}
