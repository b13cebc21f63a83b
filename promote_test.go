package specials_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strike65/specials"
)

func TestTierResolution(t *testing.T) {
	assert.Equal(t, specials.TierStandard, specials.Resolve())
	assert.Equal(t, specials.TierReduced, specials.Resolve(specials.TierReduced))
	assert.Equal(t, specials.TierStandard,
		specials.Resolve(specials.TierReduced, specials.TierStandard))
	assert.Equal(t, specials.TierExtended,
		specials.Resolve(specials.TierStandard, specials.TierExtended, specials.TierReduced))

	assert.Equal(t, specials.TierReduced, specials.TierOf[float32]())
	assert.Equal(t, specials.TierStandard, specials.TierOf[float64]())

	assert.Equal(t, "reduced", specials.TierReduced.String())
	assert.Equal(t, "standard", specials.TierStandard.String())
	assert.Equal(t, "extended", specials.TierExtended.String())
	assert.Equal(t, 32, specials.TierReduced.Bits())
	assert.Equal(t, 64, specials.TierStandard.Bits())
	assert.Equal(t, 80, specials.TierExtended.Bits())

	// No Go platform carries an 80-bit float; the capability flag is
	// resolved at build time, never per call.
	assert.False(t, specials.ExtendedAvailable)
}

func TestWidenNarrow(t *testing.T) {
	// Widening a Reduced value is exact, so the round trip is the identity.
	for _, v := range []float32{0, 1, -2.5, 1.0 / 3.0, math.MaxFloat32, math.SmallestNonzeroFloat32} {
		assert.Equal(t, v, specials.Narrow[float32](specials.Widen(v)))
	}
	// At the Standard tier both directions are the identity.
	assert.Equal(t, 0.1, specials.Widen(0.1))
	assert.Equal(t, 0.1, specials.Narrow[float64](0.1))
}

// TestMixedPromotionLaw: a mixed-tier call evaluates at the higher of the two
// input tiers and equals the result of widening both inputs up front.
func TestMixedPromotionLaw(t *testing.T) {
	lambda := float32(1.25)
	got, err := specials.GegenbauerMixed(3, lambda, 0.375)
	require.NoError(t, err)
	want, err := specials.Gegenbauer[float64](3, float64(lambda), 0.375)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Swapped tiers resolve the same way.
	got, err = specials.GegenbauerMixed(3, 1.25, float32(0.375))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	theta := float32(0.9)
	c, err := specials.SphericalHarmonicMixed(2, 1, theta, 0.4)
	require.NoError(t, err)
	cw, err := specials.SphericalHarmonic(2, 1, float64(theta), 0.4)
	require.NoError(t, err)
	assert.Equal(t, cw, c)
}

func TestMixedPromotion_ValidationAtPromotedTier(t *testing.T) {
	// Validation runs after widening, so the reported bounds are the
	// Standard-tier ones.
	_, err := specials.GegenbauerMixed(3, float32(-0.5), 0.375)
	var oor specials.OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, "lambda", oor.Param)
	assert.Equal(t, -0.5, oor.Min)

	_, err = specials.SphericalHarmonicMixed(1, 2, float32(0.5), 0.5)
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, "m", oor.Param)
}
