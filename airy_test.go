package specials_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strike65/specials"
)

// Ai(0) = 1/(3^(2/3) Gamma(2/3)); Bi(0) = sqrt(3) Ai(0).
const airyAiZeroPoint = 0.3550280538878172

func TestAiry_KnownValues(t *testing.T) {
	ai, err := specials.AiryAi(0.0)
	require.NoError(t, err)
	assert.InDelta(t, airyAiZeroPoint, ai, 1e-12)

	bi, err := specials.AiryBi(0.0)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(3)*airyAiZeroPoint, bi, 1e-10)

	// Ai decays on the positive axis and oscillates on the negative axis.
	aiPos, err := specials.AiryAi(2.0)
	require.NoError(t, err)
	assert.Greater(t, aiPos, 0.0)
	assert.Less(t, aiPos, ai)

	aiNeg, err := specials.AiryAi(-3.0)
	require.NoError(t, err)
	assert.Negative(t, aiNeg) // between the first and second zero
}

func TestAiry_NonFinite(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := specials.AiryAi(x)
		var nf specials.NotFiniteError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "x", nf.Param)

		_, err = specials.AiryBi(x)
		assert.Equal(t, specials.CodeNotFinite, specials.CodeOf(err))
	}
}

func TestAiry_ReducedTier(t *testing.T) {
	v, err := specials.AiryAi(float32(0))
	require.NoError(t, err)
	assert.InDelta(t, airyAiZeroPoint, float64(v), 1e-6)

	// Finiteness is enforced at the Reduced tier too.
	_, err = specials.AiryAi(float32(math.NaN()))
	assert.Equal(t, specials.CodeNotFinite, specials.CodeOf(err))
}
