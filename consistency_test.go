package specials_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/strike65/specials"
)

type tierCase struct {
	Function string    `yaml:"function"`
	N        int       `yaml:"n"`
	Order    int       `yaml:"order"`
	Lambda   float64   `yaml:"lambda"`
	Tol      float64   `yaml:"tol"`
	Points   []float64 `yaml:"points"`
}

type tierFixture struct {
	Cases []tierCase `yaml:"cases"`
}

// TestCrossTierConsistency sweeps the fixture points through every function
// offered at both tiers: the Reduced result, widened back to Standard, must
// agree with the Standard result within the Reduced tier's precision.
func TestCrossTierConsistency(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "points.yaml"))
	require.NoError(t, err)
	var fx tierFixture
	require.NoError(t, yaml.Unmarshal(raw, &fx))
	require.NotEmpty(t, fx.Cases)

	for _, tc := range fx.Cases {
		t.Run(tc.Function, func(t *testing.T) {
			f64, f32 := tierEntry(t, tc)
			tol := tc.Tol
			if tol == 0 {
				tol = 1e-5
			}
			for _, x := range tc.Points {
				v64, err := f64(x)
				require.NoError(t, err, "x=%v", x)
				v32, err := f32(float32(x))
				require.NoError(t, err, "x=%v", x)
				assert.InDelta(t, v64, specials.Widen(v32),
					tol*math.Max(1, math.Abs(v64)), "x=%v", x)
			}
		})
	}
}

func tierEntry(t *testing.T, tc tierCase) (func(float64) (float64, error), func(float32) (float32, error)) {
	t.Helper()
	switch tc.Function {
	case "airy-ai":
		return specials.AiryAi[float64], specials.AiryAi[float32]
	case "airy-bi":
		return specials.AiryBi[float64], specials.AiryBi[float32]
	case "digamma":
		return specials.Digamma[float64], specials.Digamma[float32]
	case "trigamma":
		return specials.Trigamma[float64], specials.Trigamma[float32]
	case "polygamma":
		return func(x float64) (float64, error) { return specials.Polygamma(tc.Order, x) },
			func(x float32) (float32, error) { return specials.Polygamma(tc.Order, x) }
	case "zeta":
		return specials.Zeta[float64], specials.Zeta[float32]
	case "lambert-w0":
		return specials.LambertW0[float64], specials.LambertW0[float32]
	case "lambert-wm1":
		return specials.LambertWm1[float64], specials.LambertWm1[float32]
	case "bspline":
		return func(x float64) (float64, error) { return specials.CardinalBSpline(tc.N, x) },
			func(x float32) (float32, error) { return specials.CardinalBSpline(tc.N, x) }
	case "hermite":
		return func(x float64) (float64, error) { return specials.Hermite(tc.N, x) },
			func(x float32) (float32, error) { return specials.Hermite(tc.N, x) }
	case "legendre-p":
		return func(x float64) (float64, error) { return specials.LegendreP(tc.N, x) },
			func(x float32) (float32, error) { return specials.LegendreP(tc.N, x) }
	case "legendre-q":
		return func(x float64) (float64, error) { return specials.LegendreQ(tc.N, x) },
			func(x float32) (float32, error) { return specials.LegendreQ(tc.N, x) }
	case "gegenbauer":
		return func(x float64) (float64, error) { return specials.Gegenbauer(tc.N, tc.Lambda, x) },
			func(x float32) (float32, error) { return specials.Gegenbauer(tc.N, float32(tc.Lambda), x) }
	case "legendre-stieltjes":
		return func(x float64) (float64, error) { return specials.LegendreStieltjes(tc.N, x) },
			func(x float32) (float32, error) { return specials.LegendreStieltjes(tc.N, x) }
	}
	t.Fatalf("fixture names unknown function %q", tc.Function)
	return nil, nil
}
