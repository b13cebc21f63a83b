package specials

// Mixed-precision promotion. When a multi-argument function receives
// arguments at different tiers, the evaluation tier is the highest tier among
// them; all arguments are widened to that tier before validation and
// dispatch, and the result is produced at that tier. A result is never
// narrowed below the caller's most precise input.

// Resolve returns the evaluation tier for a set of argument tiers: the
// highest one (Extended > Standard > Reduced). With no arguments it returns
// TierStandard, the canonical tier.
func Resolve(tiers ...Tier) Tier {
	out := TierReduced
	if len(tiers) == 0 {
		return TierStandard
	}
	for _, t := range tiers {
		if t > out {
			out = t
		}
	}
	return out
}

// Widen converts a Real value to the canonical Standard representation.
// The conversion is exact: every float32 is representable as a float64.
func Widen[T Real](v T) float64 { return float64(v) }

// Narrow converts a canonical Standard value back to the caller's type,
// rounding to nearest when T is the Reduced tier.
func Narrow[T Real](v float64) T { return T(v) }

// GegenbauerMixed evaluates the Gegenbauer polynomial when λ and x arrive at
// (possibly) different tiers. The result carries the promoted tier; since the
// promoted tier of any mixed pair is Standard, it is returned as float64.
// Callers with both arguments at the Reduced tier should use Gegenbauer
// directly. It can fail with NotPositiveError, MaxIntegerError,
// NotFiniteError or OutOfRangeError.
func GegenbauerMixed[A, B Real](n int, lambda A, x B) (float64, error) {
	return Gegenbauer[float64](n, Widen(lambda), Widen(x))
}

// SphericalHarmonicMixed evaluates Y_n^m when θ and φ arrive at (possibly)
// different tiers, producing the complex pair at the promoted tier. It can
// fail with NotPositiveError, MaxIntegerError, OutOfRangeError or
// NotFiniteError.
func SphericalHarmonicMixed[A, B Real](n, m int, theta A, phi B) (complex128, error) {
	return SphericalHarmonic(n, m, Widen(theta), Widen(phi))
}
