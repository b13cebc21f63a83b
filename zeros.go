package specials

import (
	"github.com/strike65/specials/internal/backend"
	"github.com/strike65/specials/internal/check"
)

// Bulk retrieval of zero sequences. Two families:
//
// Explicit-count (Airy): the caller supplies a zero-based start index and a
// count; count == 0 short-circuits to an empty sequence without touching the
// backend, otherwise a buffer of exactly count elements is filled ascending.
//
// Self-sized (Legendre, Hermite, Legendre-Stieltjes): the length follows
// from the degree or order. Legendre and Hermite normalize degree <= 0 to an
// empty sequence; Legendre-Stieltjes requires order > 0 and fails otherwise.
// The two behaviors differ intentionally.
//
// The output buffer is owned exclusively by the call that allocated it;
// nothing is pooled or cached across calls.

func countChecks(start, count int) error {
	if err := check.NonNegative("startIndex", start); err != nil {
		return err
	}
	if err := check.Representable("startIndex", start); err != nil {
		return err
	}
	if err := check.NonNegative("count", count); err != nil {
		return err
	}
	if err := check.Representable("count", count); err != nil {
		return err
	}
	// The last requested index must stay representable too.
	return check.Representable("startIndex+count", start+count)
}

func narrowAll[T Real](buf []float64) []T {
	out := make([]T, len(buf))
	for i, v := range buf {
		out[i] = Narrow[T](v)
	}
	return out
}

// AiryAiZeros returns count zeros of Ai in ascending order, starting at the
// zero-based startIndex (index 0 is the zero closest to the origin). It can
// fail with NotPositiveError or MaxIntegerError.
func AiryAiZeros[T Real](startIndex, count int) ([]T, error) {
	if err := countChecks(startIndex, count); err != nil {
		return nil, err
	}
	if count == 0 {
		return []T{}, nil
	}
	buf := make([]float64, count)
	backend.AiryAiZerosFill(int32(startIndex), buf)
	return narrowAll[T](buf), nil
}

// AiryBiZeros is AiryAiZeros for the Bi function. Same failure set.
func AiryBiZeros[T Real](startIndex, count int) ([]T, error) {
	if err := countChecks(startIndex, count); err != nil {
		return nil, err
	}
	if count == 0 {
		return []T{}, nil
	}
	buf := make([]float64, count)
	backend.AiryBiZerosFill(int32(startIndex), buf)
	return narrowAll[T](buf), nil
}

// LegendreZeros returns the n zeros of P_n in ascending order. A degree
// <= 0 yields an empty sequence (a normalization, not an error). It can
// fail with MaxIntegerError.
func LegendreZeros[T Real](n int) ([]T, error) {
	if n <= 0 {
		return []T{}, nil
	}
	if err := check.Representable("n", n); err != nil {
		return nil, err
	}
	buf := make([]float64, n)
	backend.LegendreZerosFill(int32(n), buf)
	return narrowAll[T](buf), nil
}

// HermiteZeros returns the n zeros of H_n in ascending order, following the
// Legendre normalization for n <= 0. It can fail with MaxIntegerError.
func HermiteZeros[T Real](n int) ([]T, error) {
	if n <= 0 {
		return []T{}, nil
	}
	if err := check.Representable("n", n); err != nil {
		return nil, err
	}
	buf := make([]float64, n)
	backend.HermiteZerosFill(int32(n), buf)
	return narrowAll[T](buf), nil
}

// LegendreStieltjesZeros returns the zeros of E_m in ascending order. The
// order must be strictly positive; unlike LegendreZeros, m <= 0 is a hard
// validation failure. The backend is asked for the sequence length first,
// then fills the allocated buffer. It can fail with NotPositiveError or
// MaxIntegerError.
func LegendreStieltjesZeros[T Real](m int) ([]T, error) {
	if err := check.Positive("m", m); err != nil {
		return nil, err
	}
	if err := check.Representable("m", m); err != nil {
		return nil, err
	}
	buf := make([]float64, backend.StieltjesZeroCount(int32(m)))
	backend.LegendreStieltjesZerosFill(int32(m), buf)
	return narrowAll[T](buf), nil
}
