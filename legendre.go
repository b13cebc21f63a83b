package specials

import (
	"github.com/strike65/specials/internal/backend"
	"github.com/strike65/specials/internal/check"
)

// LegendreP evaluates the Legendre polynomial P_n(x) on [-1, 1]. It can fail
// with NotPositiveError, MaxIntegerError, NotFiniteError or OutOfRangeError.
func LegendreP[T Real](n int, x T) (T, error) {
	if err := check.NonNegative("n", n); err != nil {
		return 0, err
	}
	if err := check.Representable("n", n); err != nil {
		return 0, err
	}
	if err := check.Finite("x", Widen(x)); err != nil {
		return 0, err
	}
	if err := check.ClosedRange("x", Widen(x), -1, 1); err != nil {
		return 0, err
	}
	return evalUnaryN(backend.LegendrePKernel, n, x), nil
}

// AssocLegendreP evaluates the associated Legendre function P_n^m(x) with
// the Condon-Shortley phase; m may be negative as long as |m| <= n. It can
// fail with NotPositiveError, MaxIntegerError, OutOfRangeError or
// NotFiniteError.
func AssocLegendreP[T Real](n, m int, x T) (T, error) {
	if err := check.NonNegative("n", n); err != nil {
		return 0, err
	}
	if err := check.Representable("n", n); err != nil {
		return 0, err
	}
	if err := check.OrderWithinDegree("m", n, m); err != nil {
		return 0, err
	}
	if err := check.Finite("x", Widen(x)); err != nil {
		return 0, err
	}
	if err := check.ClosedRange("x", Widen(x), -1, 1); err != nil {
		return 0, err
	}
	return T(backend.AssocLegendreP(int32(n), int32(m), Widen(x))), nil
}

// LegendreQ evaluates the Legendre function of the second kind Q_n(x) on the
// open interval (-1, 1); it diverges at both endpoints. It can fail with
// NotPositiveError, MaxIntegerError, NotFiniteError or OutOfRangeError.
func LegendreQ[T Real](n int, x T) (T, error) {
	if err := check.NonNegative("n", n); err != nil {
		return 0, err
	}
	if err := check.Representable("n", n); err != nil {
		return 0, err
	}
	if err := check.Finite("x", Widen(x)); err != nil {
		return 0, err
	}
	if err := check.OpenRange("x", Widen(x), -1, 1); err != nil {
		return 0, err
	}
	return evalUnaryN(backend.LegendreQKernel, n, x), nil
}

// LegendreStieltjes evaluates the Legendre-Stieltjes polynomial E_m(x) on
// [-1, 1]. The order must be strictly positive. It can fail with
// NotPositiveError, MaxIntegerError, NotFiniteError or OutOfRangeError.
func LegendreStieltjes[T Real](m int, x T) (T, error) {
	if err := check.Positive("m", m); err != nil {
		return 0, err
	}
	if err := check.Representable("m", m); err != nil {
		return 0, err
	}
	if err := check.Finite("x", Widen(x)); err != nil {
		return 0, err
	}
	if err := check.ClosedRange("x", Widen(x), -1, 1); err != nil {
		return 0, err
	}
	return T(backend.LegendreStieltjes(int32(m), Widen(x))), nil
}
