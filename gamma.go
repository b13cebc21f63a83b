package specials

import (
	"github.com/strike65/specials/internal/backend"
	"github.com/strike65/specials/internal/check"
)

// poleChecks is the shared validator sequence of the gamma-derivative
// family: finiteness, then the non-positive-integer pole screen. An infinite
// x therefore reports NotFiniteError, never PoleError.
func poleChecks(x float64) error {
	if err := check.Finite("x", x); err != nil {
		return err
	}
	return check.NonPositiveIntegerPole("x", x)
}

// Digamma evaluates psi(x), the logarithmic derivative of the gamma
// function. It can fail with NotFiniteError or PoleError.
func Digamma[T Real](x T) (T, error) {
	if err := poleChecks(Widen(x)); err != nil {
		return 0, err
	}
	return evalUnary(backend.DigammaKernel, x), nil
}

// Trigamma evaluates psi_1(x). It can fail with NotFiniteError or PoleError.
func Trigamma[T Real](x T) (T, error) {
	if err := poleChecks(Widen(x)); err != nil {
		return 0, err
	}
	return evalUnary(backend.TrigammaKernel, x), nil
}

// Polygamma evaluates psi_order(x), the order-th derivative of the digamma
// function. It can fail with NotPositiveError, MaxIntegerError,
// NotFiniteError or PoleError.
func Polygamma[T Real](order int, x T) (T, error) {
	if err := check.NonNegative("order", order); err != nil {
		return 0, err
	}
	if err := check.Representable("order", order); err != nil {
		return 0, err
	}
	if err := poleChecks(Widen(x)); err != nil {
		return 0, err
	}
	return T(backend.Polygamma(int32(order), Widen(x))), nil
}

// Zeta evaluates the Riemann zeta function at s. The single pole at s = 1 is
// rejected as a CombinationError; it can also fail with NotFiniteError.
func Zeta[T Real](s T) (T, error) {
	if err := check.Finite("s", Widen(s)); err != nil {
		return 0, err
	}
	if Widen(s) == 1 {
		return 0, CombinationError{Message: "zeta has a simple pole at s = 1"}
	}
	return evalUnary(backend.ZetaKernel, s), nil
}
