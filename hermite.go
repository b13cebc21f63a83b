package specials

import (
	"github.com/strike65/specials/internal/backend"
	"github.com/strike65/specials/internal/check"
)

// Hermite evaluates the physicists' Hermite polynomial H_n(x). It can fail
// with NotPositiveError, MaxIntegerError or NotFiniteError.
func Hermite[T Real](n int, x T) (T, error) {
	if err := check.NonNegative("n", n); err != nil {
		return 0, err
	}
	if err := check.Representable("n", n); err != nil {
		return 0, err
	}
	if err := check.Finite("x", Widen(x)); err != nil {
		return 0, err
	}
	return evalUnaryN(backend.HermiteKernel, n, x), nil
}
