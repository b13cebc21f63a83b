package specials

import (
	"math"

	"github.com/strike65/specials/internal/backend"
	"github.com/strike65/specials/internal/check"
)

// branchPoint is -1/e, where the two real branches of Lambert W meet.
var branchPoint = -math.Exp(-1)

// LambertW0 evaluates the principal branch W_0(x), defined on [-1/e, +Inf).
// It can fail with NotFiniteError or OutOfRangeError.
func LambertW0[T Real](x T) (T, error) {
	if err := check.Finite("x", Widen(x)); err != nil {
		return 0, err
	}
	if err := check.HalfOpenRange("x", Widen(x), branchPoint, math.Inf(1)); err != nil {
		return 0, err
	}
	return evalUnary(backend.LambertW0Kernel, x), nil
}

// LambertWm1 evaluates the lower branch W_-1(x), defined on [-1/e, 0). It
// can fail with NotFiniteError or OutOfRangeError.
func LambertWm1[T Real](x T) (T, error) {
	if err := check.Finite("x", Widen(x)); err != nil {
		return 0, err
	}
	if err := check.HalfOpenRange("x", Widen(x), branchPoint, 0); err != nil {
		return 0, err
	}
	return evalUnary(backend.LambertWm1Kernel, x), nil
}

// LambertW0Prime evaluates d/dx W_0(x). The branch point is excluded (the
// derivative diverges there), so the domain is (-1/e, +Inf). It can fail
// with NotFiniteError or OutOfRangeError.
func LambertW0Prime[T Real](x T) (T, error) {
	if err := check.Finite("x", Widen(x)); err != nil {
		return 0, err
	}
	if err := check.OpenLowRange("x", Widen(x), branchPoint, math.Inf(1)); err != nil {
		return 0, err
	}
	return evalUnary(backend.LambertW0PrimeKernel, x), nil
}

// LambertWm1Prime evaluates d/dx W_-1(x) on (-1/e, 0). Same failure set as
// LambertW0Prime.
func LambertWm1Prime[T Real](x T) (T, error) {
	if err := check.Finite("x", Widen(x)); err != nil {
		return 0, err
	}
	if err := check.OpenRange("x", Widen(x), branchPoint, 0); err != nil {
		return 0, err
	}
	return evalUnary(backend.LambertWm1PrimeKernel, x), nil
}
