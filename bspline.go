package specials

import (
	"github.com/strike65/specials/internal/backend"
	"github.com/strike65/specials/internal/check"
)

// bsplineChecks runs the B-spline family's validators in the contract order:
// integer checks, finiteness, range.
func bsplineChecks[T Real](n int, x T) error {
	if err := check.NonNegative("n", n); err != nil {
		return err
	}
	if err := check.Representable("n", n); err != nil {
		return err
	}
	if err := check.Finite("x", Widen(x)); err != nil {
		return err
	}
	return check.ClosedRange("x", Widen(x), -1, 1)
}

// CardinalBSpline evaluates the centered cardinal B-spline of order n at x,
// with x restricted to the supported evaluation interval [-1, 1]. It can
// fail with NotPositiveError, MaxIntegerError, NotFiniteError or
// OutOfRangeError.
func CardinalBSpline[T Real](n int, x T) (T, error) {
	if err := bsplineChecks(n, x); err != nil {
		return 0, err
	}
	return evalUnaryN(backend.BSplineKernel, n, x), nil
}

// CardinalBSplinePrime evaluates the first derivative of the order-n
// cardinal B-spline at x. Same failure set as CardinalBSpline.
func CardinalBSplinePrime[T Real](n int, x T) (T, error) {
	if err := bsplineChecks(n, x); err != nil {
		return 0, err
	}
	return evalUnaryN(backend.BSplinePrimeKernel, n, x), nil
}

// CardinalBSplineDoublePrime evaluates the second derivative of the order-n
// cardinal B-spline at x. Same failure set as CardinalBSpline.
func CardinalBSplineDoublePrime[T Real](n int, x T) (T, error) {
	if err := bsplineChecks(n, x); err != nil {
		return 0, err
	}
	return evalUnaryN(backend.BSplineDoublePrimeKernel, n, x), nil
}
