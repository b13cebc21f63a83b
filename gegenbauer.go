package specials

import (
	"math"

	"github.com/strike65/specials/internal/backend"
	"github.com/strike65/specials/internal/check"
)

func gegenbauerChecks(n int, lambda, x float64) error {
	if err := check.NonNegative("n", n); err != nil {
		return err
	}
	if err := check.Representable("n", n); err != nil {
		return err
	}
	if err := check.Finite("lambda", lambda); err != nil {
		return err
	}
	if err := check.Finite("x", x); err != nil {
		return err
	}
	// The real-valued branch needs lambda > -1/2.
	return check.OpenLowRange("lambda", lambda, -0.5, math.Inf(1))
}

// Gegenbauer evaluates the ultraspherical polynomial C_n^lambda(x), defined
// for lambda > -1/2. It can fail with NotPositiveError, MaxIntegerError,
// NotFiniteError or OutOfRangeError.
func Gegenbauer[T Real](n int, lambda, x T) (T, error) {
	if err := gegenbauerChecks(n, Widen(lambda), Widen(x)); err != nil {
		return 0, err
	}
	if TierOf[T]() == TierReduced {
		return T(backend.Gegenbauer32(int32(n), float32(lambda), float32(x))), nil
	}
	return T(backend.Gegenbauer(int32(n), Widen(lambda), Widen(x))), nil
}

// GegenbauerPrime evaluates d/dx C_n^lambda(x). Same failure set as
// Gegenbauer.
func GegenbauerPrime[T Real](n int, lambda, x T) (T, error) {
	if err := gegenbauerChecks(n, Widen(lambda), Widen(x)); err != nil {
		return 0, err
	}
	return T(backend.GegenbauerPrime(int32(n), Widen(lambda), Widen(x))), nil
}
