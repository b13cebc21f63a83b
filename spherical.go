package specials

import (
	"github.com/strike65/specials/internal/backend"
	"github.com/strike65/specials/internal/check"
)

func sphericalChecks(n, m int, theta, phi float64) error {
	if err := check.NonNegative("n", n); err != nil {
		return err
	}
	if err := check.Representable("n", n); err != nil {
		return err
	}
	if err := check.OrderWithinDegree("m", n, m); err != nil {
		return err
	}
	if err := check.Finite("theta", theta); err != nil {
		return err
	}
	return check.Finite("phi", phi)
}

// SphericalHarmonic evaluates Y_n^m(theta, phi) at the Standard tier using
// the Condon-Shortley phase convention. It can fail with NotPositiveError,
// MaxIntegerError, OutOfRangeError or NotFiniteError.
func SphericalHarmonic(n, m int, theta, phi float64) (complex128, error) {
	if err := sphericalChecks(n, m, theta, phi); err != nil {
		return 0, err
	}
	return backend.SphericalHarmonic(int32(n), int32(m), theta, phi), nil
}

// SphericalHarmonic32 is the Reduced-tier entry point for Y_n^m, producing
// the native complex pair of that tier. Same failure set as
// SphericalHarmonic.
func SphericalHarmonic32(n, m int, theta, phi float32) (complex64, error) {
	v, err := SphericalHarmonic(n, m, float64(theta), float64(phi))
	if err != nil {
		return 0, err
	}
	return complex64(v), nil
}
