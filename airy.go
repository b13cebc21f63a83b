package specials

import (
	"github.com/strike65/specials/internal/backend"
	"github.com/strike65/specials/internal/check"
)

// AiryAi evaluates the Airy function of the first kind at x. It can fail
// with NotFiniteError.
func AiryAi[T Real](x T) (T, error) {
	if err := check.Finite("x", Widen(x)); err != nil {
		return 0, err
	}
	return evalUnary(backend.AiryAiKernel, x), nil
}

// AiryBi evaluates the Airy function of the second kind at x. It can fail
// with NotFiniteError.
func AiryBi[T Real](x T) (T, error) {
	if err := check.Finite("x", Widen(x)); err != nil {
		return 0, err
	}
	return evalUnary(backend.AiryBiKernel, x), nil
}
