package specials

import "github.com/strike65/specials/internal/backend"

// The single generic evaluation path. Validation always happens on the
// canonical Standard widening (exact for every Reduced value); computation
// uses the native kernel for the instantiated tier when the catalogue has
// one, and otherwise the widen -> evaluate -> narrow adapter. Kernel results
// pass through untouched: kernels are total over the pre-validated domain,
// so no failure can originate below this line.

func evalUnary[T Real](k backend.Unary, x T) T {
	if TierOf[T]() == TierReduced && k.F32 != nil {
		return T(k.F32(float32(x)))
	}
	return T(k.F64(float64(x)))
}

func evalUnaryN[T Real](k backend.UnaryN, n int, x T) T {
	if TierOf[T]() == TierReduced && k.F32 != nil {
		return T(k.F32(int32(n), float32(x)))
	}
	return T(k.F64(int32(n), float64(x)))
}
