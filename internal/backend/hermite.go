package backend

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Physicists' Hermite polynomials via the three-term recurrence
// H_{k+1} = 2x H_k - 2k H_{k-1}.

func hermite(n int32, x float64) float64 {
	if n == 0 {
		return 1
	}
	prev, cur := 1.0, 2*x
	for k := int32(1); k < n; k++ {
		prev, cur = cur, 2*x*cur-2*float64(k)*prev
	}
	return cur
}

func hermite32(n int32, x float32) float32 {
	if n == 0 {
		return 1
	}
	prev, cur := float32(1), 2*x
	for k := int32(1); k < n; k++ {
		prev, cur = cur, 2*x*cur-2*float32(k)*prev
	}
	return cur
}

// HermiteZerosFill fills out with the n zeros of H_n in ascending order;
// they are the Gauss-Hermite nodes. len(out) must be n.
func HermiteZerosFill(n int32, out []float64) {
	w := make([]float64, len(out))
	quad.Hermite{}.FixedLocations(out, w, math.Inf(-1), math.Inf(1))
}
