package backend

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Legendre kernels: P_n, the associated P_n^m with the Condon-Shortley
// phase, Q_n on the open interval, and the Gauss-Legendre zero sequence.

func legendreP(n int32, x float64) float64 {
	if n == 0 {
		return 1
	}
	prev, cur := 1.0, x
	for k := int32(1); k < n; k++ {
		fk := float64(k)
		prev, cur = cur, ((2*fk+1)*x*cur-fk*prev)/(fk+1)
	}
	return cur
}

func legendreP32(n int32, x float32) float32 {
	if n == 0 {
		return 1
	}
	prev, cur := float32(1), x
	for k := int32(1); k < n; k++ {
		fk := float32(k)
		prev, cur = cur, ((2*fk+1)*x*cur-fk*prev)/(fk+1)
	}
	return cur
}

// legendreQ uses Q_0 = atanh(x), Q_1 = x Q_0 - 1 and the shared three-term
// recurrence. |x| < 1 is guaranteed upstream.
func legendreQ(n int32, x float64) float64 {
	q0 := math.Atanh(x)
	if n == 0 {
		return q0
	}
	prev, cur := q0, x*q0-1
	for k := int32(1); k < n; k++ {
		fk := float64(k)
		prev, cur = cur, ((2*fk+1)*x*cur-fk*prev)/(fk+1)
	}
	return cur
}

// AssocLegendreP evaluates P_n^m(x) with the Condon-Shortley phase.
// Negative m goes through P_n^(-m) = (-1)^m (n-m)!/(n+m)! P_n^m.
func AssocLegendreP(n, m int32, x float64) float64 {
	if m < 0 {
		mm := -m
		ratio := math.Exp(lgammaRatio(int(n-mm), int(n+mm)))
		v := AssocLegendreP(n, mm, x) * ratio
		if mm%2 != 0 {
			v = -v
		}
		return v
	}
	// Seed P_m^m = (-1)^m (2m-1)!! (1-x^2)^(m/2), then climb the degree.
	pmm := 1.0
	if m > 0 {
		s := math.Sqrt((1 - x) * (1 + x))
		f := 1.0
		for k := int32(1); k <= m; k++ {
			pmm *= -f * s
			f += 2
		}
	}
	if n == m {
		return pmm
	}
	pm1 := x * float64(2*m+1) * pmm
	if n == m+1 {
		return pm1
	}
	var cur float64
	for k := m + 2; k <= n; k++ {
		fk, fm := float64(k), float64(m)
		cur = ((2*fk-1)*x*pm1 - (fk+fm-1)*pmm) / (fk - fm)
		pmm, pm1 = pm1, cur
	}
	return cur
}

// lgammaRatio returns log(a! / b!).
func lgammaRatio(a, b int) float64 {
	la, _ := math.Lgamma(float64(a) + 1)
	lb, _ := math.Lgamma(float64(b) + 1)
	return la - lb
}

// SphericalHarmonic evaluates Y_n^m(theta, phi) with the Condon-Shortley
// phase carried by the associated Legendre kernel:
//
//	Y_n^m = sqrt((2n+1)/(4 pi) * (n-m)!/(n+m)!) P_n^m(cos theta) e^(i m phi)
func SphericalHarmonic(n, m int32, theta, phi float64) complex128 {
	norm := math.Sqrt(float64(2*n+1) / (4 * math.Pi) * math.Exp(lgammaRatio(int(n-m), int(n+m))))
	r := norm * AssocLegendreP(n, m, math.Cos(theta))
	s, c := math.Sincos(float64(m) * phi)
	return complex(r*c, r*s)
}

// LegendreZerosFill fills out with the n zeros of P_n in ascending order;
// they are the Gauss-Legendre nodes on [-1, 1]. len(out) must be n.
func LegendreZerosFill(n int32, out []float64) {
	w := make([]float64, len(out))
	quad.Legendre{}.FixedLocations(out, w, -1, 1)
}
