package backend

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mat"
)

// Legendre-Stieltjes kernels. E_m is the degree-m polynomial with leading
// Legendre component P_m satisfying
//
//	integral_{-1}^{1} P_{m-1}(x) E_m(x) x^k dx = 0,  k = 0..m-1.
//
// Writing E_m = P_m + sum b_j P_j over j = m-2, m-4, ... turns those
// conditions into a small dense linear system in the triple products
// integral P_a P_b P_c, solved with gonum/mat. Its zeros are the nodes a
// Gauss-Kronrod rule adds to the (m-1)-point Gauss rule and interlace the
// Gauss nodes, which gives every zero a guaranteed bracket.

// stieltjesCoefficients returns the Legendre-basis coefficients of E_m,
// index i holding the coefficient of P_{m-2i} (so index 0 is 1).
func stieltjesCoefficients(m int32) []float64 {
	n := int(m)
	nb := n / 2 // number of unknown b_j
	coef := make([]float64, nb+1)
	coef[0] = 1
	if nb == 0 {
		return coef
	}
	a := mat.NewDense(nb, nb, nil)
	rhs := mat.NewVecDense(nb, nil)
	row := 0
	for k := 1; k <= n-1; k += 2 { // only odd-offset conditions are nontrivial
		for col := 1; col <= nb; col++ {
			a.Set(row, col-1, tripleProduct(n-1, n-2*col, k))
		}
		rhs.SetVec(row, -tripleProduct(n-1, n, k))
		row++
	}
	var b mat.VecDense
	if err := b.SolveVec(a, rhs); err != nil {
		// The system is nonsingular for every m >= 1; a failure here means
		// the oracle itself is broken, which the contract treats as
		// unreachable.
		panic("backend: stieltjes system is singular")
	}
	for i := 1; i <= nb; i++ {
		coef[i] = b.AtVec(i - 1)
	}
	return coef
}

// tripleProduct computes integral_{-1}^{1} P_a P_b P_c dx via Adams'
// closed form with log-gamma factors.
func tripleProduct(a, b, c int) float64 {
	s2 := a + b + c
	if s2%2 != 0 {
		return 0
	}
	if a+b < c || b+c < a || c+a < b {
		return 0
	}
	s := s2 / 2
	lg := lgA(s-a) + lgA(s-b) + lgA(s-c) - lgA(s)
	return 2 / float64(s2+1) * math.Exp(lg)
}

// lgA returns log((2n)! / (n!)^2).
func lgA(n int) float64 {
	l2n, _ := math.Lgamma(float64(2*n) + 1)
	ln, _ := math.Lgamma(float64(n) + 1)
	return l2n - 2*ln
}

// LegendreStieltjes evaluates E_m(x) by summing its Legendre components
// along the P recurrence.
func LegendreStieltjes(m int32, x float64) float64 {
	coef := stieltjesCoefficients(m)
	return stieltjesEval(int(m), coef, x)
}

func stieltjesEval(m int, coef []float64, x float64) float64 {
	v := 0.0
	for i, c := range coef {
		v += c * legendreP(int32(m-2*i), x)
	}
	return v
}

// StieltjesZeroCount reports the number of real zeros of E_m (its degree).
// Callers that cannot size the output up front query this first.
func StieltjesZeroCount(m int32) int { return int(m) }

// LegendreStieltjesZerosFill fills out with the m zeros of E_m in ascending
// order. len(out) must be StieltjesZeroCount(m).
func LegendreStieltjesZerosFill(m int32, out []float64) {
	n := int(m)
	coef := stieltjesCoefficients(m)
	f := func(x float64) float64 { return stieltjesEval(n, coef, x) }
	if n == 1 {
		out[0] = 0 // E_1 = P_1
		return
	}
	// Brackets: -1, the m-1 Gauss nodes of P_{m-1}, then 1.
	nodes := make([]float64, n-1)
	w := make([]float64, n-1)
	quad.Legendre{}.FixedLocations(nodes, w, -1, 1)
	lo := -1.0
	for i := 0; i < n; i++ {
		hi := 1.0
		if i < n-1 {
			hi = nodes[i]
		}
		out[i] = bisect(f, lo, hi)
		lo = hi
	}
}
