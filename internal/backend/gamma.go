package backend

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Gamma-derivative kernels. Inputs are finite and off the non-positive
// integers; the pole screen upstream guarantees that.

func digamma(x float64) float64 {
	if x > 0 {
		return mathext.Digamma(x)
	}
	// Reflection: psi(x) = psi(1-x) - pi*cot(pi*x), with 1-x > 1.
	return mathext.Digamma(1-x) - math.Pi/math.Tan(math.Pi*x)
}

func trigamma(x float64) float64 {
	if x > 0 {
		return mathext.Zeta(2, x)
	}
	// Reflection: psi1(x) + psi1(1-x) = pi^2 / sin^2(pi*x).
	s := math.Sin(math.Pi * x)
	return math.Pi*math.Pi/(s*s) - mathext.Zeta(2, 1-x)
}

// Polygamma evaluates psi_n(x) for n >= 0. Positive x goes through the
// Hurwitz zeta identity psi_n(x) = (-1)^(n+1) n! zeta(n+1, x). Negative
// non-integer x is reflected across 1-x:
//
//	psi_n(x) = -pi * d^n/dx^n cot(pi*x) + (-1)^n psi_n(1-x)
func Polygamma(order int32, x float64) float64 {
	switch order {
	case 0:
		return digamma(x)
	case 1:
		return trigamma(x)
	}
	n := int(order)
	if x > 0 {
		return polygammaPositive(n, x)
	}
	return -math.Pi*cotDerivative(n, x) + signPow(n)*polygammaPositive(n, 1-x)
}

func polygammaPositive(n int, x float64) float64 {
	// (-1)^(n+1) n! zeta(n+1, x); the log form keeps n!*zeta from
	// overflowing when the factors cancel.
	lf, _ := math.Lgamma(float64(n) + 1)
	return signPow(n+1) * math.Exp(lf+math.Log(mathext.Zeta(float64(n)+1, x)))
}

// signPow returns (-1)^k.
func signPow(k int) float64 {
	if k%2 == 0 {
		return 1
	}
	return -1
}

// cotDerivative evaluates d^n/dx^n cot(pi*x). Each derivative step maps a
// polynomial p(u) in u = cot(pi*x) to -pi*(1+u^2)*p'(u).
func cotDerivative(n int, x float64) float64 {
	coef := make([]float64, n+2)
	coef[1] = 1 // p_0(u) = u
	for k := 0; k < n; k++ {
		next := make([]float64, len(coef)+1)
		for i := 1; i < len(coef); i++ {
			if coef[i] == 0 {
				continue
			}
			d := -math.Pi * float64(i) * coef[i]
			next[i-1] += d
			next[i+1] += d
		}
		coef = next
	}
	u := 1 / math.Tan(math.Pi*x)
	v, p := 0.0, 1.0
	for _, c := range coef {
		v += c * p
		p *= u
	}
	return v
}

// zeta evaluates the Riemann zeta function away from its single pole at
// s = 1. s > 1 delegates to the Hurwitz kernel; the critical strip uses
// Borwein's alternating-series acceleration; s < 0 is reflected.
func zeta(s float64) float64 {
	switch {
	case s > 1:
		return mathext.Zeta(s, 1)
	case s == 0:
		return -0.5
	case s > 0:
		return zetaBorwein(s)
	default:
		// zeta(s) = 2^s pi^(s-1) sin(pi*s/2) Gamma(1-s) zeta(1-s), 1-s > 1.
		sin := math.Sin(math.Pi * s / 2)
		if sin == 0 { // trivial zeros at the negative even integers
			return 0
		}
		return math.Pow(2, s) * math.Pow(math.Pi, s-1) * sin * math.Gamma(1-s) * zeta(1-s)
	}
}

// zetaBorwein computes zeta(s) for 0 < s < 1 via the Dirichlet eta function
// with Borwein's Chebyshev-accelerated alternating summation.
func zetaBorwein(s float64) float64 {
	const n = 32
	d := borweinCoefficients(n)
	sum := 0.0
	for k := 0; k < n; k++ {
		term := (d[k] - d[n]) / math.Pow(float64(k+1), s)
		if k%2 != 0 {
			term = -term
		}
		sum += term
	}
	return -sum / (d[n] * (1 - math.Pow(2, 1-s)))
}

// borweinCoefficients returns d_k = n * sum_{i<=k} (n+i-1)! 4^i / ((n-i)! (2i)!).
func borweinCoefficients(n int) []float64 {
	d := make([]float64, n+1)
	t := 1.0 // i = 0 term of the running product
	sum := t
	d[0] = float64(n) * sum
	for i := 1; i <= n; i++ {
		t *= 4 * float64(n+i-1) * float64(n-i+1) / (float64(2*i) * float64(2*i-1))
		sum += t
		d[i] = float64(n) * sum
	}
	return d
}
