package backend

import "math"

// Cardinal B-spline kernels. B_n is centered, built from the truncated-power
// representation
//
//	B_n(x) = 1/n! * sum_{k=0}^{n+1} (-1)^k C(n+1,k) (x + (n+1)/2 - k)_+^n
//
// Derivatives reuse B_{n-1} through B_n'(x) = B_{n-1}(x+1/2) - B_{n-1}(x-1/2).

func bspline(n int32, x float64) float64 {
	if n == 0 {
		// order-0 spline is the centered unit box
		if x >= -0.5 && x < 0.5 {
			return 1
		}
		return 0
	}
	m := int(n)
	shift := float64(m+1) / 2
	sum := 0.0
	binom := 1.0
	for k := 0; k <= m+1; k++ {
		t := x + shift - float64(k)
		if t > 0 {
			term := binom * math.Pow(t, float64(m))
			if k%2 != 0 {
				term = -term
			}
			sum += term
		}
		binom = binom * float64(m+1-k) / float64(k+1)
	}
	lf, _ := math.Lgamma(float64(m) + 1)
	return sum / math.Exp(lf)
}

func bspline32(n int32, x float32) float32 {
	if n == 0 {
		if x >= -0.5 && x < 0.5 {
			return 1
		}
		return 0
	}
	m := int(n)
	shift := float32(m+1) / 2
	var sum float32
	binom := float32(1)
	for k := 0; k <= m+1; k++ {
		t := x + shift - float32(k)
		if t > 0 {
			term := binom * pow32(t, m)
			if k%2 != 0 {
				term = -term
			}
			sum += term
		}
		binom = binom * float32(m+1-k) / float32(k+1)
	}
	fact := float32(1)
	for k := 2; k <= m; k++ {
		fact *= float32(k)
	}
	return sum / fact
}

func pow32(x float32, n int) float32 {
	v := float32(1)
	for i := 0; i < n; i++ {
		v *= x
	}
	return v
}

func bsplinePrime(n int32, x float64) float64 {
	if n == 0 {
		return 0
	}
	return bspline(n-1, x+0.5) - bspline(n-1, x-0.5)
}

func bsplineDoublePrime(n int32, x float64) float64 {
	if n <= 1 {
		return 0
	}
	return bspline(n-2, x+1) - 2*bspline(n-2, x) + bspline(n-2, x-1)
}
