package backend

import "math"

// Lambert W kernels: Halley iteration seeded per branch. The branch point
// is z = -1/e; upstream range checks keep arguments on the real branches.

const expMinusOne = 0.36787944117144232 // 1/e

func lambertW0(x float64) float64 {
	switch {
	case x == 0:
		return 0
	case math.IsInf(x, 1):
		return math.Inf(1)
	}
	var w float64
	if x < -0.25 {
		// Series about the branch point in p = sqrt(2(ex+1)).
		p := math.Sqrt(2 * (math.E*x + 1))
		w = -1 + p*(1+p*(-1.0/3+p*(11.0/72)))
	} else if x <= 3 {
		w = math.Log1p(x) // close enough to stay in the Halley basin
	} else {
		l1 := math.Log(x)
		l2 := math.Log(l1)
		w = l1 - l2 + l2/l1
	}
	return halleyW(x, w)
}

func lambertWm1(x float64) float64 {
	if x == -expMinusOne {
		return -1
	}
	var w float64
	if x < -0.25 {
		p := math.Sqrt(2 * (math.E*x + 1))
		w = -1 - p*(1+p*(1.0/3+p*(11.0/72)))
	} else {
		// For small |x| the branch behaves like log(-x) - log(-log(-x)).
		l1 := math.Log(-x)
		l2 := math.Log(-l1)
		w = l1 - l2 + l2/l1
	}
	return halleyW(x, w)
}

func halleyW(x, w float64) float64 {
	for i := 0; i < 64; i++ {
		e := math.Exp(w)
		f := w*e - x
		if f == 0 {
			break
		}
		d := e*(w+1) - f*(w+2)/(2*(w+1))
		step := f / d
		w -= step
		if math.Abs(step) <= 1e-16*(1+math.Abs(w)) {
			break
		}
	}
	return w
}

// Derivative of the W branches: W'(z) = W / (z (1 + W)), with the removable
// point W0'(0) = 1. The branch point itself is excluded upstream because the
// derivative diverges there.

func lambertW0Prime(x float64) float64 {
	if x == 0 {
		return 1
	}
	w := lambertW0(x)
	return w / (x * (1 + w))
}

func lambertWm1Prime(x float64) float64 {
	w := lambertWm1(x)
	return w / (x * (1 + w))
}
