package backend

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mathext"
)

func airyAi(x float64) float64 {
	return real(mathext.AiryAi(complex(x, 0)))
}

// airyBi uses the connection formula (DLMF 9.2.10)
//
//	Bi(z) = e^(i pi/6) Ai(z e^(2 pi i/3)) + e^(-i pi/6) Ai(z e^(-2 pi i/3))
//
// which keeps Bi on the same kernel as Ai.
func airyBi(x float64) float64 {
	rot := cmplx.Exp(complex(0, 2*math.Pi/3))
	ph := cmplx.Exp(complex(0, math.Pi/6))
	z := complex(x, 0)
	v := ph*mathext.AiryAi(z*rot) + cmplx.Conj(ph)*mathext.AiryAi(z*cmplx.Conj(rot))
	return real(v)
}

// AiryAiZerosFill fills out with zeros of Ai in ascending numeric order. The
// start index is zero-based and counts from the zero closest to the origin,
// so out[len(out)-1] holds zero number start.
func AiryAiZerosFill(start int32, out []float64) {
	fillAiryZeros(airyAi, aiAsymptotic, start, out)
}

// AiryBiZerosFill is AiryAiZerosFill for Bi.
func AiryBiZerosFill(start int32, out []float64) {
	fillAiryZeros(airyBi, biAsymptotic, start, out)
}

func fillAiryZeros(f func(float64) float64, guess func(int32) float64, start int32, out []float64) {
	n := int32(len(out))
	for i := int32(0); i < n; i++ {
		idx := start + n - 1 - i // descending index = ascending value
		out[i] = airyZero(f, guess, idx)
	}
}

// airyZero locates the idx-th (zero-based) negative zero of f. Low indices
// are found by scanning sign changes down the negative axis; high indices
// seed a bracket from the asymptotic expansion, whose error is far below the
// local zero spacing there.
func airyZero(f func(float64) float64, guess func(int32) float64, idx int32) float64 {
	if idx < 16 {
		return scanZero(f, idx)
	}
	g := guess(idx)
	h := math.Pi / (4 * math.Sqrt(-g)) // a fraction of the local spacing
	lo, hi := g-h, g+h
	for f(lo)*f(hi) > 0 {
		lo -= h
		hi += h
	}
	return bisect(f, lo, hi)
}

// scanZero walks from the origin toward -Inf with a step that stays well
// below the local zero spacing (~pi/sqrt(|x|)) and bisects the idx-th sign
// change.
func scanZero(f func(float64) float64, idx int32) float64 {
	x := 0.0
	fx := f(x)
	seen := int32(0)
	for {
		step := math.Pi / (8 * math.Sqrt(math.Abs(x)+2))
		nx := x - step
		fn := f(nx)
		if fx*fn < 0 || fn == 0 {
			if seen == idx {
				return bisect(f, nx, x)
			}
			seen++
		}
		x, fx = nx, fn
	}
}

func bisect(f func(float64) float64, lo, hi float64) float64 {
	flo := f(lo)
	for i := 0; i < 200; i++ {
		mid := 0.5 * (lo + hi)
		if mid == lo || mid == hi {
			break
		}
		fm := f(mid)
		if fm == 0 {
			return mid
		}
		if flo*fm < 0 {
			hi = mid
		} else {
			lo, flo = mid, fm
		}
	}
	return 0.5 * (lo + hi)
}

// Asymptotic zero locations (DLMF 9.9.6/9.9.8): a_s = -T(3 pi (4s-1)/8),
// b_s = -T(3 pi (4s-3)/8) with s one-based.
func aiAsymptotic(idx int32) float64 {
	return -airyT(3 * math.Pi * (4*float64(idx+1) - 1) / 8)
}

func biAsymptotic(idx int32) float64 {
	return -airyT(3 * math.Pi * (4*float64(idx+1) - 3) / 8)
}

func airyT(t float64) float64 {
	t2 := 1 / (t * t)
	return math.Pow(t, 2.0/3.0) * (1 + t2*(5.0/48+t2*(-5.0/36+t2*(77125.0/82944))))
}
