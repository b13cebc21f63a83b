// Package backend is the numerical kernel catalogue: one precision-tagged
// kernel set per function. Kernels consume already-validated, fixed-width
// native arguments and are total over the pre-validated domain; nothing in
// this package re-validates or reports errors. The layer above treats the
// catalogue as a trusted oracle.
package backend

// ExtendedSupported reports whether the host provides an 80-bit float for
// the Extended tier. This is resolved at build time, never at run time. No
// platform the Go toolchain targets has such a type, so the Extended column
// of the dispatch tables below is absent; on a host that gained one, the
// tables would grow an F80 slot alongside F32/F64.
const ExtendedSupported = false

// Unary is the dispatch-table row for a one-argument function. F64 is the
// canonical Standard kernel and is always present. F32 is the native Reduced
// kernel; a nil F32 means the catalogue has no native Reduced routine and the
// caller must go through the widen/narrow adapter.
type Unary struct {
	F32 func(float32) float32
	F64 func(float64) float64
}

// UnaryN is the dispatch-table row for a function parameterized by a single
// integer order.
type UnaryN struct {
	F32 func(n int32, x float32) float32
	F64 func(n int32, x float64) float64
}

// Dispatch tables. Rows without an F32 entry evaluate the Reduced tier
// through the canonical Standard kernel.
var (
	DigammaKernel  = Unary{F64: digamma}
	TrigammaKernel = Unary{F64: trigamma}
	ZetaKernel     = Unary{F64: zeta}

	AiryAiKernel = Unary{F64: airyAi}
	AiryBiKernel = Unary{F64: airyBi}

	LambertW0Kernel       = Unary{F64: lambertW0}
	LambertWm1Kernel      = Unary{F64: lambertWm1}
	LambertW0PrimeKernel  = Unary{F64: lambertW0Prime}
	LambertWm1PrimeKernel = Unary{F64: lambertWm1Prime}

	HermiteKernel   = UnaryN{F32: hermite32, F64: hermite}
	LegendrePKernel = UnaryN{F32: legendreP32, F64: legendreP}
	LegendreQKernel = UnaryN{F64: legendreQ}

	BSplineKernel            = UnaryN{F32: bspline32, F64: bspline}
	BSplinePrimeKernel       = UnaryN{F64: bsplinePrime}
	BSplineDoublePrimeKernel = UnaryN{F64: bsplineDoublePrime}
)
