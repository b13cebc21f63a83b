package specials

// Package specials provides:
//
// - Validated access to a catalogue of mathematical special functions
//   (cardinal B-splines, Airy, digamma/polygamma/zeta, Gegenbauer, Hermite,
//   Lambert W, Legendre, Legendre-Stieltjes, spherical harmonics) at the
//   Reduced (float32) and Standard (float64) precision tiers
// - A stable error model via a closed set of validation-error variants
//   (code, parameter name, violated bounds)
// - Bulk retrieval of ascending zero sequences under caller-supplied counts
//
// Design policy:
// - Keep only public APIs in the root package; put the kernel catalogue under
//   internal/backend and the constraint checks under internal/check.
// - Validate fully, then compute: no argument reaches a kernel without passing
//   every check declared for its role, and kernels are trusted afterwards.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  y, err := specials.Digamma(-3.2)
//  var pole specials.PoleError
//  if errors.As(err, &pole) { ... }
//
//  zeros, err := specials.AiryAiZeros[float64](0, 5)
//
