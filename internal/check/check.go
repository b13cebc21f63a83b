// Package check implements the shared domain-constraint predicates. Each
// function is pure and returns exactly one taxonomy error (or nil). Entry
// points run their checks in a fixed order: integer/shape checks first, then
// finiteness, then range/pole checks; the first violation is the one
// reported.
package check

import (
	"math"

	"github.com/strike65/specials/internal/fault"
)

// MaxIndex is the largest integer parameter the backend's fixed-width
// integer type can represent.
const MaxIndex = math.MaxInt32

// Finite rejects NaN and ±Inf evaluation points and parameters.
func Finite(name string, x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fault.NotFinite{Param: name, Value: x}
	}
	return nil
}

// ClosedRange rejects x outside [min, max].
func ClosedRange(name string, x, min, max float64) error {
	if x < min || x > max {
		return fault.OutOfRange{Param: name, Min: min, Max: max}
	}
	return nil
}

// HalfOpenRange rejects x outside [min, max). An unbounded right end is
// expressed with max = +Inf.
func HalfOpenRange(name string, x, min, max float64) error {
	if x < min || x >= max {
		return fault.OutOfRange{Param: name, Min: min, Max: max}
	}
	return nil
}

// OpenRange rejects x outside (min, max).
func OpenRange(name string, x, min, max float64) error {
	if x <= min || x >= max {
		return fault.OutOfRange{Param: name, Min: min, Max: max}
	}
	return nil
}

// OpenLowRange rejects x outside (min, max]. An unbounded right end is
// expressed with max = +Inf.
func OpenLowRange(name string, x, min, max float64) error {
	if x <= min || x > max {
		return fault.OutOfRange{Param: name, Min: min, Max: max}
	}
	return nil
}

// NonNegative rejects integer parameters below zero.
func NonNegative(name string, n int) error {
	if n < 0 {
		return fault.NotPositive{Param: name}
	}
	return nil
}

// Positive rejects integer parameters at or below zero.
func Positive(name string, n int) error {
	if n <= 0 {
		return fault.NotPositive{Param: name}
	}
	return nil
}

// Representable rejects integer parameters that do not fit the backend's
// fixed-width integer type.
func Representable(name string, n int) error {
	if n > MaxIndex {
		return fault.MaxInteger{Param: name, Max: MaxIndex}
	}
	return nil
}

// NonPositiveIntegerPole rejects evaluation points sitting exactly on a
// non-positive integer, where the gamma-derivative family has simple poles.
// Non-finite x is not this check's business; run Finite first.
func NonPositiveIntegerPole(name string, x float64) error {
	if x <= 0 && x == math.Trunc(x) && !math.IsInf(x, 0) {
		return fault.Pole{Param: name}
	}
	return nil
}

// OrderWithinDegree rejects secondary orders with |m| > n.
func OrderWithinDegree(name string, n, m int) error {
	if m > n || m < -n {
		return fault.OutOfRange{Param: name, Min: float64(-n), Max: float64(n)}
	}
	return nil
}
