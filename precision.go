package specials

import (
	"reflect"

	"github.com/strike65/specials/internal/backend"
)

// Real constrains the floating-point types accepted by the generic entry
// points: float32 (Reduced tier) and float64 (Standard tier).
type Real interface {
	~float32 | ~float64
}

// Tier identifies one of the fixed floating-point precision tiers supported
// end-to-end. Ordering is significant: higher values are wider
// representations, and mixed-precision calls resolve to the highest tier
// among their arguments.
type Tier int

const (
	// TierReduced is the 32-bit tier (float32).
	TierReduced Tier = iota
	// TierStandard is the 64-bit tier (float64); validation and the generic
	// evaluation path are canonical at this tier.
	TierStandard
	// TierExtended is the 80-bit tier. It is a build-resolved capability:
	// entry points for it exist only where the host provides an 80-bit
	// representation. No Go platform does, so ExtendedAvailable reports
	// false and no Extended entry points are part of this module's contract.
	TierExtended
)

// ExtendedAvailable reports whether the Extended tier is offered on this
// build. This is a static capability flag, never a runtime failure.
const ExtendedAvailable = backend.ExtendedSupported

func (t Tier) String() string {
	switch t {
	case TierReduced:
		return "reduced"
	case TierStandard:
		return "standard"
	case TierExtended:
		return "extended"
	}
	return "unknown"
}

// Bits returns the width of the tier's representation.
func (t Tier) Bits() int {
	switch t {
	case TierReduced:
		return 32
	case TierStandard:
		return 64
	case TierExtended:
		return 80
	}
	return 0
}

// TierOf reports the tier a Real instantiation evaluates at.
func TierOf[T Real]() Tier {
	var v T
	if reflect.TypeOf(v).Kind() == reflect.Float32 {
		return TierReduced
	}
	return TierStandard
}
