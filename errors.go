package specials

import (
	"errors"

	json "github.com/goccy/go-json"

	"github.com/strike65/specials/internal/fault"
)

// Validation error codes (exported consts for IDE completion and type safety
// by convention). The set is closed: every rejected call carries exactly one
// variant, and each entry point documents which variants it can produce.
const (
	CodeNotPositive        = fault.CodeNotPositive
	CodeOutOfRange         = fault.CodeOutOfRange
	CodeNotFinite          = fault.CodeNotFinite
	CodePole               = fault.CodePole
	CodeInvalidCombination = fault.CodeInvalidCombination
	CodeMaxInteger         = fault.CodeMaxInteger
)

// ValidationError is implemented by every variant in the taxonomy. Callers
// branch on the concrete type (errors.As) or on Code for diagnostics.
type ValidationError = fault.Validation

// NotPositiveError reports an integer parameter that violates its required
// >= 0 or > 0 bound.
type NotPositiveError = fault.NotPositive

// OutOfRangeError reports a continuous parameter outside the closed or
// half-open interval required for the function's real-valued branch. Min and
// Max carry the violated bounds.
type OutOfRangeError = fault.OutOfRange

// NotFiniteError reports a NaN or infinite input.
type NotFiniteError = fault.NotFinite

// PoleError reports an evaluation point sitting exactly on a non-positive
// integer where the function has a simple pole.
type PoleError = fault.Pole

// CombinationError reports individually-valid parameters that form a jointly
// invalid combination.
type CombinationError = fault.Combination

// MaxIntegerError reports an integer parameter that cannot be represented in
// the fixed-width type the backend consumes.
type MaxIntegerError = fault.MaxInteger

// AsValidation extracts the ValidationError from err using errors.As
// internally.
func AsValidation(err error) (ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// CodeOf returns the taxonomy code carried by err, or "" when err is not a
// ValidationError.
func CodeOf(err error) string {
	if ve, ok := AsValidation(err); ok {
		return ve.Code()
	}
	return ""
}

// envelope is the stable wire shape produced by EncodeError.
type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Params  ValidationError `json:"params"`
}

// EncodeError renders a ValidationError as a stable JSON object holding the
// code, the localized message and the structured parameters. It returns nil
// for non-validation errors.
func EncodeError(err error) []byte {
	ve, ok := AsValidation(err)
	if !ok {
		return nil
	}
	b, mErr := json.Marshal(envelope{Code: ve.Code(), Message: ve.Error(), Params: ve})
	if mErr != nil {
		return nil
	}
	return b
}
