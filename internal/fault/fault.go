// Package fault defines the closed validation-error taxonomy shared by the
// constraint checks and the public API. The root package aliases these types;
// nothing outside the module imports them directly.
package fault

import (
	"fmt"
	"math"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/strike65/specials/i18n"
)

// Taxonomy codes.
const (
	CodeNotPositive        = "parameter_not_positive"
	CodeOutOfRange         = "parameter_out_of_range"
	CodeNotFinite          = "parameter_not_finite"
	CodePole               = "pole_at_non_positive_integer"
	CodeInvalidCombination = "invalid_combination"
	CodeMaxInteger         = "parameter_exceeds_maximum_integer"
)

// Validation is implemented by every variant in the taxonomy.
type Validation interface {
	error
	Code() string
}

// NotPositive reports an integer parameter that violates its required >= 0
// or > 0 bound.
type NotPositive struct {
	Param string `json:"param"`
}

func (e NotPositive) Code() string { return CodeNotPositive }

func (e NotPositive) Error() string {
	return fmt.Sprintf("%s: %s", e.Param, i18n.T(CodeNotPositive, nil))
}

// OutOfRange reports a continuous parameter outside the interval required
// for the function's real-valued branch. Min and Max are the violated
// bounds.
type OutOfRange struct {
	Param string  `json:"param"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

func (e OutOfRange) Code() string { return CodeOutOfRange }

func (e OutOfRange) Error() string {
	return fmt.Sprintf("%s: %s", e.Param, i18n.T(CodeOutOfRange, map[string]string{
		"min": strconv.FormatFloat(e.Min, 'g', -1, 64),
		"max": strconv.FormatFloat(e.Max, 'g', -1, 64),
	}))
}

// MarshalJSON renders unbounded interval ends as strings; a bare +Inf would
// make the whole diagnostic envelope unencodable.
func (e OutOfRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Param string `json:"param"`
		Min   any    `json:"min"`
		Max   any    `json:"max"`
	}{e.Param, jsonNumber(e.Min), jsonNumber(e.Max)})
}

// NotFinite reports a NaN or infinite input.
type NotFinite struct {
	Param string  `json:"param"`
	Value float64 `json:"value"`
}

func (e NotFinite) Code() string { return CodeNotFinite }

func (e NotFinite) Error() string {
	return fmt.Sprintf("%s: %s", e.Param, i18n.T(CodeNotFinite, map[string]string{
		"value": strconv.FormatFloat(e.Value, 'g', -1, 64),
	}))
}

// MarshalJSON renders Value as a string: it is NaN or infinite by
// construction, which JSON numbers cannot carry.
func (e NotFinite) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Param string `json:"param"`
		Value string `json:"value"`
	}{e.Param, strconv.FormatFloat(e.Value, 'g', -1, 64)})
}

// Pole reports an evaluation point sitting exactly on a non-positive integer
// where the function has a simple pole.
type Pole struct {
	Param string `json:"param"`
}

func (e Pole) Code() string { return CodePole }

func (e Pole) Error() string {
	return fmt.Sprintf("%s: %s", e.Param, i18n.T(CodePole, nil))
}

// Combination reports individually-valid parameters that form a jointly
// invalid combination, for example evaluation at a function's single pole.
type Combination struct {
	Message string `json:"message"`
}

func (e Combination) Code() string { return CodeInvalidCombination }

func (e Combination) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return i18n.T(CodeInvalidCombination, nil)
}

// jsonNumber keeps finite bounds as JSON numbers and falls back to the
// string form for NaN and the infinities.
func jsonNumber(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return v
}

// MaxInteger reports an integer parameter that cannot be represented in the
// fixed-width type the backend consumes. Max is the largest accepted value.
type MaxInteger struct {
	Param string `json:"param"`
	Max   int64  `json:"max"`
}

func (e MaxInteger) Code() string { return CodeMaxInteger }

func (e MaxInteger) Error() string {
	return fmt.Sprintf("%s: %s", e.Param, i18n.T(CodeMaxInteger, map[string]string{
		"max": strconv.FormatInt(e.Max, 10),
	}))
}
