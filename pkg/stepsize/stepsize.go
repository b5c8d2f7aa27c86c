// Package stepsize provides the unit-bearing step distance used by the
// Audiom embed: the distance the virtual cursor moves per navigation step.
//
// A StepSize is immutable. Conversions return a new value and never mutate
// the receiver.
package stepsize

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Unit is a supported distance unit, identified by its short code.
type Unit string

// Supported units. The short codes are the exact tokens accepted by Parse
// and emitted by String.
const (
	Km Unit = "km"
	M  Unit = "m"
	Mi Unit = "mi"
	Ft Unit = "ft"
)

// metersPer is the canonical meters-per-unit conversion table. The mile and
// foot factors are fixed approximations; round-trip conversions drift by
// normal floating-point error and are not exact.
var metersPer = map[Unit]float64{
	Km: 1000,
	M:  1,
	Mi: 1609.34,
	Ft: 0.3048,
}

// ErrNonPositive is returned when a step size is constructed with a value
// that is not strictly positive.
var ErrNonPositive = errors.New("step size must be positive")

// ParseError is returned by Parse when the input does not match the
// <number>[unit] grammar.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid step size %q", e.Input)
}

// StepSize is a positive distance with a unit.
type StepSize struct {
	value float64
	unit  Unit
}

// New creates a StepSize. The unit is not validated; a value that is not
// strictly positive fails with ErrNonPositive.
func New(value float64, unit Unit) (StepSize, error) {
	if value <= 0 {
		return StepSize{}, fmt.Errorf("step size %v%s: %w", value, unit, ErrNonPositive)
	}
	return StepSize{value: value, unit: unit}, nil
}

// Kilometers creates a StepSize in kilometers.
func Kilometers(value float64) (StepSize, error) { return New(value, Km) }

// Meters creates a StepSize in meters.
func Meters(value float64) (StepSize, error) { return New(value, M) }

// Miles creates a StepSize in miles.
func Miles(value float64) (StepSize, error) { return New(value, Mi) }

// Feet creates a StepSize in feet.
func Feet(value float64) (StepSize, error) { return New(value, Ft) }

// Grammar: a non-negative decimal with optional fractional part, followed by
// an optional unit token. Case-sensitive; no sign, no whitespace.
var stepRe = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)(km|mi|m|ft)?$`)

// Parse parses a string of the form <number>[unit], e.g. "2.5km" or "10".
// The unit defaults to meters when omitted. Input that does not match the
// grammar fails with *ParseError; note that a leading minus sign is not part
// of the grammar, so "-5m" is a ParseError, not ErrNonPositive. "0" matches
// the grammar but fails construction with ErrNonPositive.
func Parse(text string) (StepSize, error) {
	m := stepRe.FindStringSubmatch(text)
	if m == nil {
		return StepSize{}, &ParseError{Input: text}
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return StepSize{}, &ParseError{Input: text}
	}
	unit := M
	if m[2] != "" {
		unit = Unit(m[2])
	}
	return New(value, unit)
}

// Value returns the numeric distance.
func (s StepSize) Value() float64 { return s.value }

// Unit returns the distance unit.
func (s StepSize) Unit() Unit { return s.unit }

// String renders the step size as <value><unit> with no separator, e.g.
// "2.5km". The value uses the shortest decimal form that round-trips.
func (s StepSize) String() string {
	return strconv.FormatFloat(s.value, 'f', -1, 64) + string(s.unit)
}

// ConvertTo converts the step size to the target unit via the canonical
// meters-per-unit table. Converting to the same unit returns an equal copy.
// The target unit must be one of the supported units.
func (s StepSize) ConvertTo(unit Unit) StepSize {
	if unit == s.unit {
		return StepSize{value: s.value, unit: s.unit}
	}
	meters := s.value * metersPer[s.unit]
	return StepSize{value: meters / metersPer[unit], unit: unit}
}

// ToKilometers converts to kilometers.
func (s StepSize) ToKilometers() StepSize { return s.ConvertTo(Km) }

// ToMeters converts to meters.
func (s StepSize) ToMeters() StepSize { return s.ConvertTo(M) }

// ToMiles converts to miles.
func (s StepSize) ToMiles() StepSize { return s.ConvertTo(Mi) }

// ToFeet converts to feet.
func (s StepSize) ToFeet() StepSize { return s.ConvertTo(Ft) }
