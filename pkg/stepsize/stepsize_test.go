package stepsize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		ctor func(float64) (StepSize, error)
		unit Unit
	}{
		{"kilometers", Kilometers, Km},
		{"meters", Meters, M},
		{"miles", Miles, Mi},
		{"feet", Feet, Ft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.ctor(2.5)
			require.NoError(t, err)
			assert.Equal(t, 2.5, s.Value())
			assert.Equal(t, tt.unit, s.Unit())
		})
	}
}

func TestConstructorRejectsNonPositive(t *testing.T) {
	for _, v := range []float64{0, -5, -0.001} {
		_, err := Meters(v)
		assert.ErrorIs(t, err, ErrNonPositive, "value %v", v)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		value float64
		unit  Unit
	}{
		{"2.5km", 2.5, Km},
		{"10", 10, M}, // unit defaults to meters
		{"10m", 10, M},
		{"3mi", 3, Mi},
		{"250ft", 250, Ft},
		{"0.5km", 0.5, Km},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.value, s.Value())
			assert.Equal(t, tt.unit, s.Unit())
		})
	}
}

func TestParseFormatErrors(t *testing.T) {
	inputs := []string{
		"",
		"invalid",
		"km",
		"5yd",   // unknown unit
		"5 km",  // whitespace not allowed
		"5KM",   // units are case-sensitive
		"-5m",   // sign is not part of the grammar
		"1.5.2", // malformed number
		".5km",  // leading digit required
	}

	for _, input := range inputs {
		_, err := Parse(input)
		var perr *ParseError
		require.ErrorAs(t, err, &perr, "input %q", input)
		assert.Equal(t, input, perr.Input)
	}
}

func TestParseZeroMatchesGrammarButFailsConstruction(t *testing.T) {
	// "0m" is grammatically valid, so the failure is the positivity check,
	// not a parse error.
	_, err := Parse("0m")
	assert.ErrorIs(t, err, ErrNonPositive)

	_, err = Parse("0")
	assert.ErrorIs(t, err, ErrNonPositive)
}

func TestString(t *testing.T) {
	tests := []struct {
		value float64
		unit  Unit
		want  string
	}{
		{2.5, Km, "2.5km"},
		{10, M, "10m"},
		{5, Mi, "5mi"},
		{0.25, Ft, "0.25ft"},
	}

	for _, tt := range tests {
		s, err := New(tt.value, tt.unit)
		require.NoError(t, err)
		assert.Equal(t, tt.want, s.String())
	}
}

func TestStringParseRoundTrip(t *testing.T) {
	for _, unit := range []Unit{Km, M, Mi, Ft} {
		for _, v := range []float64{0.1, 1, 2.5, 1000, 0.3048} {
			s, err := New(v, unit)
			require.NoError(t, err)
			back, err := Parse(s.String())
			require.NoError(t, err, "round-tripping %s", s)
			assert.Equal(t, s, back)
		}
	}
}

func TestConvertTo(t *testing.T) {
	km, err := Kilometers(1)
	require.NoError(t, err)

	m := km.ToMeters()
	assert.Equal(t, 1000.0, m.Value())
	assert.Equal(t, M, m.Unit())

	mi, err := Miles(1)
	require.NoError(t, err)
	assert.InDelta(t, 1609.34, mi.ToMeters().Value(), 1e-9)

	ft, err := Feet(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.3048, ft.ToMeters().Value(), 1e-9)
}

func TestConvertToSameUnitIsIdentity(t *testing.T) {
	s, err := Miles(3.2)
	require.NoError(t, err)

	same := s.ConvertTo(Mi)
	assert.Equal(t, s, same)
	// Idempotent: converting the copy again changes nothing.
	assert.Equal(t, same, same.ConvertTo(Mi))
}

func TestConvertRoundTripDrift(t *testing.T) {
	// meters -> miles -> meters accumulates floating-point drift; it must
	// stay within tolerance but is not guaranteed exact.
	m, err := Meters(12345)
	require.NoError(t, err)

	back := m.ToMiles().ToMeters()
	assert.InDelta(t, m.Value(), back.Value(), 1e-9)
}

func TestConversionsDoNotMutateReceiver(t *testing.T) {
	s, err := Kilometers(2)
	require.NoError(t, err)

	_ = s.ToFeet()
	assert.Equal(t, 2.0, s.Value())
	assert.Equal(t, Km, s.Unit())
}

func TestErrorsAreDistinguishable(t *testing.T) {
	_, posErr := Meters(-1)
	_, fmtErr := Parse("bogus")

	assert.ErrorIs(t, posErr, ErrNonPositive)
	assert.NotErrorIs(t, fmtErr, ErrNonPositive)

	var perr *ParseError
	assert.False(t, errors.As(posErr, &perr))
	assert.True(t, errors.As(fmtErr, &perr))
}
