package domain

import (
	"errors"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_DecimalDegrees(t *testing.T) {
	v, err := Normalize("90", DecimalDegrees, AxisLatitude)
	require.NoError(t, err)
	assert.Equal(t, 90.0, v)

	v, err = Normalize("-180", DecimalDegrees, AxisLongitude)
	require.NoError(t, err)
	assert.Equal(t, -180.0, v)

	v, err = Normalize(" +42.42067 ", DecimalDegrees, AxisLatitude)
	require.NoError(t, err)
	assert.Equal(t, 42.42067, v)
}

func TestNormalize_DecimalDegrees_OutOfRange(t *testing.T) {
	_, err := Normalize("90.0001", DecimalDegrees, AxisLatitude)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = Normalize("200", DecimalDegrees, AxisLongitude)
	assert.ErrorIs(t, err, ErrOutOfRange)

	// Within the longitude bound is still too large for a latitude.
	_, err = Normalize("120", DecimalDegrees, AxisLatitude)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestNormalize_DecimalDegrees_NoMatch(t *testing.T) {
	for _, input := range []string{"abc", "NaN", "Inf", "1e2", "0x1p3", "45° 7'", "45.5 N", "1,5"} {
		_, err := Normalize(input, DecimalDegrees, AxisLatitude)
		assert.ErrorIs(t, err, ErrNoMatch, "input %q", input)
	}
}

func TestNormalize_DegreesDecimalMinutes(t *testing.T) {
	v, err := Normalize("45° 7.404' S", DegreesDecimalMinutes, AxisLatitude)
	require.NoError(t, err)
	assert.InDelta(t, -45.1234, v, 1e-9)

	v, err = Normalize("45 7.404 n", DegreesDecimalMinutes, AxisLatitude)
	require.NoError(t, err)
	assert.InDelta(t, 45.1234, v, 1e-9)

	v, err = Normalize("120 30 W", DegreesDecimalMinutes, AxisLongitude)
	require.NoError(t, err)
	assert.InDelta(t, -120.5, v, 1e-12)

	v, err = Normalize("180 0", DegreesDecimalMinutes, AxisLongitude)
	require.NoError(t, err)
	assert.Equal(t, 180.0, v)
}

func TestNormalize_DegreesDecimalMinutes_SubRange(t *testing.T) {
	_, err := Normalize("45° 61.0' N", DegreesDecimalMinutes, AxisLatitude)
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = Normalize("45 60", DegreesDecimalMinutes, AxisLatitude)
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = Normalize("181 0", DegreesDecimalMinutes, AxisLongitude)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestNormalize_DegreesDecimalMinutes_OutOfRange(t *testing.T) {
	_, err := Normalize("95 0 N", DegreesDecimalMinutes, AxisLatitude)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = Normalize("180 0.5 E", DegreesDecimalMinutes, AxisLongitude)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestNormalize_HemisphereMustMatchAxis(t *testing.T) {
	_, err := Normalize("45 7.5 E", DegreesDecimalMinutes, AxisLatitude)
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = Normalize("45 7 30 S", DegreesMinutesSeconds, AxisLongitude)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestNormalize_DegreesMinutesSeconds(t *testing.T) {
	v, err := Normalize(`45° 7' 24.24" N`, DegreesMinutesSeconds, AxisLatitude)
	require.NoError(t, err)
	assert.InDelta(t, 45+7.0/60+24.24/3600, v, 1e-12)
	assert.InDelta(t, 45.1234, v, 1e-9)

	v, err = Normalize("45 7 24.24 s", DegreesMinutesSeconds, AxisLatitude)
	require.NoError(t, err)
	assert.InDelta(t, -45.1234, v, 1e-9)

	v, err = Normalize("18° 46′ 5.7″ E", DegreesMinutesSeconds, AxisLongitude)
	require.NoError(t, err)
	assert.InDelta(t, 18+46.0/60+5.7/3600, v, 1e-12)
}

func TestNormalize_DegreesMinutesSeconds_SubRange(t *testing.T) {
	_, err := Normalize("45 7 60", DegreesMinutesSeconds, AxisLatitude)
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = Normalize("45 60 0", DegreesMinutesSeconds, AxisLatitude)
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = Normalize("45 7.5", DegreesMinutesSeconds, AxisLatitude)
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = Normalize("90 0 0.1 N", DegreesMinutesSeconds, AxisLatitude)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestNormalize_GoogleMapsPair(t *testing.T) {
	v, err := Normalize("42.42067, 18.76825", GoogleMapsPair, AxisLatitude)
	require.NoError(t, err)
	assert.Equal(t, 42.42067, v)

	v, err = Normalize("42.42067, 18.76825", GoogleMapsPair, AxisLongitude)
	require.NoError(t, err)
	assert.Equal(t, 18.76825, v)

	// Both components are validated even when only one is returned.
	_, err = Normalize("42.42067, 190.00000", GoogleMapsPair, AxisLatitude)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = Normalize("42.4", GoogleMapsPair, AxisLatitude)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestNormalize_GridNotationsUnsupported(t *testing.T) {
	n, ok := DetectNotation("33T 123456 5678901")
	require.True(t, ok)
	assert.Equal(t, UTM, n)

	_, err := Normalize("33T 123456 5678901", UTM, AxisLatitude)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Normalize("45.1", UTM, AxisLatitude)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Normalize("33T WN 12345 67890", MGRS, AxisLongitude)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Normalize("45.1", Notation(99), AxisLatitude)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestNormalize_Empty(t *testing.T) {
	_, ok := DetectNotation("")
	assert.False(t, ok)

	for _, n := range Notations() {
		_, err := Normalize("", n, AxisLatitude)
		assert.ErrorIs(t, err, ErrEmpty, n.Key())

		_, err = Normalize(" \t ", n, AxisLongitude)
		assert.ErrorIs(t, err, ErrEmpty, n.Key())
	}
}

func TestNormalize_ErrorDetails(t *testing.T) {
	_, err := Normalize("45° 61' N", DegreesDecimalMinutes, AxisLatitude)
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, ReasonNoMatch, pe.Reason)
	assert.Equal(t, DegreesDecimalMinutes, pe.Notation)
	assert.Equal(t, AxisLatitude, pe.Axis)
	assert.Equal(t, "latitude: invalid Degrees Decimal Minutes (DDM) format", err.Error())

	_, err = Normalize("200", DecimalDegrees, AxisLongitude)
	assert.Equal(t, ReasonOutOfRange, ReasonOf(err))
	assert.Equal(t, "longitude: value outside ±180", err.Error())

	assert.Equal(t, Reason(""), ReasonOf(nil))
	assert.Equal(t, Reason(""), ReasonOf(errors.New("other")))
}

func TestNormalize_DecimalRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for _, axis := range []Axis{AxisLatitude, AxisLongitude} {
		bound := axis.Bound()
		samples := []float64{0, bound, -bound, 1e-9, -0.5, 45.1234}
		for range 500 {
			samples = append(samples, (rng.Float64()*2-1)*bound)
		}

		for _, d := range samples {
			v, err := Normalize(FormatDecimal(d), DecimalDegrees, axis)
			require.NoError(t, err, "d=%v", d)
			assert.Equal(t, d, v)
		}
	}
}

func TestNormalize_ConcurrentCalls(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]float64, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := Normalize(`45° 7' 24.24" N`, DegreesMinutesSeconds, AxisLatitude)
			if err == nil {
				results[i] = v
			}
		}(i)
	}
	wg.Wait()

	for _, v := range results {
		assert.Equal(t, results[0], v)
	}
	assert.InDelta(t, 45.1234, results[0], 1e-9)
}
