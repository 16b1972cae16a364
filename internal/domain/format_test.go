package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDDM(t *testing.T) {
	assert.Equal(t, "45° 7.404' S", FormatDDM(-45.1234, AxisLatitude))
	assert.Equal(t, "120° 30' W", FormatDDM(-120.5, AxisLongitude))
	assert.Equal(t, "0° 0' N", FormatDDM(0, AxisLatitude))
	assert.Equal(t, "11° 0' N", FormatDDM(10.99999999, AxisLatitude), "minutes carry into degrees")
}

func TestFormatDMS(t *testing.T) {
	assert.Equal(t, `45° 7' 24.24" N`, FormatDMS(45.1234, AxisLatitude))
	assert.Equal(t, `120° 30' 0" W`, FormatDMS(-120.5, AxisLongitude))
	assert.Equal(t, `11° 0' 0" E`, FormatDMS(10.9999999999, AxisLongitude))
}

func TestFormat_ParsesBack(t *testing.T) {
	for _, v := range []float64{45.1234, -45.1234, 0.5, -89.999, 12.000001} {
		got, err := Normalize(FormatDDM(v, AxisLatitude), DegreesDecimalMinutes, AxisLatitude)
		require.NoError(t, err)
		assert.InDelta(t, v, got, 1e-4/60)

		got, err = Normalize(FormatDMS(v, AxisLatitude), DegreesMinutesSeconds, AxisLatitude)
		require.NoError(t, err)
		assert.InDelta(t, v, got, 0.01/3600)
	}
}
