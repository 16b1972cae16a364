package domain

import (
	"fmt"
	"math"
	"strconv"
)

// FormatDecimal renders v in the shortest fixed-point form that Normalize
// parses back to exactly v under DecimalDegrees.
func FormatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatDDM renders v as degrees and decimal minutes with a hemisphere letter,
// e.g. `45° 7.404' S`. Minutes are rounded to three places.
func FormatDDM(v float64, axis Axis) string {
	deg, minutes := splitMinutes(math.Abs(v), 1000)
	return fmt.Sprintf("%d° %s' %c", deg, strconv.FormatFloat(minutes, 'f', -1, 64), hemisphereFor(v, axis))
}

// FormatDMS renders v as degrees, minutes and seconds with a hemisphere letter,
// e.g. `45° 7' 24.24" N`. Seconds are rounded to two places.
func FormatDMS(v float64, axis Axis) string {
	abs := math.Abs(v)
	deg := math.Floor(abs)
	totalSeconds := math.Round((abs-deg)*3600*100) / 100
	if totalSeconds >= 3600 {
		deg++
		totalSeconds = 0
	}
	minutes := math.Floor(totalSeconds / 60)
	seconds := math.Round((totalSeconds-minutes*60)*100) / 100
	return fmt.Sprintf("%d° %d' %s\" %c", int(deg), int(minutes), strconv.FormatFloat(seconds, 'f', -1, 64), hemisphereFor(v, axis))
}

// splitMinutes splits a non-negative magnitude into whole degrees and minutes
// rounded to 1/scale, carrying into degrees when the minutes round up to 60.
func splitMinutes(abs, scale float64) (int, float64) {
	deg := math.Floor(abs)
	minutes := math.Round((abs-deg)*60*scale) / scale
	if minutes >= 60 {
		deg++
		minutes = 0
	}
	return int(deg), minutes
}

func hemisphereFor(v float64, axis Axis) byte {
	pos, neg := axis.hemispheres()
	if v < 0 {
		return neg
	}
	return pos
}
