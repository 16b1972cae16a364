package domain

import (
	"math"
	"strconv"
)

// ddmCapture holds the components of a degrees-decimal-minutes match.
type ddmCapture struct {
	degrees    int
	minutes    float64
	hemisphere byte // 0 when absent
}

// dmsCapture holds the components of a degrees-minutes-seconds match.
type dmsCapture struct {
	degrees    int
	minutes    int
	seconds    float64
	hemisphere byte
}

// Normalize converts text written in notation n to signed decimal degrees on
// the given axis. Every failure is returned as a *ParseError; Normalize never
// panics and has no side effects, so it is safe to call on every keystroke.
func Normalize(text string, n Notation, axis Axis) (float64, error) {
	s := canonicalize(text)
	if s == "" {
		return 0, parseErr(ReasonEmpty, n, axis)
	}

	switch n {
	case DecimalDegrees:
		return normalizeDecimal(s, axis)
	case DegreesDecimalMinutes:
		c, ok := matchDDM(s)
		if !ok {
			return 0, parseErr(ReasonNoMatch, n, axis)
		}
		if c.degrees > 180 || c.minutes >= 60 {
			return 0, parseErr(ReasonNoMatch, n, axis)
		}
		return applyHemisphere(float64(c.degrees)+c.minutes/60, c.hemisphere, n, axis)
	case DegreesMinutesSeconds:
		c, ok := matchDMS(s)
		if !ok {
			return 0, parseErr(ReasonNoMatch, n, axis)
		}
		if c.degrees > 180 || c.minutes >= 60 || c.seconds >= 60 {
			return 0, parseErr(ReasonNoMatch, n, axis)
		}
		v := float64(c.degrees) + float64(c.minutes)/60 + c.seconds/3600
		return applyHemisphere(v, c.hemisphere, n, axis)
	case GoogleMapsPair:
		p, err := pairFromCanonical(s)
		if err != nil {
			return 0, parseErr(ReasonOf(err), n, axis)
		}
		if axis == AxisLongitude {
			return p.Lng, nil
		}
		return p.Lat, nil
	default:
		// UTM, MGRS and anything outside the catalog are recognized at most.
		return 0, parseErr(ReasonUnsupported, n, axis)
	}
}

func normalizeDecimal(s string, axis Axis) (float64, error) {
	if !ddPattern.MatchString(s) {
		return 0, parseErr(ReasonNoMatch, DecimalDegrees, axis)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, parseErr(ReasonNoMatch, DecimalDegrees, axis)
	}
	if math.Abs(v) > axis.Bound() {
		return 0, parseErr(ReasonOutOfRange, DecimalDegrees, axis)
	}
	return v, nil
}

// applyHemisphere signs a non-negative magnitude exactly once and checks the
// axis bound. A hemisphere letter belonging to the other axis is a NoMatch.
func applyHemisphere(magnitude float64, hemisphere byte, n Notation, axis Axis) (float64, error) {
	pos, neg := axis.hemispheres()
	v := magnitude
	switch hemisphere {
	case 0, pos:
	case neg:
		v = -magnitude
	default:
		return 0, parseErr(ReasonNoMatch, n, axis)
	}
	if math.Abs(v) > axis.Bound() {
		return 0, parseErr(ReasonOutOfRange, n, axis)
	}
	return v, nil
}

func matchDDM(s string) (ddmCapture, bool) {
	m := ddmPattern.FindStringSubmatch(s)
	if m == nil {
		return ddmCapture{}, false
	}
	deg, err := strconv.Atoi(m[1])
	if err != nil {
		return ddmCapture{}, false
	}
	minutes, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return ddmCapture{}, false
	}
	return ddmCapture{degrees: deg, minutes: minutes, hemisphere: hemisphereByte(m[3])}, true
}

func matchDMS(s string) (dmsCapture, bool) {
	m := dmsPattern.FindStringSubmatch(s)
	if m == nil {
		return dmsCapture{}, false
	}
	deg, err := strconv.Atoi(m[1])
	if err != nil {
		return dmsCapture{}, false
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return dmsCapture{}, false
	}
	seconds, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return dmsCapture{}, false
	}
	return dmsCapture{degrees: deg, minutes: minutes, seconds: seconds, hemisphere: hemisphereByte(m[4])}, true
}

func hemisphereByte(s string) byte {
	if s == "" {
		return 0
	}
	return s[0]
}
