package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Axis identifies whether a coordinate value is a latitude or a longitude.
type Axis int

const (
	AxisLatitude Axis = iota
	AxisLongitude
)

// Bound returns the largest magnitude a value on this axis may have.
func (a Axis) Bound() float64 {
	if a == AxisLongitude {
		return 180
	}
	return 90
}

// hemispheres returns the positive and negative hemisphere letters for the axis.
func (a Axis) hemispheres() (pos, neg byte) {
	if a == AxisLongitude {
		return 'E', 'W'
	}
	return 'N', 'S'
}

func (a Axis) String() string {
	switch a {
	case AxisLatitude:
		return "latitude"
	case AxisLongitude:
		return "longitude"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Axis) MarshalText() ([]byte, error) {
	if a != AxisLatitude && a != AxisLongitude {
		return nil, fmt.Errorf("unknown axis %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText accepts "latitude"/"lat" and "longitude"/"lng"/"lon".
func (a *Axis) UnmarshalText(b []byte) error {
	parsed, err := ParseAxis(string(b))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAxis converts a user-supplied axis name to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "latitude", "lat":
		return AxisLatitude, nil
	case "longitude", "lng", "lon":
		return AxisLongitude, nil
	default:
		return 0, fmt.Errorf("unknown axis %q", s)
	}
}

// Notation is a textual grammar a coordinate can be written in.
type Notation int

const (
	DecimalDegrees Notation = iota
	DegreesDecimalMinutes
	DegreesMinutesSeconds
	GoogleMapsPair
	UTM
	MGRS
)

var notationKeys = map[Notation]string{
	DecimalDegrees:        "dd",
	DegreesDecimalMinutes: "ddm",
	DegreesMinutesSeconds: "dms",
	GoogleMapsPair:        "google_maps",
	UTM:                   "utm",
	MGRS:                  "mgrs",
}

var notationLabels = map[Notation]string{
	DecimalDegrees:        "Decimal Degrees (DD)",
	DegreesDecimalMinutes: "Degrees Decimal Minutes (DDM)",
	DegreesMinutesSeconds: "Degrees Minutes Seconds (DMS)",
	GoogleMapsPair:        "Google Maps",
	UTM:                   "UTM",
	MGRS:                  "MGRS",
}

// Key returns the stable machine name used in JSON and on the command line.
func (n Notation) Key() string {
	if k, ok := notationKeys[n]; ok {
		return k
	}
	return fmt.Sprintf("notation(%d)", int(n))
}

func (n Notation) String() string { return n.Key() }

// Label returns the human-readable name shown in notation dropdowns.
func (n Notation) Label() string {
	if l, ok := notationLabels[n]; ok {
		return l
	}
	return n.Key()
}

// NotationLabel returns the display label for n.
func NotationLabel(n Notation) string { return n.Label() }

// Valid reports whether n is one of the catalog notations.
func (n Notation) Valid() bool {
	_, ok := notationKeys[n]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (n Notation) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, fmt.Errorf("unknown notation %d", int(n))
	}
	return []byte(n.Key()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Notation) UnmarshalText(b []byte) error {
	parsed, err := ParseNotation(string(b))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// ParseNotation converts a notation key (case-insensitive) to a Notation.
func ParseNotation(s string) (Notation, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, g := range catalog {
		if notationKeys[g.notation] == key {
			return g.notation, nil
		}
	}
	return 0, fmt.Errorf("unknown notation %q", s)
}

// grammar pairs a notation with the fully-anchored pattern that recognizes it.
// Patterns run against canonicalized input (see canonicalize).
type grammar struct {
	notation Notation
	pattern  *regexp.Regexp
}

var (
	// ddPattern matches a bare signed number, e.g. "-45.1234".
	ddPattern = regexp.MustCompile(`^[+-]?\d{1,3}(?:\.\d+)?$`)

	// ddmPattern matches degrees and decimal minutes, e.g. "45° 7.404' S".
	ddmPattern = regexp.MustCompile(`^(\d{1,3})(?:\s?°\s?|\s)(\d{1,2}(?:\.\d+)?)'?(?:\s?([NSEW]))?$`)

	// dmsPattern matches degrees, minutes and decimal seconds, e.g. `45° 7' 24.24" N`.
	dmsPattern = regexp.MustCompile(`^(\d{1,3})(?:\s?°\s?|\s)(\d{1,2})(?:'\s?|\s)(\d{1,2}(?:\.\d+)?)"?(?:\s?([NSEW]))?$`)

	// pairPattern matches a lat,lng pair as copied from Google Maps, e.g. "42.42067, 18.76825".
	pairPattern = regexp.MustCompile(`^([+-]?\d{1,3}\.\d{4,})\s?,?\s?([+-]?\d{1,3}\.\d{4,})$`)

	// utmPattern matches zone, latitude band, easting and northing, e.g. "33T 123456 5678901".
	utmPattern = regexp.MustCompile(`^\d{1,2}\s?[C-HJ-NP-X]\s\d{6}\s\d{7}$`)

	// mgrsPattern matches zone, band, 100km square and 5-digit easting/northing, e.g. "33T WN 12345 67890".
	mgrsPattern = regexp.MustCompile(`^\d{1,2}\s?[C-HJ-NP-X]\s?[A-HJ-NP-Z]{2}\s?\d{5}\s?\d{5}$`)
)

// catalog is ordered by detection priority; the first full match wins.
var catalog = []grammar{
	{notation: DecimalDegrees, pattern: ddPattern},
	{notation: DegreesDecimalMinutes, pattern: ddmPattern},
	{notation: DegreesMinutesSeconds, pattern: dmsPattern},
	{notation: GoogleMapsPair, pattern: pairPattern},
	{notation: UTM, pattern: utmPattern},
	{notation: MGRS, pattern: mgrsPattern},
}

// Notations returns every catalog notation in detection priority order.
func Notations() []Notation {
	out := make([]Notation, len(catalog))
	for i, g := range catalog {
		out[i] = g.notation
	}
	return out
}
