package domain

import (
	"math"
	"strconv"
)

// Pair is a latitude/longitude pair in signed decimal degrees.
type Pair struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ExtractPair recognizes a combined "lat,lng" value, typically pasted from a
// map application, and validates both axes together. It returns false unless
// the text matches the pair grammar and both components are in range.
func ExtractPair(text string) (Pair, bool) {
	s := canonicalize(text)
	if s == "" {
		return Pair{}, false
	}
	p, err := pairFromCanonical(s)
	if err != nil {
		return Pair{}, false
	}
	return p, true
}

// pairFromCanonical parses a canonicalized pair. The first number is always
// the latitude and the second the longitude; nothing in the grammar enforces
// this, so it is a convention shared with the map application.
func pairFromCanonical(s string) (Pair, error) {
	m := pairPattern.FindStringSubmatch(s)
	if m == nil {
		return Pair{}, parseErr(ReasonNoMatch, GoogleMapsPair, AxisLatitude)
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Pair{}, parseErr(ReasonNoMatch, GoogleMapsPair, AxisLatitude)
	}
	lng, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Pair{}, parseErr(ReasonNoMatch, GoogleMapsPair, AxisLongitude)
	}
	if math.Abs(lat) > AxisLatitude.Bound() {
		return Pair{}, parseErr(ReasonOutOfRange, GoogleMapsPair, AxisLatitude)
	}
	if math.Abs(lng) > AxisLongitude.Bound() {
		return Pair{}, parseErr(ReasonOutOfRange, GoogleMapsPair, AxisLongitude)
	}
	return Pair{Lat: lat, Lng: lng}, nil
}
