package domain

import (
	"errors"
	"fmt"
)

// Reason classifies why a coordinate could not be normalized.
type Reason string

const (
	ReasonEmpty       Reason = "empty"
	ReasonNoMatch     Reason = "no_match"
	ReasonOutOfRange  Reason = "out_of_range"
	ReasonUnsupported Reason = "unsupported"
)

// Sentinel errors for use with errors.Is. Every *ParseError unwraps to one of these.
var (
	ErrEmpty       = errors.New("empty input")
	ErrNoMatch     = errors.New("input does not match notation")
	ErrOutOfRange  = errors.New("value out of range")
	ErrUnsupported = errors.New("notation conversion not supported")
)

var reasonSentinels = map[Reason]error{
	ReasonEmpty:       ErrEmpty,
	ReasonNoMatch:     ErrNoMatch,
	ReasonOutOfRange:  ErrOutOfRange,
	ReasonUnsupported: ErrUnsupported,
}

// ParseError describes a failed normalization. It is a value, never a panic:
// the failure is a property of the input and is not retryable.
type ParseError struct {
	Reason   Reason
	Notation Notation
	Axis     Axis
}

func (e *ParseError) Error() string {
	switch e.Reason {
	case ReasonEmpty:
		return fmt.Sprintf("%s: empty input", e.Axis)
	case ReasonOutOfRange:
		return fmt.Sprintf("%s: value outside ±%g", e.Axis, e.Axis.Bound())
	case ReasonUnsupported:
		return fmt.Sprintf("%s: %s conversion is not supported", e.Axis, e.Notation.Label())
	default:
		return fmt.Sprintf("%s: invalid %s format", e.Axis, e.Notation.Label())
	}
}

// Unwrap returns the sentinel matching the reason.
func (e *ParseError) Unwrap() error {
	return reasonSentinels[e.Reason]
}

// ReasonOf extracts the Reason from an error returned by Normalize.
// It returns "" for nil and for errors that did not come from this package.
func ReasonOf(err error) Reason {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Reason
	}
	return ""
}

func parseErr(reason Reason, n Notation, axis Axis) error {
	return &ParseError{Reason: reason, Notation: n, Axis: axis}
}
