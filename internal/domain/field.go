package domain

import "errors"

// Field is one axis input of a coordinate form: the raw text the surveyor
// typed and the notation currently selected for it.
type Field struct {
	Axis     Axis
	Notation Notation
	Raw      string
}

// FieldResult is what a field reports upward after a change.
type FieldResult struct {
	Notation Notation
	// Detected is true when Notation came from detection rather than the
	// previously selected notation.
	Detected bool
	// Value is nil when the field is cleared or invalid.
	Value *float64
	Err   error
}

// Cleared reports whether the field was emptied. A cleared field carries no
// validation message and propagates a nil value.
func (r FieldResult) Cleared() bool {
	return errors.Is(r.Err, ErrEmpty)
}

// Message returns the validation text to show next to the field, or "" when
// the value is valid or the field was cleared.
func (r FieldResult) Message() string {
	if r.Err == nil || r.Cleared() {
		return ""
	}
	if r.Detected {
		return "Invalid " + r.Notation.Label() + " format"
	}
	return "Please select correct format"
}

// Input applies a text change: a detected notation replaces the selected one,
// then the text is normalized with whichever notation is now in effect.
func (f *Field) Input(text string) FieldResult {
	f.Raw = text
	detected := false
	if n, ok := DetectNotation(text); ok {
		f.Notation = n
		detected = true
	}
	return f.evaluate(detected)
}

// SelectNotation applies an explicit notation choice and re-validates the
// current text against it.
func (f *Field) SelectNotation(n Notation) FieldResult {
	f.Notation = n
	return f.evaluate(false)
}

func (f *Field) evaluate(detected bool) FieldResult {
	v, err := Normalize(f.Raw, f.Notation, f.Axis)
	res := FieldResult{Notation: f.Notation, Detected: detected, Err: err}
	if err == nil {
		res.Value = &v
	}
	return res
}

// Paste handles clipboard content dropped into the target field. A valid
// lat,lng pair overwrites both fields and resets them to DecimalDegrees;
// anything else is treated as an ordinary change to the target field only.
func Paste(lat, lng *Field, target Axis, text string) (latRes, lngRes FieldResult) {
	if p, ok := ExtractPair(text); ok {
		lat.Raw, lat.Notation = FormatDecimal(p.Lat), DecimalDegrees
		lng.Raw, lng.Notation = FormatDecimal(p.Lng), DecimalDegrees
		latV, lngV := p.Lat, p.Lng
		return FieldResult{Notation: DecimalDegrees, Value: &latV},
			FieldResult{Notation: DecimalDegrees, Value: &lngV}
	}
	if target == AxisLongitude {
		return lat.evaluate(false), lng.Input(text)
	}
	return lat.Input(text), lng.evaluate(false)
}
