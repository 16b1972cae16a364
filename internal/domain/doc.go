// Package domain recognizes and normalizes the coordinate notations surveyors
// type into the cave entrance form.
//
// # Notations
//
// Catalog order is the detection priority; the first grammar that matches the
// whole input wins:
//
//	dd           45.1234, -17.5
//	ddm          45° 7.404' S, 45 7.404
//	dms          45° 7' 24.24" N, 45 7 24.24
//	google_maps  42.42067, 18.76825   (both numbers need 4+ decimals)
//	utm          33T 123456 5678901   (recognized, never converted)
//	mgrs         33T WN 12345 67890   (recognized, never converted)
//
// Input is canonicalized once before matching: marks are unified (º ˚ → °,
// ′ ’ ‘ ʹ ´ ` → ', ″ “ ” ʺ '' → "), the text is NFKC-folded, uppercased and
// whitespace runs collapse to a single space. Degrees and minutes must be
// separated by a degree mark or whitespace.
//
// # Values
//
// DDM and DMS components are parsed as non-negative numbers and validated as
// sub-ranges (degrees ≤ 180, minutes and seconds < 60) before composition; a
// component outside its sub-range is a no_match, never clamped. The sign is
// applied once, after composition, from the hemisphere letter (S or W is
// negative, none is positive). N/S are only accepted on latitude and E/W only
// on longitude. The composed value must lie within ±90 for latitude and ±180
// for longitude, otherwise the reason is out_of_range.
//
// # Form behavior
//
// [Field] and [Paste] implement what the entrance form does on each change:
// detection switches the field's notation, explicit selection re-validates,
// and a pasted lat,lng pair fills both fields in decimal degrees. An empty
// field is "cleared", which is not an error the user needs to see.
//
// Every function in this package except [EnrichEntrance] and
// [EnrichWithGeocoding] is pure and safe for concurrent use.
package domain
