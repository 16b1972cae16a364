package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ParseRawEvent deserializes a RawEvent's value into an unresolved Entrance.
// Selected notations default to DecimalDegrees when the form sent none.
func ParseRawEvent(raw RawEvent) (Entrance, error) {
	var rec RawEntrance
	if err := json.Unmarshal(raw.Value, &rec); err != nil {
		return Entrance{}, fmt.Errorf("parse raw entrance: %w", err)
	}
	if strings.TrimSpace(rec.CaveID) == "" {
		return Entrance{}, errors.New("parse raw entrance: cave_id is required")
	}

	latSel, err := selectedNotation(rec.LatitudeNotation)
	if err != nil {
		return Entrance{}, fmt.Errorf("parse raw entrance: latitude_notation: %w", err)
	}
	lngSel, err := selectedNotation(rec.LongitudeNotation)
	if err != nil {
		return Entrance{}, fmt.Errorf("parse raw entrance: longitude_notation: %w", err)
	}

	id := rec.ID
	if id == "" {
		id = generateID(rec.CaveID, rec.Name, rec.Latitude, rec.Longitude)
	}

	return Entrance{
		ID:         id,
		CaveID:     rec.CaveID,
		Name:       rec.Name,
		Latitude:   AxisResult{Raw: rec.Latitude, Notation: latSel},
		Longitude:  AxisResult{Raw: rec.Longitude, Notation: lngSel},
		ReceivedAt: raw.Timestamp,
	}, nil
}

func selectedNotation(key string) (Notation, error) {
	if strings.TrimSpace(key) == "" {
		return DecimalDegrees, nil
	}
	return ParseNotation(key)
}

// generateID produces a deterministic ID from the entrance's submitted fields
// so replays of the same submission upsert rather than duplicate.
func generateID(caveID, name, lat, lng string) string {
	input := fmt.Sprintf("%s|%s|%s|%s", caveID, name, strings.TrimSpace(lat), strings.TrimSpace(lng))
	hash := sha256.Sum256([]byte(input))
	return "ent-" + hex.EncodeToString(hash[:8])
}

// EnrichEntrance resolves the entrance's coordinates and stamps the
// processing time.
func EnrichEntrance(e Entrance) Entrance {
	e = ResolveCoordinates(e)
	e.ProcessedAt = clock.Now()
	return e
}

// ResolveCoordinates interprets both submitted axis values the way the form
// does. A valid lat,lng pair in one field with the other field empty (or
// holding the same paste) fills both axes; otherwise each axis is detected and
// normalized on its own, falling back to its selected notation.
func ResolveCoordinates(e Entrance) Entrance {
	lat := Field{Axis: AxisLatitude, Notation: e.Latitude.Notation}
	lng := Field{Axis: AxisLongitude, Notation: e.Longitude.Notation}
	latRaw, lngRaw := e.Latitude.Raw, e.Longitude.Raw

	var latRes, lngRes FieldResult
	switch {
	case pastedPair(latRaw, lngRaw):
		latRes, lngRes = Paste(&lat, &lng, AxisLatitude, latRaw)
	case pastedPair(lngRaw, latRaw):
		latRes, lngRes = Paste(&lat, &lng, AxisLongitude, lngRaw)
	default:
		latRes = lat.Input(latRaw)
		lngRes = lng.Input(lngRaw)
	}

	e.Latitude = axisResult(lat.Raw, latRes)
	e.Longitude = axisResult(lng.Raw, lngRes)
	e.Status = entranceStatus(latRes, lngRes)
	e.Geo = nil
	if e.Status == StatusValid {
		e.Geo = &Geo{Lat: *latRes.Value, Lon: *lngRes.Value}
	}
	return e
}

func pastedPair(into, other string) bool {
	if _, ok := ExtractPair(into); !ok {
		return false
	}
	other = strings.TrimSpace(other)
	return other == "" || other == strings.TrimSpace(into)
}

func axisResult(raw string, res FieldResult) AxisResult {
	return AxisResult{
		Raw:      raw,
		Notation: res.Notation,
		Value:    res.Value,
		Reason:   ReasonOf(res.Err),
		Message:  res.Message(),
	}
}

func entranceStatus(results ...FieldResult) string {
	status := StatusValid
	for _, r := range results {
		switch {
		case r.Err == nil:
		case r.Cleared():
			if status == StatusValid {
				status = StatusIncomplete
			}
		default:
			return StatusInvalid
		}
	}
	return status
}

// SerializeEntrance marshals an Entrance into an OutputEvent keyed by its ID.
func SerializeEntrance(e Entrance) (OutputEvent, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize entrance: %w", err)
	}
	return OutputEvent{
		Key:   []byte(e.ID),
		Value: data,
		Headers: map[string]string{
			"status":       e.Status,
			"cave_id":      e.CaveID,
			"processed_at": e.ProcessedAt.Format(time.RFC3339),
		},
	}, nil
}
