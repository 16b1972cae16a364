package domain

import (
	"context"
	"time"
)

// RawEntrance is the JSON the cave form submits for one entrance. Latitude and
// Longitude hold whatever the surveyor typed or pasted; the notation fields
// carry the dropdown selection at submit time and may be empty.
type RawEntrance struct {
	ID                string `json:"id,omitempty"`
	CaveID            string `json:"cave_id"`
	Name              string `json:"name,omitempty"`
	Latitude          string `json:"latitude"`
	Longitude         string `json:"longitude"`
	LatitudeNotation  string `json:"latitude_notation,omitempty"`
	LongitudeNotation string `json:"longitude_notation,omitempty"`
}

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// AxisResult records how one submitted axis value was interpreted. Before
// resolution Notation holds the notation selected in the form.
type AxisResult struct {
	Raw      string   `json:"raw"`
	Notation Notation `json:"notation"`
	Value    *float64 `json:"value,omitempty"`
	Reason   Reason   `json:"reason,omitempty"`
	Message  string   `json:"message,omitempty"`
}

// Entrance statuses.
const (
	StatusValid      = "valid"      // both axes normalized
	StatusIncomplete = "incomplete" // at least one axis empty, none invalid
	StatusInvalid    = "invalid"    // at least one axis failed validation
)

// Entrance is a cave entrance with its coordinates resolved.
type Entrance struct {
	ID        string     `json:"id"`
	CaveID    string     `json:"cave_id"`
	Name      string     `json:"name,omitempty"`
	Geo       *Geo       `json:"geo,omitempty"`
	Latitude  AxisResult `json:"latitude"`
	Longitude AxisResult `json:"longitude"`
	Status    string     `json:"status"`

	// Geocoding enrichment fields.
	FormattedAddress string  `json:"formatted_address,omitempty"`
	PlaceName        string  `json:"place_name,omitempty"`
	GeoConfidence    float64 `json:"geo_confidence,omitempty"`
	GeoSource        string  `json:"geo_source,omitempty"` // "reverse", "original", "failed"

	ReceivedAt  time.Time `json:"received_at"`
	ProcessedAt time.Time `json:"processed_at"`
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
