package domain

import (
	"context"
	"log/slog"
)

// EnrichWithGeocoding attaches place details to an entrance with valid
// coordinates. If geocoder is nil the entrance is returned unchanged; lookup
// failures are logged and recorded as GeoSource "failed".
func EnrichWithGeocoding(ctx context.Context, e Entrance, geocoder Geocoder, logger *slog.Logger) Entrance {
	if geocoder == nil {
		return e
	}
	if e.Geo == nil {
		e.GeoSource = "original"
		return e
	}

	result, err := geocoder.ReverseGeocode(ctx, e.Geo.Lat, e.Geo.Lon)
	if err != nil {
		logger.Warn("reverse geocoding failed",
			"entrance_id", e.ID,
			"cave_id", e.CaveID,
			"lat", e.Geo.Lat,
			"lon", e.Geo.Lon,
			"error", err,
		)
		e.GeoSource = "failed"
		return e
	}
	if result.FormattedAddress == "" {
		e.GeoSource = "original"
		return e
	}

	e.FormattedAddress = result.FormattedAddress
	e.PlaceName = result.PlaceName
	e.GeoConfidence = result.Confidence
	e.GeoSource = "reverse"
	return e
}
