package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/cave-coords-service/internal/domain"
	"github.com/couchcryptid/cave-coords-service/internal/observability"
)

// EntranceTransformer implements Transformer: it decodes a submission,
// resolves its coordinates, optionally reverse-geocodes it, and serializes
// the result.
type EntranceTransformer struct {
	geocoder domain.Geocoder
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// NewTransformer creates an EntranceTransformer. Pass a nil geocoder to
// disable geocoding enrichment.
func NewTransformer(geocoder domain.Geocoder, metrics *observability.Metrics, logger *slog.Logger) *EntranceTransformer {
	return &EntranceTransformer{
		geocoder: geocoder,
		metrics:  metrics,
		logger:   logger,
	}
}

func (t *EntranceTransformer) Transform(ctx context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	entrance, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	entrance = domain.EnrichEntrance(entrance)
	entrance = domain.EnrichWithGeocoding(ctx, entrance, t.geocoder, t.logger)
	t.observe(entrance)

	if entrance.Status == domain.StatusInvalid {
		t.logger.Debug("entrance has invalid coordinates",
			"id", entrance.ID,
			"cave_id", entrance.CaveID,
			"latitude_reason", entrance.Latitude.Reason,
			"longitude_reason", entrance.Longitude.Reason,
		)
	}

	return domain.SerializeEntrance(entrance)
}

func (t *EntranceTransformer) observe(e domain.Entrance) {
	t.metrics.Entrances.WithLabelValues(e.Status).Inc()
	for _, axis := range []domain.AxisResult{e.Latitude, e.Longitude} {
		t.metrics.ObserveParse("pipeline", axis.Notation.Key(), string(axis.Reason))
	}
}
