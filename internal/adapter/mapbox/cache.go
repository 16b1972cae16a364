package mapbox

import (
	"context"
	"fmt"
	"time"

	"github.com/couchcryptid/cave-coords-service/internal/domain"
	"github.com/couchcryptid/cave-coords-service/internal/observability"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cacheTTL bounds how long a place name is reused. Mapbox data changes
// slowly, but entrances resubmitted after a long gap should see fresh names.
const cacheTTL = 24 * time.Hour

// CachedGeocoder wraps a Geocoder with an in-memory expiring LRU cache.
type CachedGeocoder struct {
	inner   domain.Geocoder
	cache   *expirable.LRU[string, domain.GeocodingResult]
	metrics *observability.Metrics
}

// NewCachedGeocoder creates a cache decorator around a geocoder.
func NewCachedGeocoder(inner domain.Geocoder, maxEntries int, metrics *observability.Metrics) *CachedGeocoder {
	return &CachedGeocoder{
		inner:   inner,
		cache:   expirable.NewLRU[string, domain.GeocodingResult](maxEntries, nil, cacheTTL),
		metrics: metrics,
	}
}

func (c *CachedGeocoder) ReverseGeocode(ctx context.Context, lat, lon float64) (domain.GeocodingResult, error) {
	key := cacheKey(lat, lon)
	if result, ok := c.cache.Get(key); ok {
		c.metrics.GeocodeCache.WithLabelValues("hit").Inc()
		return result, nil
	}
	c.metrics.GeocodeCache.WithLabelValues("miss").Inc()

	result, err := c.inner.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		return result, err
	}
	// Only cache non-empty results so transient "not found" responses can be retried.
	if result.FormattedAddress != "" {
		c.cache.Add(key, result)
	}
	return result, nil
}

// cacheKey rounds to six decimal places (about 11 cm), matching the
// precision sent to Mapbox.
func cacheKey(lat, lon float64) string {
	return fmt.Sprintf("%.6f,%.6f", lat, lon)
}
