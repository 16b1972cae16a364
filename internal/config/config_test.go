package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mapboxToken = "pk.test-token"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "raw-cave-entrances", cfg.KafkaSourceTopic)
	assert.Equal(t, "normalized-cave-entrances", cfg.KafkaSinkTopic)
	assert.Equal(t, "cave-coords", cfg.KafkaGroupID)
	assert.True(t, cfg.PipelineEnabled)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, 500*time.Millisecond, cfg.BatchFlushInterval)
	assert.False(t, cfg.MapboxEnabled, "geocoding stays off without a token")
	assert.Equal(t, 5*time.Second, cfg.MapboxTimeout)
	assert.Equal(t, 1000, cfg.MapboxCacheSize)
}

func TestLoad_Overrides(t *testing.T) {
	env := map[string]string{
		"KAFKA_BROKERS":        "kafka-a:9092,kafka-b:9092",
		"KAFKA_SOURCE_TOPIC":   "survey-submissions",
		"KAFKA_SINK_TOPIC":     "survey-entrances",
		"KAFKA_GROUP_ID":       "survey",
		"HTTP_ADDR":            "127.0.0.1:9000",
		"LOG_LEVEL":            "debug",
		"LOG_FORMAT":           "text",
		"SHUTDOWN_TIMEOUT":     "45s",
		"BATCH_SIZE":           "200",
		"BATCH_FLUSH_INTERVAL": "2s",
		"MAPBOX_TOKEN":         mapboxToken,
		"MAPBOX_TIMEOUT":       "750ms",
		"MAPBOX_CACHE_SIZE":    "64",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"kafka-a:9092", "kafka-b:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "survey-submissions", cfg.KafkaSourceTopic)
	assert.Equal(t, "survey-entrances", cfg.KafkaSinkTopic)
	assert.Equal(t, "survey", cfg.KafkaGroupID)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 45*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 200, cfg.BatchSize)
	assert.Equal(t, 2*time.Second, cfg.BatchFlushInterval)
	assert.True(t, cfg.MapboxEnabled)
	assert.Equal(t, mapboxToken, cfg.MapboxToken)
	assert.Equal(t, 750*time.Millisecond, cfg.MapboxTimeout)
	assert.Equal(t, 64, cfg.MapboxCacheSize)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"shutdown timeout syntax", map[string]string{"SHUTDOWN_TIMEOUT": "soon"}, "SHUTDOWN_TIMEOUT"},
		{"negative shutdown timeout", map[string]string{"SHUTDOWN_TIMEOUT": "-1s"}, "SHUTDOWN_TIMEOUT"},
		{"zero batch size", map[string]string{"BATCH_SIZE": "0"}, "BATCH_SIZE"},
		{"huge batch size", map[string]string{"BATCH_SIZE": "9999"}, "BATCH_SIZE"},
		{"flush interval syntax", map[string]string{"BATCH_FLUSH_INTERVAL": "often"}, "BATCH_FLUSH_INTERVAL"},
		{"mapbox timeout syntax", map[string]string{"MAPBOX_TIMEOUT": "bad"}, "MAPBOX_TIMEOUT"},
		{"mapbox timeout zero", map[string]string{"MAPBOX_TIMEOUT": "0s"}, "MAPBOX_TIMEOUT"},
		{"mapbox enabled without token", map[string]string{"MAPBOX_ENABLED": "true"}, "MAPBOX_TOKEN"},
		{"pipeline flag syntax", map[string]string{"PIPELINE_ENABLED": "sometimes"}, "PIPELINE_ENABLED"},
		{"no brokers", map[string]string{"KAFKA_BROKERS": " , "}, "KAFKA_BROKERS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_MapboxToggle(t *testing.T) {
	t.Setenv("MAPBOX_TOKEN", mapboxToken)

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.MapboxEnabled, "a token enables geocoding")

	t.Setenv("MAPBOX_ENABLED", "false")
	cfg, err = Load()
	require.NoError(t, err)
	assert.False(t, cfg.MapboxEnabled)
}

func TestLoad_IgnoresBadMapboxCacheSize(t *testing.T) {
	t.Setenv("MAPBOX_CACHE_SIZE", "-5")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.MapboxCacheSize)
}

func TestLoad_APIOnlySkipsKafkaChecks(t *testing.T) {
	t.Setenv("PIPELINE_ENABLED", "false")
	t.Setenv("KAFKA_BROKERS", " , ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.PipelineEnabled)
}
