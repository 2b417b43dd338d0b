package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"LOG_LEVEL", "LOG_FORMAT", "LOG_INCLUDE_CALLER",
		"GRAPH_URI", "GRAPH_DATABASE", "GRAPH_USERNAME", "GRAPH_PASSWORD", "GRAPH_MAX_CONNECTIONS",
		"ROUTE_ALGORITHM",
	} {
		t.Setenv(k, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.False(t, cfg.Logging.IncludeCaller)
	assert.Empty(t, cfg.Graph.URI)
	assert.Equal(t, 10, cfg.Graph.MaxConnections)
	assert.Equal(t, "astar", cfg.Route.Algorithm)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_INCLUDE_CALLER", "true")
	t.Setenv("GRAPH_URI", "bolt://localhost:7687")
	t.Setenv("GRAPH_DATABASE", "roads")
	t.Setenv("GRAPH_USERNAME", "neo4j")
	t.Setenv("GRAPH_PASSWORD", "secret")
	t.Setenv("GRAPH_MAX_CONNECTIONS", "4")
	t.Setenv("ROUTE_ALGORITHM", "Dijkstra")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.LoggingConfig{Level: "debug", Format: "json", IncludeCaller: true}, cfg.Logging)
	assert.Equal(t, config.GraphConfig{
		URI:            "bolt://localhost:7687",
		Database:       "roads",
		Username:       "neo4j",
		Password:       "secret",
		MaxConnections: 4,
	}, cfg.Graph)
	assert.Equal(t, "dijkstra", cfg.Route.Algorithm)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("ROUTE_ALGORITHM", "")
	t.Setenv("GRAPH_MAX_CONNECTIONS", "many")
	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("GRAPH_MAX_CONNECTIONS", "0")
	_, err = config.Load()
	assert.Error(t, err)

	t.Setenv("GRAPH_MAX_CONNECTIONS", "")
	t.Setenv("ROUTE_ALGORITHM", "bfs")
	_, err = config.Load()
	assert.ErrorContains(t, err, "ROUTE_ALGORITHM")
}
