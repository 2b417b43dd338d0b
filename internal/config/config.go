// Package config loads routeplanner settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config aggregates application configuration values.
type Config struct {
	Graph   GraphConfig
	Logging LoggingConfig
	Route   RouteConfig
}

// GraphConfig describes connectivity to the graph database holding road
// networks. An empty URI means no database is configured.
type GraphConfig struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

// RouteConfig holds search defaults.
type RouteConfig struct {
	Algorithm string // dijkstra|astar
}

const (
	defaultLoggingLevel     = "info"
	defaultLoggingFormat    = "text"
	defaultGraphMaxSessions = 10
	defaultAlgorithm        = "astar"
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Logging: LoggingConfig{
			Level:         valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
		},
		Graph: GraphConfig{
			URI:      os.Getenv("GRAPH_URI"),
			Database: valueOrDefault("GRAPH_DATABASE", ""),
			Username: os.Getenv("GRAPH_USERNAME"),
			Password: os.Getenv("GRAPH_PASSWORD"),
		},
		Route: RouteConfig{
			Algorithm: strings.ToLower(valueOrDefault("ROUTE_ALGORITHM", defaultAlgorithm)),
		},
	}

	maxConn, err := parsePositiveInt("GRAPH_MAX_CONNECTIONS", defaultGraphMaxSessions)
	if err != nil {
		return Config{}, err
	}
	cfg.Graph.MaxConnections = maxConn

	switch cfg.Route.Algorithm {
	case "dijkstra", "astar":
	default:
		return Config{}, fmt.Errorf("invalid ROUTE_ALGORITHM %q: want dijkstra or astar", cfg.Route.Algorithm)
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parsePositiveInt(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if n <= 0 {
			return 0, fmt.Errorf("%s must be positive, got %d", key, n)
		}
		return n, nil
	}
	return fallback, nil
}
