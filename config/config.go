package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds environment-driven settings for the dashboard server.
type Config struct {
	Host         string
	Port         int
	CrimeCSVPath string
	GeoJSONPath  string

	// DatabaseURL is optional. When set, crime records are loaded from the
	// crime_records table instead of the CSV file.
	DatabaseURL string
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Config{
		Host:         "127.0.0.1",
		Port:         8050,
		CrimeCSVPath: "data/updated_crime_data_with_rate.csv",
		GeoJSONPath:  "data/london-boroughs.geojson",
	}

	if host := os.Getenv("HOST"); host != "" {
		cfg.Host = host
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid PORT: %s", portStr)
		}
	}

	if path := os.Getenv("CRIME_CSV_PATH"); path != "" {
		cfg.CrimeCSVPath = path
	}

	if path := os.Getenv("GEOJSON_PATH"); path != "" {
		cfg.GeoJSONPath = path
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	return cfg, nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
