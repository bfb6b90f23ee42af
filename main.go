package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Ndanashe-Hevs/London-crime-analysis-dash/config"
	"github.com/Ndanashe-Hevs/London-crime-analysis-dash/dashboard"
	"github.com/Ndanashe-Hevs/London-crime-analysis-dash/dataset"
	"github.com/Ndanashe-Hevs/London-crime-analysis-dash/geo"
	httpserver "github.com/Ndanashe-Hevs/London-crime-analysis-dash/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	records, err := loadRecords(ctx, cfg)
	if err != nil {
		log.Fatalf("crime data error: %v", err)
	}
	log.Printf("loaded %d crime records", len(records))

	boundaries, err := geo.LoadBoundaries(cfg.GeoJSONPath)
	if err != nil {
		log.Fatalf("boundary data error: %v", err)
	}
	log.Printf("loaded %d borough boundaries", len(boundaries))

	catalog := dashboard.New(records, boundaries)

	srv := httpserver.New(cfg, catalog)
	log.Printf("dashboard listening on http://%s/", cfg.ListenAddr())

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// loadRecords reads the crime table from Postgres when DATABASE_URL is set,
// otherwise from the CSV file.
func loadRecords(ctx context.Context, cfg config.Config) ([]dataset.CrimeRecord, error) {
	if cfg.DatabaseURL == "" {
		return dataset.LoadCSV(cfg.CrimeCSVPath)
	}

	store, err := dataset.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.LoadRecords(ctx)
}
