package dataset

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps database access for deployments that keep the crime table in
// Postgres instead of a CSV file.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a Store backed by a pgx pool.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

const crimeRecordsSQL = `
    SELECT borough, year, month, major_crime, crime_count, crime_rate_per_1000, population
    FROM crime_records
    ORDER BY borough, year, month
`

// LoadRecords returns all crime observations. The season column is derived
// here, exactly as for the CSV path; an out-of-range month fails the load.
func (s *Store) LoadRecords(ctx context.Context) ([]CrimeRecord, error) {
	rows, err := s.pool.Query(ctx, crimeRecordsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]CrimeRecord, 0)
	for rows.Next() {
		var rec CrimeRecord
		if err := rows.Scan(
			&rec.Borough,
			&rec.Year,
			&rec.Month,
			&rec.MajorCrime,
			&rec.CrimeCount,
			&rec.CrimeRatePer1000,
			&rec.Population,
		); err != nil {
			return nil, err
		}
		if rec.Season, err = SeasonForMonth(rec.Month); err != nil {
			return nil, fmt.Errorf("record for %s %d-%02d: %w", rec.Borough, rec.Year, rec.Month, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
