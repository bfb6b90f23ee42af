// Package dataset loads the London crime observations into memory.
// Records are read once at startup and never mutated afterwards.
package dataset

import "fmt"

// Season labels derived from the observation month.
const (
	SeasonWinter = "Winter"
	SeasonSpring = "Spring"
	SeasonSummer = "Summer"
	SeasonAutumn = "Autumn"
)

// CrimeRecord is one (borough, month/year, crime type) observation.
type CrimeRecord struct {
	Borough          string  `json:"borough"`
	Year             int     `json:"year"`
	Month            int     `json:"month"`
	MajorCrime       string  `json:"major_crime"`
	CrimeCount       int     `json:"crime_count"`
	CrimeRatePer1000 float64 `json:"crime_rate_per_1000"`
	Population       int     `json:"population"`

	// Season is derived from Month at load time.
	Season string `json:"season"`
}

// SeasonForMonth maps a month number to its season label.
// Months outside 1-12 are a data error, not a silent Autumn.
func SeasonForMonth(month int) (string, error) {
	switch month {
	case 12, 1, 2:
		return SeasonWinter, nil
	case 3, 4, 5:
		return SeasonSpring, nil
	case 6, 7, 8:
		return SeasonSummer, nil
	case 9, 10, 11:
		return SeasonAutumn, nil
	}
	return "", fmt.Errorf("month out of range: %d", month)
}
