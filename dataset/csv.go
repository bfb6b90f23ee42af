package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Expected CSV columns. Header matching is case-insensitive and tolerates
// both "Borough" and the dataset's plural "Boroughs".
const (
	colBorough    = "borough"
	colYear       = "year"
	colMonth      = "month"
	colMajorCrime = "majorcrime"
	colCrimeCount = "crimecount"
	colCrimeRate  = "crimerateper1000"
	colPopulation = "population"
)

// LoadCSV reads crime records from a CSV file. Any malformed row or header
// is fatal: the caller is expected to abort startup.
func LoadCSV(path string) ([]CrimeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open crime data: %w", err)
	}
	defer f.Close()

	records, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

// ParseCSV reads crime records from CSV content.
func ParseCSV(r io.Reader) ([]CrimeRecord, error) {
	reader := csv.NewReader(r)

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "boroughs" {
			key = colBorough
		}
		index[key] = i
	}
	for _, required := range []string{colBorough, colYear, colMonth, colMajorCrime, colCrimeCount, colCrimeRate, colPopulation} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var records []CrimeRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}

		rec, err := parseRow(row, index)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRow(row []string, index map[string]int) (CrimeRecord, error) {
	field := func(key string) string {
		i := index[key]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var rec CrimeRecord
	var err error

	rec.Borough = field(colBorough)
	rec.MajorCrime = field(colMajorCrime)

	if rec.Year, err = strconv.Atoi(field(colYear)); err != nil {
		return rec, fmt.Errorf("invalid year %q", field(colYear))
	}
	if rec.Month, err = strconv.Atoi(field(colMonth)); err != nil {
		return rec, fmt.Errorf("invalid month %q", field(colMonth))
	}
	if rec.CrimeCount, err = strconv.Atoi(field(colCrimeCount)); err != nil {
		return rec, fmt.Errorf("invalid crime count %q", field(colCrimeCount))
	}
	if rec.CrimeRatePer1000, err = strconv.ParseFloat(field(colCrimeRate), 64); err != nil {
		return rec, fmt.Errorf("invalid crime rate %q", field(colCrimeRate))
	}
	if rec.Population, err = strconv.Atoi(field(colPopulation)); err != nil {
		return rec, fmt.Errorf("invalid population %q", field(colPopulation))
	}

	if rec.Season, err = SeasonForMonth(rec.Month); err != nil {
		return rec, err
	}
	return rec, nil
}
