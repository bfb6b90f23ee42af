// Package engine computes grouped aggregates over the immutable crime table.
// Every "update" in the dashboard is a fresh pass over the base records;
// nothing is mutated in place.
package engine

import (
	"strconv"
	"strings"

	"github.com/Ndanashe-Hevs/London-crime-analysis-dash/dataset"
)

// Dimension names a grouping column of the crime table.
type Dimension string

const (
	DimBorough    Dimension = "borough"
	DimSeason     Dimension = "season"
	DimYear       Dimension = "year"
	DimMajorCrime Dimension = "major_crime"
)

// Measure names a numeric column of the crime table.
const (
	MeasureCrimeCount = "crime_count"
	MeasureCrimeRate  = "crime_rate_per_1000"
	MeasurePopulation = "population"
)

// Op is a reduction applied per group.
type Op int

const (
	Sum Op = iota
	Mean
)

// Reduction pairs a measure with the operation reducing it per group.
type Reduction struct {
	Measure string
	Op      Op
}

// AggRow is one output row of Aggregate: a distinct group-key tuple with its
// reduced measure values.
type AggRow struct {
	Keys   map[string]string  `json:"keys"`
	Values map[string]float64 `json:"values"`
	Count  int                `json:"count"`
}

// Key returns the group value for a dimension.
func (r AggRow) Key(d Dimension) string { return r.Keys[string(d)] }

// Value returns the reduced value for a measure.
func (r AggRow) Value(measure string) float64 { return r.Values[measure] }

// keySep joins tuple components into the internal group key.
const keySep = "\x1f"

// Aggregate groups records by the tuple of dimensions and reduces each
// listed measure per group. Output rows appear in first-encounter order of
// their key tuple, one row per distinct tuple. Empty input yields no rows.
func Aggregate(records []dataset.CrimeRecord, groupBy []Dimension, reductions []Reduction) []AggRow {
	if len(records) == 0 {
		return nil
	}

	grouped := make(map[string][]int)
	order := make([]string, 0)

	for i, rec := range records {
		parts := make([]string, len(groupBy))
		for j, dim := range groupBy {
			parts[j] = DimensionValue(rec, dim)
		}
		key := strings.Join(parts, keySep)
		if _, exists := grouped[key]; !exists {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], i)
	}

	rows := make([]AggRow, 0, len(order))
	for _, key := range order {
		indices := grouped[key]
		parts := strings.Split(key, keySep)

		row := AggRow{
			Keys:   make(map[string]string, len(groupBy)),
			Values: make(map[string]float64, len(reductions)),
			Count:  len(indices),
		}
		for j, dim := range groupBy {
			row.Keys[string(dim)] = parts[j]
		}
		for _, red := range reductions {
			row.Values[red.Measure] = reduce(records, indices, red)
		}
		rows = append(rows, row)
	}
	return rows
}

func reduce(records []dataset.CrimeRecord, indices []int, red Reduction) float64 {
	var total float64
	for _, i := range indices {
		total += MeasureValue(records[i], red.Measure)
	}
	if red.Op == Mean {
		return total / float64(len(indices))
	}
	return total
}

// DimensionValue extracts a grouping value from a record.
func DimensionValue(rec dataset.CrimeRecord, d Dimension) string {
	switch d {
	case DimBorough:
		return rec.Borough
	case DimSeason:
		return rec.Season
	case DimYear:
		return strconv.Itoa(rec.Year)
	case DimMajorCrime:
		return rec.MajorCrime
	}
	return ""
}

// MeasureValue extracts a numeric value from a record.
func MeasureValue(rec dataset.CrimeRecord, measure string) float64 {
	switch measure {
	case MeasureCrimeCount:
		return float64(rec.CrimeCount)
	case MeasureCrimeRate:
		return rec.CrimeRatePer1000
	case MeasurePopulation:
		return float64(rec.Population)
	}
	return 0
}

// DistinctValues returns the distinct values of a dimension in
// first-encounter order. Empty values are skipped.
func DistinctValues(records []dataset.CrimeRecord, d Dimension) []string {
	seen := make(map[string]bool)
	var result []string
	for _, rec := range records {
		val := DimensionValue(rec, d)
		if val != "" && !seen[val] {
			seen[val] = true
			result = append(result, val)
		}
	}
	return result
}
