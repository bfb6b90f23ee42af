package geo

import (
	"log"

	geojson "github.com/paulmach/go.geojson"

	"github.com/Ndanashe-Hevs/London-crime-analysis-dash/engine"
)

// Region is one joined boundary + borough aggregate row, ready for the map.
type Region struct {
	Name        string  `json:"name"`         // normalized
	DisplayName string  `json:"display_name"` // title-cased label
	CentroidLat float64 `json:"centroid_lat"`
	CentroidLon float64 `json:"centroid_lon"`
	CrimeCount  float64 `json:"crime_count"`
	CrimeRate   float64 `json:"crime_rate_per_1000"`
	Population  float64 `json:"population"`

	// Geometry is shared with the loaded boundary and must not be mutated.
	Geometry *geojson.Geometry `json:"-"`
}

// Merge inner-joins borough aggregates with boundaries on the normalized
// name. Boundaries sharing a normalized name all match the same aggregate
// row; rows without a match on either side are dropped and logged.
func Merge(boundaries []Boundary, rows []engine.AggRow) []Region {
	byName := make(map[string]engine.AggRow, len(rows))
	matched := make(map[string]bool, len(rows))
	for _, row := range rows {
		byName[NormalizeName(row.Key(engine.DimBorough))] = row
	}

	regions := make([]Region, 0, len(boundaries))
	for _, boundary := range boundaries {
		name := NormalizeName(boundary.Name)
		row, ok := byName[name]
		if !ok {
			log.Printf("geo merge: boundary %q has no crime data, dropped", boundary.Name)
			continue
		}
		matched[name] = true

		lon, lat, err := boundary.Centroid()
		if err != nil {
			log.Printf("geo merge: centroid for %q: %v", boundary.Name, err)
		}

		regions = append(regions, Region{
			Name:        name,
			DisplayName: TitleCase(name),
			CentroidLat: lat,
			CentroidLon: lon,
			CrimeCount:  row.Value(engine.MeasureCrimeCount),
			CrimeRate:   row.Value(engine.MeasureCrimeRate),
			Population:  row.Value(engine.MeasurePopulation),
			Geometry:    boundary.Feature.Geometry,
		})
	}

	for _, row := range rows {
		if name := NormalizeName(row.Key(engine.DimBorough)); !matched[name] {
			log.Printf("geo merge: borough %q has no boundary, dropped", name)
		}
	}

	return regions
}
