package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ndanashe-Hevs/London-crime-analysis-dash/dataset"
	"github.com/Ndanashe-Hevs/London-crime-analysis-dash/geo"
)

func rec(borough string, year, month int, crime string, count int, rate float64, population int) dataset.CrimeRecord {
	season, err := dataset.SeasonForMonth(month)
	if err != nil {
		panic(err)
	}
	return dataset.CrimeRecord{
		Borough:          borough,
		Year:             year,
		Month:            month,
		MajorCrime:       crime,
		CrimeCount:       count,
		CrimeRatePer1000: rate,
		Population:       population,
		Season:           season,
	}
}

var fixtureGeoJSON = []byte(`{"type":"FeatureCollection","features":[
	{"type":"Feature","properties":{"name":"Camden"},"geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]}},
	{"type":"Feature","properties":{"name":"Lambeth"},"geometry":{"type":"Polygon","coordinates":[[[2,0],[3,0],[3,1],[2,1],[2,0]]]}}
]}`)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	boundaries, err := geo.ParseBoundaries(fixtureGeoJSON)
	require.NoError(t, err)

	records := []dataset.CrimeRecord{
		rec("Camden", 2021, 1, "Burglary", 10, 2.0, 210000),
		rec("Camden", 2021, 7, "Burglary", 20, 4.0, 210000),
		rec("Camden", 2022, 2, "Robbery", 5, 1.0, 210000),
		rec("Lambeth", 2021, 4, "Burglary", 8, 1.6, 320000),
		rec("Lambeth", 2022, 10, "Robbery", 12, 2.4, 320000),
		rec("Hackney", 2021, 6, "Theft", 4, 0.8, 280000),
		rec("Islington", 2022, 11, "Theft", 6, 1.2, 240000),
	}
	return New(records, boundaries)
}

func TestOptions(t *testing.T) {
	opts := testCatalog(t).Options()

	assert.Equal(t, []string{"All", "Camden", "Lambeth", "Hackney", "Islington"}, opts.SeasonBoroughs)
	assert.Equal(t, "All", opts.SeasonBorough)
	assert.Equal(t, []string{"Burglary", "Robbery", "Theft"}, opts.CrimeTypes)
	assert.Equal(t, "Burglary", opts.CrimeType, "first crime type pre-selected")
	assert.Equal(t, []string{"Camden", "Lambeth", "Hackney"}, opts.ComparisonBoroughs, "first three boroughs pre-selected")
}

func TestBoroughBarChart(t *testing.T) {
	cfg := testCatalog(t).BoroughBarChart()

	require.Len(t, cfg.Series, 1)
	points := cfg.Series[0].Data
	require.Len(t, points, 4, "one bar per borough")
	assert.Equal(t, "Camden", points[0].Label)
	assert.Equal(t, 35.0, points[0].Value, "summed crime count")
	require.Len(t, cfg.ColorValues, 4)
	assert.InDelta(t, (2.0+4.0+1.0)/3, cfg.ColorValues[0], 0.01, "bars shaded by mean rate")
}

func TestSeasonalChartAllBoroughs(t *testing.T) {
	cfg := testCatalog(t).SeasonalChart(AllBoroughs)

	assert.Equal(t, "Seasonal Crime Patterns Across All Boroughs", cfg.Title)
	require.Len(t, cfg.Series, 1)

	bySeason := make(map[string]float64)
	for _, p := range cfg.Series[0].Data {
		bySeason[p.Label] = p.Value
	}
	assert.Equal(t, 15.0, bySeason[dataset.SeasonWinter])
	assert.Equal(t, 8.0, bySeason[dataset.SeasonSpring])
	assert.Equal(t, 24.0, bySeason[dataset.SeasonSummer])
	assert.Equal(t, 18.0, bySeason[dataset.SeasonAutumn])
}

func TestSeasonalChartSingleBorough(t *testing.T) {
	cfg := testCatalog(t).SeasonalChart("Camden")

	assert.Equal(t, "Seasonal Crime Patterns in Camden", cfg.Title)
	bySeason := make(map[string]float64)
	for _, p := range cfg.Series[0].Data {
		bySeason[p.Label] = p.Value
	}
	assert.Equal(t, map[string]float64{
		dataset.SeasonWinter: 15.0,
		dataset.SeasonSummer: 20.0,
	}, bySeason)
}

func TestComparisonChart(t *testing.T) {
	cfg := testCatalog(t).ComparisonChart("Burglary", []string{"Camden", "Lambeth"})

	assert.Equal(t, "Crime Count for 'Burglary' Across Selected Boroughs", cfg.Title)
	require.Len(t, cfg.Series, 1)
	require.Len(t, cfg.Series[0].Data, 2)
	assert.Equal(t, 30.0, cfg.Series[0].Data[0].Value)
	assert.Equal(t, 8.0, cfg.Series[0].Data[1].Value)
}

func TestComparisonChartNoMatches(t *testing.T) {
	cfg := testCatalog(t).ComparisonChart("Arson", []string{"Camden"})
	require.Len(t, cfg.Series, 1)
	assert.Empty(t, cfg.Series[0].Data, "empty filter result renders an empty chart")
}

func TestStatsAndTable(t *testing.T) {
	bundle := testCatalog(t).StatsAndTable("Burglary", 1)

	assert.Equal(t, 38, bundle.Statistics.TotalCrimes)
	assert.Equal(t, "Camden", bundle.Statistics.MostAffectedBorough)
	assert.Equal(t, 3.0, bundle.Statistics.HighestCrimeRate)

	require.Len(t, bundle.Table.Rows, 2)
	assert.Equal(t, []string{"Camden", "30", "3.00"}, bundle.Table.Rows[0])
	assert.Equal(t, []string{"Lambeth", "8", "1.60"}, bundle.Table.Rows[1])
	assert.Equal(t, 1, bundle.Table.Page)
}

func TestMapFigureDefault(t *testing.T) {
	catalog := testCatalog(t)
	cfg := catalog.MapFigure("")

	// Hackney and Islington have no boundary; the inner join keeps two.
	assert.Equal(t, []string{"camden", "lambeth"}, cfg.Locations)
	require.Len(t, cfg.Values, 2)
	assert.InDelta(t, (2.0+4.0+1.0)/3, cfg.Values[0], 0.01)

	assert.Same(t, cfg, catalog.MapFigure(""), "unfiltered map is precomputed once")
}

func TestMapFigureFiltered(t *testing.T) {
	cfg := testCatalog(t).MapFigure("Robbery")

	assert.Equal(t, "Crime Rates Across London Boroughs: Robbery", cfg.Title)
	assert.Equal(t, []string{"camden", "lambeth"}, cfg.Locations)
	assert.Equal(t, []float64{1.0, 2.4}, cfg.Values)

	require.Len(t, cfg.Labels, 2)
	assert.Equal(t, "Camden", cfg.Labels[0].Text)
	assert.InDelta(t, 0.5, cfg.Labels[0].Lon, 1e-9)
	assert.InDelta(t, 0.5, cfg.Labels[0].Lat, 1e-9)
}
