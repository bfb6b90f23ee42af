// Package dashboard wires the crime table, boundaries, and view builders
// into the figures the six tabs display. A Catalog is built once at startup
// and is read-only afterwards: every interactive update recomputes from the
// immutable base records, so handlers share it without locking.
package dashboard

import (
	"fmt"

	"github.com/Ndanashe-Hevs/London-crime-analysis-dash/dataset"
	"github.com/Ndanashe-Hevs/London-crime-analysis-dash/engine"
	"github.com/Ndanashe-Hevs/London-crime-analysis-dash/geo"
	"github.com/Ndanashe-Hevs/London-crime-analysis-dash/view"
)

// AllBoroughs is the season-tab selector value meaning "no borough filter".
const AllBoroughs = "All"

// Catalog holds the base tables and the aggregates precomputed from them.
type Catalog struct {
	records    []dataset.CrimeRecord
	boundaries []geo.Boundary

	boroughAgg []engine.AggRow // per borough: sum count, mean rate
	yearlyAgg  []engine.AggRow // per (year, crime type): sum count, mean rate

	boroughs   []string
	crimeTypes []string

	defaultMap *view.ChoroplethConfig
}

var (
	countAndRate = []engine.Reduction{
		{Measure: engine.MeasureCrimeCount, Op: engine.Sum},
		{Measure: engine.MeasureCrimeRate, Op: engine.Mean},
	}
	boroughLevel = []engine.Reduction{
		{Measure: engine.MeasurePopulation, Op: engine.Mean},
		{Measure: engine.MeasureCrimeCount, Op: engine.Sum},
		{Measure: engine.MeasureCrimeRate, Op: engine.Mean},
	}
)

// New builds the catalog: grouped aggregates, cached dropdown values, and
// the default (unfiltered) map figure.
func New(records []dataset.CrimeRecord, boundaries []geo.Boundary) *Catalog {
	c := &Catalog{
		records:    records,
		boundaries: boundaries,
		boroughAgg: engine.Aggregate(records, []engine.Dimension{engine.DimBorough}, countAndRate),
		yearlyAgg:  engine.Aggregate(records, []engine.Dimension{engine.DimYear, engine.DimMajorCrime}, countAndRate),
		boroughs:   engine.DistinctValues(records, engine.DimBorough),
		crimeTypes: engine.DistinctValues(records, engine.DimMajorCrime),
	}

	level := engine.Aggregate(records, []engine.Dimension{engine.DimBorough}, boroughLevel)
	regions := geo.Merge(boundaries, level)
	c.defaultMap = view.Choropleth("Crime Rates Across London Boroughs", regions)

	return c
}

// Options describes the dropdown controls and their initial selections.
type Options struct {
	SeasonBoroughs     []string `json:"seasonBoroughs"` // "All" + boroughs
	Boroughs           []string `json:"boroughs"`
	CrimeTypes         []string `json:"crimeTypes"`
	SeasonBorough      string   `json:"seasonBorough"`      // initial season-tab value
	CrimeType          string   `json:"crimeType"`          // initial single-select value
	ComparisonBoroughs []string `json:"comparisonBoroughs"` // initial multi-select value
}

// Options returns the control option lists, derived once at startup.
func (c *Catalog) Options() Options {
	opts := Options{
		SeasonBoroughs: append([]string{AllBoroughs}, c.boroughs...),
		Boroughs:       c.boroughs,
		CrimeTypes:     c.crimeTypes,
		SeasonBorough:  AllBoroughs,
	}
	if len(c.crimeTypes) > 0 {
		opts.CrimeType = c.crimeTypes[0]
	}
	if len(c.boroughs) > 3 {
		opts.ComparisonBoroughs = c.boroughs[:3]
	} else {
		opts.ComparisonBoroughs = c.boroughs
	}
	return opts
}

// BoroughBarChart is the static borough-tab bar chart: crime counts per
// borough, bars shaded by mean crime rate.
func (c *Catalog) BoroughBarChart() *view.ChartConfig {
	return view.BarFromRows(
		"Crime Counts and Rates by Borough",
		"Borough", "Crime Count",
		c.boroughAgg, engine.DimBorough,
		engine.MeasureCrimeCount, engine.MeasureCrimeRate,
	)
}

// BoroughPieChart is the static borough-tab pie chart of crime distribution.
func (c *Catalog) BoroughPieChart() *view.ChartConfig {
	return view.PieFromRows(
		"Crime Distribution by Borough",
		c.boroughAgg, engine.DimBorough, engine.MeasureCrimeCount,
	)
}

// YearlyTrendsChart is the static line chart: crime rate per year, one
// series per major crime type.
func (c *Catalog) YearlyTrendsChart() *view.ChartConfig {
	return view.LineFromRows(
		"Yearly Trends of Crime Rates by Major Crime Type",
		"Year", "Crime Rate per 1,000",
		c.yearlyAgg, engine.DimYear, engine.DimMajorCrime, engine.MeasureCrimeRate,
	)
}

// SeasonalChart answers the season-tab selector: crime counts per season,
// either across all boroughs or for one.
func (c *Catalog) SeasonalChart(borough string) *view.ChartConfig {
	records := c.records
	title := "Seasonal Crime Patterns Across All Boroughs"
	if borough != "" && borough != AllBoroughs {
		records = engine.Filter(records, engine.BoroughIs(borough))
		title = fmt.Sprintf("Seasonal Crime Patterns in %s", borough)
	}
	rows := engine.Aggregate(records, []engine.Dimension{engine.DimSeason}, countAndRate)
	return view.BarFromRows(title, "Season", "Crime Count", rows, engine.DimSeason, engine.MeasureCrimeCount, "")
}

// ComparisonChart answers the comparison-tab selectors: summed crime counts
// of one crime type across the chosen boroughs.
func (c *Catalog) ComparisonChart(crimeType string, boroughs []string) *view.ChartConfig {
	records := engine.Filter(c.records,
		engine.CrimeTypeIs(crimeType),
		engine.BoroughIn(boroughs),
	)
	rows := engine.Aggregate(records, []engine.Dimension{engine.DimBorough}, []engine.Reduction{
		{Measure: engine.MeasureCrimeCount, Op: engine.Sum},
	})
	title := fmt.Sprintf("Crime Count for '%s' Across Selected Boroughs", crimeType)
	return view.BarFromRows(title, "Borough", "Crime Count", rows, engine.DimBorough, engine.MeasureCrimeCount, "")
}

// StatsBundle is the stats-tab payload: summary lines plus the data table.
type StatsBundle struct {
	Statistics *view.Statistics `json:"statistics"`
	Table      *view.TableData  `json:"table"`
}

// StatsAndTable answers the stats-tab selector for one crime type.
func (c *Catalog) StatsAndTable(crimeType string, page int) StatsBundle {
	records := engine.Filter(c.records, engine.CrimeTypeIs(crimeType))
	rows := engine.Aggregate(records, []engine.Dimension{engine.DimBorough}, countAndRate)
	return StatsBundle{
		Statistics: view.StatisticsFrom(engine.Summarize(records)),
		Table:      view.BoroughTable("Crime Data Table", rows, page),
	}
}

// MapFigure answers the map-tab selector. An empty crime type returns the
// precomputed unfiltered map.
func (c *Catalog) MapFigure(crimeType string) *view.ChoroplethConfig {
	if crimeType == "" {
		return c.defaultMap
	}
	records := engine.Filter(c.records, engine.CrimeTypeIs(crimeType))
	level := engine.Aggregate(records, []engine.Dimension{engine.DimBorough}, boroughLevel)
	regions := geo.Merge(c.boundaries, level)
	title := fmt.Sprintf("Crime Rates Across London Boroughs: %s", crimeType)
	return view.Choropleth(title, regions)
}
