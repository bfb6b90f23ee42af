// Package view builds render-ready chart, table, and map specifications
// from aggregate rows. Builders are pure functions and tolerate empty input:
// an empty aggregate produces an empty chart, never an error.
package view

import (
	"fmt"
	"math"
)

// Default color palette for chart series and categorical bars.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"` // "bar", "pie", "line"
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`

	// ColorValues, when set, color the single series continuously
	// (e.g. bars shaded by crime rate).
	ColorValues []float64 `json:"colorValues,omitempty"`
	ColorLabel  string    `json:"colorLabel,omitempty"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TableData defines how to render a paginated data table.
type TableData struct {
	Title    string     `json:"title"`
	Columns  []Column   `json:"columns"`
	Rows     [][]string `json:"rows"`
	PageSize int        `json:"pageSize"`
	Page     int        `json:"page"`
	Total    int        `json:"total"` // row count before pagination
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Align string `json:"align"` // "left", "right"
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}

// RoundTo2 rounds to 2 decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}
