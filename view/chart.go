package view

import "github.com/Ndanashe-Hevs/London-crime-analysis-dash/engine"

// BarFromRows builds a bar chart with one bar per aggregate row.
// colorMeasure, when non-empty, shades the bars continuously by that
// measure's per-row value.
func BarFromRows(title, xAxis, yAxis string, rows []engine.AggRow, dim engine.Dimension, measure, colorMeasure string) *ChartConfig {
	config := &ChartConfig{
		ChartType: "bar",
		Title:     title,
		XAxis:     xAxis,
		YAxis:     yAxis,
		Series:    []ChartSeries{{Name: yAxis, Data: pointsFromRows(rows, dim, measure)}},
		ShowGrid:  true,
	}

	if colorMeasure != "" {
		config.ColorValues = make([]float64, 0, len(rows))
		for _, row := range rows {
			config.ColorValues = append(config.ColorValues, RoundTo2(row.Value(colorMeasure)))
		}
		config.ColorLabel = colorMeasure
	} else {
		config.Colors = assignColors(len(rows))
	}
	return config
}

// PieFromRows builds a pie chart with one slice per aggregate row.
func PieFromRows(title string, rows []engine.AggRow, dim engine.Dimension, measure string) *ChartConfig {
	return &ChartConfig{
		ChartType:  "pie",
		Title:      title,
		Series:     []ChartSeries{{Name: title, Data: pointsFromRows(rows, dim, measure)}},
		Colors:     assignColors(len(rows)),
		ShowLegend: true,
	}
}

// LineFromRows builds a line chart with one series per distinct seriesDim
// value and one point per distinct xDim value. Series are ordered by first
// encounter; a series missing a point at some x keeps a zero there, so all
// series span the same x labels.
func LineFromRows(title, xAxis, yAxis string, rows []engine.AggRow, xDim, seriesDim engine.Dimension, measure string) *ChartConfig {
	var xLabels []string
	xSeen := make(map[string]bool)
	var names []string
	nameSeen := make(map[string]bool)
	values := make(map[string]map[string]float64)

	for _, row := range rows {
		x := row.Key(xDim)
		name := row.Key(seriesDim)
		if !xSeen[x] {
			xSeen[x] = true
			xLabels = append(xLabels, x)
		}
		if !nameSeen[name] {
			nameSeen[name] = true
			names = append(names, name)
			values[name] = make(map[string]float64)
		}
		values[name][x] = row.Value(measure)
	}

	series := make([]ChartSeries, 0, len(names))
	for i, name := range names {
		points := make([]ChartPoint, 0, len(xLabels))
		for _, x := range xLabels {
			points = append(points, ChartPoint{Label: x, Value: RoundTo2(values[name][x])})
		}
		series = append(series, ChartSeries{
			Name:  name,
			Data:  points,
			Color: defaultColors[i%len(defaultColors)],
		})
	}

	return &ChartConfig{
		ChartType:  "line",
		Title:      title,
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     series,
		ShowLegend: true,
		ShowGrid:   true,
	}
}

func pointsFromRows(rows []engine.AggRow, dim engine.Dimension, measure string) []ChartPoint {
	points := make([]ChartPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, ChartPoint{
			Label: row.Key(dim),
			Value: RoundTo2(row.Value(measure)),
		})
	}
	return points
}
