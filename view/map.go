package view

import (
	geojson "github.com/paulmach/go.geojson"

	"github.com/Ndanashe-Hevs/London-crime-analysis-dash/geo"
)

// London map viewport.
const (
	londonLat   = 51.509865
	londonLon   = -0.118092
	defaultZoom = 9
)

// ChoroplethConfig defines how to render the borough map: a feature
// collection colored by crime rate, plus one text label per region at its
// centroid.
type ChoroplethConfig struct {
	Title        string                     `json:"title"`
	GeoJSON      *geojson.FeatureCollection `json:"geojson"`
	FeatureIDKey string                     `json:"featureIdKey"`
	Locations    []string                   `json:"locations"`
	Values       []float64                  `json:"values"`
	ColorScale   string                     `json:"colorScale"`
	CenterLat    float64                    `json:"centerLat"`
	CenterLon    float64                    `json:"centerLon"`
	Zoom         float64                    `json:"zoom"`
	Labels       []MapLabel                 `json:"labels"`
}

// MapLabel is a text annotation placed at a region centroid.
type MapLabel struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Text string  `json:"text"`
}

// Choropleth builds the map figure from merged regions. Regions were
// inner-joined upstream, so every region here has both geometry and data;
// zero regions renders an empty map.
func Choropleth(title string, regions []geo.Region) *ChoroplethConfig {
	fc := geojson.NewFeatureCollection()
	config := &ChoroplethConfig{
		Title:        title,
		GeoJSON:      fc,
		FeatureIDKey: "properties.name",
		ColorScale:   "Teal",
		CenterLat:    londonLat,
		CenterLon:    londonLon,
		Zoom:         defaultZoom,
		Locations:    make([]string, 0, len(regions)),
		Values:       make([]float64, 0, len(regions)),
		Labels:       make([]MapLabel, 0, len(regions)),
	}

	for _, region := range regions {
		// Fresh feature per request: the shared boundary geometry is
		// reused, the name property carries the normalized join key.
		feature := geojson.NewFeature(region.Geometry)
		feature.SetProperty("name", region.Name)
		fc.AddFeature(feature)

		config.Locations = append(config.Locations, region.Name)
		config.Values = append(config.Values, RoundTo2(region.CrimeRate))
		config.Labels = append(config.Labels, MapLabel{
			Lat:  region.CentroidLat,
			Lon:  region.CentroidLon,
			Text: region.DisplayName,
		})
	}
	return config
}
