// Package geo loads borough boundaries and joins them with crime aggregates
// for the choropleth map.
package geo

import (
	"fmt"
	"os"
	"strings"

	geojson "github.com/paulmach/go.geojson"
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
)

// Boundary is one borough polygon with its name property.
type Boundary struct {
	Name     string
	Feature  *geojson.Feature
	Geometry *geom.MultiPolygon
}

// LoadBoundaries reads borough boundaries from a GeoJSON file.
func LoadBoundaries(path string) ([]Boundary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open boundary file: %w", err)
	}
	boundaries, err := ParseBoundaries(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return boundaries, nil
}

// ParseBoundaries decodes a GeoJSON feature collection of borough polygons.
// Features without a name property or with a non-areal geometry are an
// error: the boundary file is trusted input, loaded once at startup.
func ParseBoundaries(data []byte) ([]Boundary, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decode geojson: %w", err)
	}

	boundaries := make([]Boundary, 0, len(fc.Features))
	for i, feature := range fc.Features {
		name, err := feature.PropertyString("name")
		if err != nil {
			return nil, fmt.Errorf("feature %d: missing name property", i)
		}

		mp, err := toMultiPolygon(feature.Geometry)
		if err != nil {
			return nil, fmt.Errorf("feature %d (%s): %w", i, name, err)
		}

		boundaries = append(boundaries, Boundary{
			Name:     name,
			Feature:  feature,
			Geometry: mp,
		})
	}
	return boundaries, nil
}

// toMultiPolygon converts a GeoJSON polygon or multipolygon to go-geom.
func toMultiPolygon(g *geojson.Geometry) (*geom.MultiPolygon, error) {
	if g == nil {
		return nil, fmt.Errorf("missing geometry")
	}

	var polygons [][][][]float64
	switch {
	case g.IsPolygon():
		polygons = [][][][]float64{g.Polygon}
	case g.IsMultiPolygon():
		polygons = g.MultiPolygon
	default:
		return nil, fmt.Errorf("unsupported geometry type %q", g.Type)
	}

	coords := make([][][]geom.Coord, len(polygons))
	for i, polygon := range polygons {
		coords[i] = make([][]geom.Coord, len(polygon))
		for j, ring := range polygon {
			coords[i][j] = make([]geom.Coord, len(ring))
			for k, position := range ring {
				if len(position) < 2 {
					return nil, fmt.Errorf("short coordinate in ring %d", j)
				}
				coords[i][j][k] = geom.Coord{position[0], position[1]}
			}
		}
	}

	mp := geom.NewMultiPolygon(geom.XY)
	if _, err := mp.SetCoords(coords); err != nil {
		return nil, fmt.Errorf("build multipolygon: %w", err)
	}
	return mp, nil
}

// Centroid returns the planar centroid of a boundary. Coordinates are
// geographic, so this is approximate; it is used only for label placement.
func (b Boundary) Centroid() (lon, lat float64, err error) {
	c, err := xy.Centroid(b.Geometry)
	if err != nil {
		return 0, 0, err
	}
	return c.X(), c.Y(), nil
}

// NormalizeName canonicalizes a borough name for joining: trim + lowercase.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// TitleCase renders a normalized borough name for display labels.
func TitleCase(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
