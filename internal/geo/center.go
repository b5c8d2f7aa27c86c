// Package geo derives map positioning from local GeoJSON data.
package geo

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// BoundCenter reads a GeoJSON file and returns the center of the union of
// its feature bounds as a [longitude, latitude] point.
func BoundCenter(path string) (orb.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return orb.Point{}, fmt.Errorf("reading geojson: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return orb.Point{}, fmt.Errorf("parsing geojson: %w", err)
	}
	if len(fc.Features) == 0 {
		return orb.Point{}, fmt.Errorf("no features in %s", path)
	}

	bound := fc.Features[0].Geometry.Bound()
	for _, f := range fc.Features[1:] {
		bound = bound.Union(f.Geometry.Bound())
	}
	return bound.Center(), nil
}
