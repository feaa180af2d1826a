package geometry

import (
	"errors"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geos"
)

// Conversions between go-geom values and GEOS geometries go through GeoJSON,
// which both libraries speak natively.

// GeosFromGeom converts a go-geom geometry to a GEOS geometry.
func GeosFromGeom(g geom.T) (*geos.Geom, error) {
	if g == nil {
		return nil, errors.New("nil geometry")
	}

	data, err := geojson.Marshal(g)
	if err != nil {
		return nil, err
	}

	return geos.NewGeomFromGeoJSON(string(data))
}

// GeomFromGeos converts a GEOS geometry back to a go-geom geometry.
func GeomFromGeos(g *geos.Geom) (geom.T, error) {
	if g == nil {
		return nil, errors.New("nil geometry")
	}

	var out geom.T
	if err := geojson.Unmarshal([]byte(g.ToGeoJSON(-1)), &out); err != nil {
		return nil, err
	}

	return out, nil
}

// GeosLineString builds a GEOS line string from polyline coordinates.
func GeosLineString(coords []geom.Coord) *geos.Geom {
	return geos.NewLineString(ToFloat(coords))
}
