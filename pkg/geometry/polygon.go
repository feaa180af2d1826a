package geometry

import (
	"math"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geos"
)

// Flatten collects every vertex of a geometry into one coordinate slice,
// regardless of shape. Unsupported types flatten to nil.
func Flatten(g geom.T) []geom.Coord {
	switch g := g.(type) {
	case *geom.Point:
		return []geom.Coord{g.Coords()}
	case *geom.MultiPoint:
		return g.Coords()
	case *geom.LineString:
		return g.Coords()
	case *geom.MultiLineString:
		var coords []geom.Coord
		for _, line := range g.Coords() {
			coords = append(coords, line...)
		}
		return coords
	case *geom.Polygon:
		var coords []geom.Coord
		for _, ring := range g.Coords() {
			coords = append(coords, ring...)
		}
		return coords
	case *geom.MultiPolygon:
		var coords []geom.Coord
		for _, polygon := range g.Coords() {
			for _, ring := range polygon {
				coords = append(coords, ring...)
			}
		}
		return coords
	}
	return nil
}

// ExteriorRings returns the exterior ring of every polygon in the geometry
// as (lon, lat) pairs. Non-areal geometries produce no rings.
func ExteriorRings(g *geos.Geom) [][][]float64 {
	decoded, err := GeomFromGeos(g)
	if err != nil {
		return nil
	}

	switch decoded := decoded.(type) {
	case *geom.Polygon:
		if decoded.NumLinearRings() == 0 {
			return nil
		}
		return [][][]float64{ToFloat(decoded.LinearRing(0).Coords())}
	case *geom.MultiPolygon:
		rings := [][][]float64{}
		for i := 0; i < decoded.NumPolygons(); i++ {
			polygon := decoded.Polygon(i)
			if polygon.NumLinearRings() == 0 {
				continue
			}
			rings = append(rings, ToFloat(polygon.LinearRing(0).Coords()))
		}
		return rings
	}
	return nil
}

// LargestComponent reduces a multi-polygon to its largest member by area.
// Single polygons pass through unchanged; anything else returns nil.
func LargestComponent(g *geos.Geom) *geos.Geom {
	decoded, err := GeomFromGeos(g)
	if err != nil {
		return nil
	}

	switch decoded := decoded.(type) {
	case *geom.Polygon:
		return g
	case *geom.MultiPolygon:
		var largest *geom.Polygon
		largestArea := 0.0
		for i := 0; i < decoded.NumPolygons(); i++ {
			polygon := decoded.Polygon(i)
			if area := polygon.Area(); largest == nil || area > largestArea {
				largest = polygon
				largestArea = area
			}
		}
		if largest == nil {
			return nil
		}
		out, err := GeosFromGeom(largest)
		if err != nil {
			return nil
		}
		return out
	}
	return nil
}

// Centroid computes the area-weighted centroid of the geometry's largest
// polygon using the shoelace formula. ok is false for empty or degenerate
// input.
func Centroid(g *geos.Geom) (x, y float64, ok bool) {
	largest := LargestComponent(g)
	if largest == nil {
		return 0, 0, false
	}

	rings := ExteriorRings(largest)
	if len(rings) == 0 || len(rings[0]) < 3 {
		return 0, 0, false
	}

	ring := rings[0]
	var area, cx, cy float64
	for i := 0; i+1 < len(ring); i++ {
		crossTerm := ring[i][0]*ring[i+1][1] - ring[i+1][0]*ring[i][1]
		area += crossTerm
		cx += (ring[i][0] + ring[i+1][0]) * crossTerm
		cy += (ring[i][1] + ring[i+1][1]) * crossTerm
	}
	area /= 2

	if math.Abs(area) < 1e-18 {
		// Degenerate ring, fall back to the vertex mean.
		var mx, my float64
		for _, p := range ring {
			mx += p[0]
			my += p[1]
		}
		n := float64(len(ring))
		return mx / n, my / n, true
	}

	return cx / (6 * area), cy / (6 * area), true
}
