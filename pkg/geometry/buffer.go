package geometry

import (
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geos"
)

const bufferQuadSegs = 8

// BufferLine expands a polyline into a flat-capped, mitre-joined polygon of
// half-width distance (degrees). A single point buffers to a small disc.
// Returns nil when there are no coordinates.
func BufferLine(coords []geom.Coord, distance float64) *geos.Geom {
	switch len(coords) {
	case 0:
		return nil
	case 1:
		return geos.NewPoint([]float64{coords[0][0], coords[0][1]}).Buffer(distance, bufferQuadSegs)
	}

	return GeosLineString(coords).BufferWithStyle(
		distance, bufferQuadSegs, geos.BufCapStyleFlat, geos.BufJoinStyleMitre, 5,
	)
}

// ConvexHull returns the convex hull of the points, or nil when fewer than
// three unique points are available. Callers are expected to fall back to a
// bounding box.
func ConvexHull(coords []geom.Coord) *geos.Geom {
	unique := map[[2]float64]struct{}{}
	points := []*geos.Geom{}
	for _, c := range coords {
		key := [2]float64{c[0], c[1]}
		if _, seen := unique[key]; seen {
			continue
		}
		unique[key] = struct{}{}
		points = append(points, geos.NewPoint([]float64{c[0], c[1]}))
	}

	if len(points) < 3 {
		return nil
	}

	hull := geos.NewCollection(geos.TypeIDMultiPoint, points).ConvexHull()
	if hull == nil || hull.IsEmpty() || hull.TypeID() != geos.TypeIDPolygon {
		return nil
	}

	return hull
}

// PaddedBounds returns the axis-aligned bounding box of the coordinates
// expanded by pad on every side. Returns nil when there are no coordinates.
func PaddedBounds(coords []geom.Coord, pad float64) *geos.Geom {
	if len(coords) == 0 {
		return nil
	}

	minX, minY, maxX, maxY := Bounds(coords)
	ring := [][]float64{
		{minX - pad, minY - pad},
		{maxX + pad, minY - pad},
		{maxX + pad, maxY + pad},
		{minX - pad, maxY + pad},
		{minX - pad, minY - pad},
	}

	return geos.NewPolygon([][][]float64{ring})
}
