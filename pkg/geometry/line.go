package geometry

import (
	"math"

	"github.com/twpayne/go-geom"
)

// Planar polyline helpers. All distances are in degrees; at city scale the
// planar approximation is good enough for matching.

// Length returns the planar length of a polyline.
func Length(coords []geom.Coord) float64 {
	total := 0.0
	for i := 0; i+1 < len(coords); i++ {
		total += math.Hypot(coords[i+1][0]-coords[i][0], coords[i+1][1]-coords[i][1])
	}
	return total
}

// Interpolate returns the point at the given distance along the polyline.
// Distances are clamped to [0, length].
func Interpolate(coords []geom.Coord, distance float64) geom.Coord {
	if len(coords) == 0 {
		return nil
	}
	if distance <= 0 || len(coords) == 1 {
		return geom.Coord{coords[0][0], coords[0][1]}
	}

	remaining := distance
	for i := 0; i+1 < len(coords); i++ {
		seg := math.Hypot(coords[i+1][0]-coords[i][0], coords[i+1][1]-coords[i][1])
		if remaining <= seg && seg > 0 {
			t := remaining / seg
			return geom.Coord{
				coords[i][0] + t*(coords[i+1][0]-coords[i][0]),
				coords[i][1] + t*(coords[i+1][1]-coords[i][1]),
			}
		}
		remaining -= seg
	}

	last := coords[len(coords)-1]
	return geom.Coord{last[0], last[1]}
}

// Project returns the distance along the polyline of the point closest to p.
func Project(coords []geom.Coord, p geom.Coord) float64 {
	best := math.MaxFloat64
	bestAlong := 0.0
	cumulative := 0.0

	for i := 0; i+1 < len(coords); i++ {
		ax, ay := coords[i][0], coords[i][1]
		dx, dy := coords[i+1][0]-ax, coords[i+1][1]-ay
		seg := math.Hypot(dx, dy)

		t := 0.0
		if seg > 0 {
			t = ((p[0]-ax)*dx + (p[1]-ay)*dy) / (seg * seg)
			t = math.Max(0, math.Min(1, t))
		}

		qx, qy := ax+t*dx, ay+t*dy
		d := math.Hypot(p[0]-qx, p[1]-qy)
		if d < best {
			best = d
			bestAlong = cumulative + t*seg
		}
		cumulative += seg
	}

	return bestAlong
}

// Midpoint returns the point halfway along the polyline by length.
func Midpoint(coords []geom.Coord) geom.Coord {
	return Interpolate(coords, Length(coords)/2)
}

// Bounds returns the axis-aligned bounding box of the coordinates.
func Bounds(coords []geom.Coord) (minX, minY, maxX, maxY float64) {
	minX, minY = math.MaxFloat64, math.MaxFloat64
	maxX, maxY = -math.MaxFloat64, -math.MaxFloat64
	for _, c := range coords {
		minX = math.Min(minX, c[0])
		minY = math.Min(minY, c[1])
		maxX = math.Max(maxX, c[0])
		maxY = math.Max(maxY, c[1])
	}
	return minX, minY, maxX, maxY
}

// ToFloat converts coordinates to the (lon, lat) pair representation used in
// the output bundles.
func ToFloat(coords []geom.Coord) [][]float64 {
	out := make([][]float64, 0, len(coords))
	for _, c := range coords {
		out = append(out, []float64{c[0], c[1]})
	}
	return out
}

// FromFloat converts (lon, lat) pairs back to coordinates.
func FromFloat(pairs [][]float64) []geom.Coord {
	out := make([]geom.Coord, 0, len(pairs))
	for _, p := range pairs {
		if len(p) < 2 {
			continue
		}
		out = append(out, geom.Coord{p[0], p[1]})
	}
	return out
}
