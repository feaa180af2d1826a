package geometry

import (
	"github.com/twpayne/go-geom"

	"github.com/curbmap/sf/pkg/models"
)

// Geometric side of a centerline, relative to the direction of travel along
// its coordinates.
type LeftRight string

const (
	Left    LeftRight = "LEFT"
	Right   LeftRight = "RIGHT"
	Unknown LeftRight = "UNKNOWN"
)

const (
	// Cross products below this magnitude are treated as ambiguous
	// (near-parallel or intersecting lines).
	sideThreshold = 1e-8

	// Lower bound on the tangent window so very short segments still
	// produce a usable direction vector.
	minTangentOffset = 0.00001
)

// SideOfLine classifies which side of the centerline the candidate line lies
// on. The candidate's midpoint is projected onto the centerline, a local
// tangent is taken from points 5% of the line length before and after the
// projection, and the sign of tangent x (midpoint - projection) decides the
// side. Returns Unknown when the result is numerically ambiguous.
func SideOfLine(centerline, candidate []geom.Coord) LeftRight {
	if len(centerline) < 2 || len(candidate) == 0 {
		return Unknown
	}

	total := Length(centerline)
	if total == 0 {
		return Unknown
	}

	mid := Midpoint(candidate)
	along := Project(centerline, mid)
	closest := Interpolate(centerline, along)

	offset := total * 0.05
	if offset < minTangentOffset {
		offset = minTangentOffset
	}
	if offset > total/2 {
		offset = total / 2
	}

	var p1, p2 geom.Coord
	switch {
	case along < offset:
		// Near the start, use the forward direction.
		p1 = Interpolate(centerline, 0)
		p2 = Interpolate(centerline, offset*2)
	case along > total-offset:
		// Near the end, use the trailing direction.
		p1 = Interpolate(centerline, total-offset*2)
		p2 = Interpolate(centerline, total)
	default:
		p1 = Interpolate(centerline, along-offset)
		p2 = Interpolate(centerline, along+offset)
	}

	dx, dy := p2[0]-p1[0], p2[1]-p1[1]
	tx, ty := mid[0]-closest[0], mid[1]-closest[1]
	cross := dx*ty - dy*tx

	switch {
	case cross > sideThreshold:
		return Left
	case cross < -sideThreshold:
		return Right
	}
	return Unknown
}

// SideToLeftRight maps a blockface side designation onto a geometric side.
// ODD is the left side and EVEN the right by the SF addressing convention.
// Cardinal sides depend on a traversal direction the data does not record,
// so they map to Unknown and accept matches from either geometric side.
func SideToLeftRight(side models.Side) LeftRight {
	switch side {
	case models.SideOdd:
		return Left
	case models.SideEven:
		return Right
	}
	return Unknown
}
