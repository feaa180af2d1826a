package convert

import (
	"math"

	"github.com/tidwall/rtree"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geos"

	"github.com/curbmap/sf/pkg/geometry"
	"github.com/curbmap/sf/pkg/models"
)

// distanceEpsilon bounds the float comparison when two candidates are
// effectively equidistant; the lower blockface ID wins the tie.
const distanceEpsilon = 1e-12

// Matcher owns the spatial index over blockface centerlines. Build once per
// run; the index is read-only during matching.
type Matcher struct {
	cfg        Config
	blockfaces []*models.Blockface
	coords     [][]geom.Coord
	lines      []*geos.Geom
	index      *rtree.RTree
}

func NewMatcher(cfg Config, blockfaces []*models.Blockface) *Matcher {
	m := &Matcher{
		cfg:        cfg,
		blockfaces: blockfaces,
		coords:     make([][]geom.Coord, len(blockfaces)),
		lines:      make([]*geos.Geom, len(blockfaces)),
		index:      new(rtree.RTree),
	}

	buffer := cfg.MatchBuffer
	for i, bf := range blockfaces {
		coords := geometry.FromFloat(bf.Geometry.Coordinates)
		m.coords[i] = coords
		m.lines[i] = geometry.GeosLineString(coords)

		minX, minY, maxX, maxY := geometry.Bounds(coords)
		m.index.Insert(
			[2]float64{minX - buffer, minY - buffer},
			[2]float64{maxX + buffer, maxY + buffer},
			i,
		)
	}

	return m
}

// Match finds the closest eligible blockface for the record and returns its
// index. A candidate is eligible when it lies within the match buffer and its
// geometric side does not determinately conflict with the blockface's side.
// Ambiguous sides never exclude a candidate.
func (m *Matcher) Match(rec Record) (int, bool) {
	recGeom := recordGeom(rec.Coords)
	if recGeom == nil {
		return 0, false
	}

	minX, minY, maxX, maxY := geometry.Bounds(rec.Coords)
	buffer := m.cfg.MatchBuffer

	best := -1
	bestDist := math.Inf(1)

	m.index.Search(
		[2]float64{minX - buffer, minY - buffer},
		[2]float64{maxX + buffer, maxY + buffer},
		func(_, _ [2]float64, v interface{}) bool {
			i := v.(int)

			want := geometry.SideToLeftRight(m.blockfaces[i].Side)
			if want != geometry.Unknown {
				got := geometry.SideOfLine(m.coords[i], rec.Coords)
				if got != geometry.Unknown && got != want {
					return true
				}
			}

			dist := m.lines[i].Distance(recGeom)
			if dist > buffer {
				return true
			}

			switch {
			case dist < bestDist-distanceEpsilon:
				best, bestDist = i, dist
			case math.Abs(dist-bestDist) <= distanceEpsilon &&
				best >= 0 && m.blockfaces[i].ID < m.blockfaces[best].ID:
				best = i
			}
			return true
		},
	)

	if best < 0 {
		return 0, false
	}
	return best, true
}

func recordGeom(coords []geom.Coord) *geos.Geom {
	switch len(coords) {
	case 0:
		return nil
	case 1:
		return geos.NewPoint([]float64{coords[0][0], coords[0][1]})
	}
	return geometry.GeosLineString(coords)
}
