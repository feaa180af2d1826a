package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geos"
)

func TestBufferLine(t *testing.T) {
	// Empty input fails softly.
	assert.Nil(t, BufferLine(nil, 0.0001))

	// A single point buffers to a small disc.
	disc := BufferLine([]geom.Coord{{0, 0}}, 0.0001)
	assert.NotNil(t, disc)
	assert.Equal(t, geos.TypeIDPolygon, disc.TypeID())
	assert.Greater(t, disc.Area(), 0.0)

	// A line buffers to a polygon roughly 2*distance wide.
	polygon := BufferLine([]geom.Coord{{0, 0}, {0.01, 0}}, 0.0001)
	assert.NotNil(t, polygon)
	assert.Equal(t, geos.TypeIDPolygon, polygon.TypeID())
	assert.InDelta(t, 0.01*2*0.0001, polygon.Area(), 1e-7)

	// The buffered footprint contains points beside the line but not far away.
	assert.True(t, polygon.Intersects(geos.NewPoint([]float64{0.005, 0.00005})))
	assert.False(t, polygon.Intersects(geos.NewPoint([]float64{0.005, 0.001})))
}

func TestConvexHull(t *testing.T) {
	// Fewer than three unique points has no hull.
	assert.Nil(t, ConvexHull(nil))
	assert.Nil(t, ConvexHull([]geom.Coord{{0, 0}, {1, 1}, {0, 0}}))

	hull := ConvexHull([]geom.Coord{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}})
	assert.NotNil(t, hull)
	assert.InDelta(t, 1.0, hull.Area(), 1e-9)
}

func TestPaddedBounds(t *testing.T) {
	assert.Nil(t, PaddedBounds(nil, 0.001))

	box := PaddedBounds([]geom.Coord{{0, 0}, {1, 2}}, 0.5)
	assert.NotNil(t, box)
	assert.InDelta(t, 2*3, box.Area(), 1e-9)
}

func TestGeosRoundTrip(t *testing.T) {
	line := geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{{-122.42, 37.76}, {-122.41, 37.77}})

	g, err := GeosFromGeom(line)
	assert.NoError(t, err)
	assert.NotNil(t, g)

	back, err := GeomFromGeos(g)
	assert.NoError(t, err)
	ls, ok := back.(*geom.LineString)
	assert.True(t, ok)
	assert.Equal(t, line.Coords(), ls.Coords())
}

func TestExteriorRingsAndCentroid(t *testing.T) {
	square := geos.NewPolygon([][][]float64{{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 0}}})

	rings := ExteriorRings(square)
	assert.Len(t, rings, 1)
	assert.Len(t, rings[0], 5)

	x, y, ok := Centroid(square)
	assert.True(t, ok)
	assert.InDelta(t, 1.0, x, 1e-9)
	assert.InDelta(t, 1.0, y, 1e-9)
}
