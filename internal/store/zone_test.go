package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twpayne/go-geos"

	"github.com/curbmap/sf/pkg/models"
)

func TestZoneGeom(t *testing.T) {
	zone := models.Zone{
		Code: "Q",
		Polygon: [][][]float64{
			{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}},
			{{2, 2}, {3, 2}}, // too short, dropped
		},
	}

	g := zoneGeom(zone)
	assert.NotNil(t, g)
	assert.Equal(t, geos.TypeIDMultiPolygon, g.TypeID())
	assert.InDelta(t, 1.0, g.Area(), 1e-9)
}

func TestZoneGeomEmpty(t *testing.T) {
	assert.Nil(t, zoneGeom(models.Zone{Code: "Q"}))
}
