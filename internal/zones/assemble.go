package zones

import (
	"strconv"

	"github.com/twpayne/go-geos"

	"github.com/curbmap/sf/pkg/geometry"
	"github.com/curbmap/sf/pkg/models"
)

// assembleZone flattens a zone's members into the output rings, records
// which rings are shared with other permit codes, and applies the optional
// simplification pass.
func assembleZone(cfg Config, code string, members []member) models.Zone {
	zone := models.Zone{
		Code:    code,
		Name:    zoneName(code),
		Polygon: [][][]float64{},
	}

	for _, m := range members {
		poly := simplify(m.poly, cfg.SimplifyTolerance)

		rings := geometry.ExteriorRings(poly)
		for _, ring := range rings {
			if len(m.signature) > 1 {
				if zone.MultiPermitPolygons == nil {
					zone.MultiPermitPolygons = map[string][]string{}
				}
				index := strconv.Itoa(len(zone.Polygon))
				zone.MultiPermitPolygons[index] = append([]string(nil), m.signature...)
			}
			zone.Polygon = append(zone.Polygon, ring)
		}
	}

	return zone
}

// simplify thins a polygon's rings while preserving topology. A result that
// comes back invalid or empty is discarded in favor of the input.
func simplify(poly *geos.Geom, tolerance float64) *geos.Geom {
	if tolerance <= 0 || poly == nil {
		return poly
	}

	thinned := poly.TopologyPreserveSimplify(tolerance)
	if usable(thinned) {
		return thinned
	}
	if thinned != nil {
		if largest := geometry.LargestComponent(thinned); usable(largest) {
			return largest
		}
	}
	return poly
}
