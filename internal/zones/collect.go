package zones

import (
	"sort"
	"strings"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geos"

	"github.com/curbmap/sf/pkg/geometry"
	"github.com/curbmap/sf/pkg/models"
)

// member is one polygon contributed to a zone, together with the full set of
// permit codes that share it. A blockface holding multiple codes contributes
// the same polygon to each code with the same signature, which is how shared
// rings are recognized later.
type member struct {
	signature []string // sorted permit codes
	poly      *geos.Geom
}

func (m member) signatureKey() string {
	return strings.Join(m.signature, ",")
}

type collected struct {
	members     map[string][]member
	blockCounts map[string]int
	meterCounts map[string]int
}

// collect gathers one polygon per blockface per permit code, plus parcel
// polygons when a parcel dataset is present. The metered district collects
// from blockfaces carrying a metered regulation.
func collect(cfg Config, blockfaces []models.Blockface, parcels []Parcel) collected {
	out := collected{
		members:     map[string][]member{},
		blockCounts: map[string]int{},
		meterCounts: map[string]int{},
	}

	for _, bf := range blockfaces {
		codes, metered := blockfaceCodes(bf)
		if metered {
			codes = append(codes, MeteredZoneCode)
		}
		if len(codes) == 0 {
			continue
		}
		sort.Strings(codes)

		coords := geometry.FromFloat(bf.Geometry.Coordinates)
		poly := blockfacePolygon(coords, cfg.ZoneBuffer)
		if poly == nil {
			continue
		}

		for _, code := range codes {
			out.members[code] = append(out.members[code], member{signature: codes, poly: poly})
			out.blockCounts[code]++
			if metered {
				out.meterCounts[code]++
			}
		}
	}

	for _, parcel := range parcels {
		codes := append([]string(nil), parcel.Codes...)
		if len(codes) == 0 {
			continue
		}
		sort.Strings(codes)

		poly := parcelPolygon(parcel.Ring)
		if poly == nil {
			continue
		}

		for _, code := range codes {
			out.members[code] = append(out.members[code], member{signature: codes, poly: poly})
			out.blockCounts[code]++
		}
	}

	return out
}

// blockfaceCodes returns the permit codes attached to the blockface's
// regulations and whether any regulation meters it.
func blockfaceCodes(bf models.Blockface) (codes []string, metered bool) {
	seen := map[string]struct{}{}
	for _, reg := range bf.Regulations {
		if reg.Type == models.RegulationMetered {
			metered = true
		}
		if reg.Type != models.RegulationResidentialPermit {
			continue
		}
		for _, code := range reg.PermitZones {
			if _, ok := seen[code]; ok {
				continue
			}
			seen[code] = struct{}{}
			codes = append(codes, code)
		}
	}
	return codes, metered
}

// blockfacePolygon expands a centerline into a zone polygon. Buffering is
// tried first, then the convex hull, then a padded bounding box.
func blockfacePolygon(coords []geom.Coord, buffer float64) *geos.Geom {
	if poly := geometry.BufferLine(coords, buffer); usable(poly) {
		return poly
	}
	if poly := geometry.ConvexHull(coords); usable(poly) {
		return poly
	}
	if poly := geometry.PaddedBounds(coords, buffer); usable(poly) {
		return poly
	}
	return nil
}

func parcelPolygon(ring []geom.Coord) *geos.Geom {
	if len(ring) < 3 {
		return nil
	}
	poly := geos.NewPolygon([][][]float64{geometry.ToFloat(closeRing(ring))})
	if poly == nil {
		return nil
	}
	if !poly.IsValid() {
		poly = poly.Buffer(0, 8)
	}
	if !usable(poly) {
		return nil
	}
	return poly
}

func closeRing(ring []geom.Coord) []geom.Coord {
	first, last := ring[0], ring[len(ring)-1]
	if first[0] == last[0] && first[1] == last[1] {
		return ring
	}
	return append(append([]geom.Coord(nil), ring...), first)
}

func usable(g *geos.Geom) bool {
	return g != nil && !g.IsEmpty() && g.IsValid()
}
