package zones

import (
	"sort"

	"github.com/rs/zerolog"
	"github.com/twpayne/go-geos"

	"github.com/curbmap/sf/pkg/geometry"
)

// splitCrossZone resolves overlaps between polygons of different zones. Each
// overlap region is bisected along its longer bounding-box axis through its
// centroid; the lower-sorting code keeps the lower half and the other code
// keeps the upper half, so the outcome does not depend on pair order.
// Collections are rebuilt per pass rather than edited in place.
func splitCrossZone(members map[string][]member, log zerolog.Logger) map[string][]member {
	codes := make([]string, 0, len(members))
	for code := range members {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	// Working copy so the input map stays untouched.
	work := make(map[string][]member, len(members))
	for code, list := range members {
		work[code] = append([]member(nil), list...)
	}

	for i, codeA := range codes {
		for _, codeB := range codes[i+1:] {
			for ai := range work[codeA] {
				for bi := range work[codeB] {
					a, b := work[codeA][ai], work[codeB][bi]
					if sameSignature(a, b) {
						// A shared multi-permit ring is legitimate
						// overlap, not a conflict.
						continue
					}
					if !a.poly.Intersects(b.poly) {
						continue
					}

					newA, newB, ok := splitOverlap(a.poly, b.poly)
					if !ok {
						log.Warn().
							Str("zone_a", codeA).
							Str("zone_b", codeB).
							Msg("could not split zone overlap; keeping both polygons")
						continue
					}

					work[codeA][ai] = member{signature: a.signature, poly: newA}
					work[codeB][bi] = member{signature: b.signature, poly: newB}
				}
			}
		}
	}

	return work
}

func sameSignature(a, b member) bool {
	return a.signatureKey() == b.signatureKey()
}

// splitOverlap divides the intersection of a and b between them. a receives
// the lower half along the split axis; b receives the upper half.
func splitOverlap(a, b *geos.Geom) (newA, newB *geos.Geom, ok bool) {
	overlap := a.Intersection(b)
	if overlap == nil || overlap.IsEmpty() {
		return a, b, true
	}

	lower, upper := bisect(overlap)
	if lower == nil || upper == nil {
		return nil, nil, false
	}

	newA = repair(a.Difference(upper), a)
	newB = repair(b.Difference(lower), b)
	if newA == nil || newB == nil {
		return nil, nil, false
	}
	return newA, newB, true
}

// bisect cuts the region in two along its longer bounding-box axis, through
// its centroid.
func bisect(region *geos.Geom) (lower, upper *geos.Geom) {
	rings := geometry.ExteriorRings(region)
	if len(rings) == 0 {
		return nil, nil
	}

	coords := geometry.FromFloat(rings[0])
	for _, ring := range rings[1:] {
		coords = append(coords, geometry.FromFloat(ring)...)
	}
	minX, minY, maxX, maxY := geometry.Bounds(coords)

	cx, cy, ok := geometry.Centroid(region)
	if !ok {
		cx, cy = (minX+maxX)/2, (minY+maxY)/2
	}

	// Pad the cutting rectangles slightly so boundary vertices fall
	// strictly inside one half.
	pad := (maxX - minX + maxY - minY) * 0.01
	if pad == 0 {
		return nil, nil
	}

	var lowRect, highRect *geos.Geom
	if maxX-minX >= maxY-minY {
		lowRect = rect(minX-pad, minY-pad, cx, maxY+pad)
		highRect = rect(cx, minY-pad, maxX+pad, maxY+pad)
	} else {
		lowRect = rect(minX-pad, minY-pad, maxX+pad, cy)
		highRect = rect(minX-pad, cy, maxX+pad, maxY+pad)
	}

	lower = region.Intersection(lowRect)
	upper = region.Intersection(highRect)
	if lower == nil || upper == nil {
		return nil, nil
	}
	return lower, upper
}

func rect(minX, minY, maxX, maxY float64) *geos.Geom {
	return geos.NewPolygon([][][]float64{{
		{minX, minY},
		{maxX, minY},
		{maxX, maxY},
		{minX, maxY},
		{minX, minY},
	}})
}

// repair makes a post-operation polygon usable again. The ladder is a
// zero-width buffer, then MakeValid reduced to its largest component, then
// the pre-operation fallback.
func repair(poly, fallback *geos.Geom) *geos.Geom {
	if poly == nil || poly.IsEmpty() {
		return fallback
	}
	if poly.IsValid() {
		return poly
	}
	if fixed := poly.Buffer(0, 8); usable(fixed) {
		return fixed
	}
	if fixed := poly.MakeValid(); fixed != nil && !fixed.IsEmpty() {
		if largest := geometry.LargestComponent(fixed); usable(largest) {
			return largest
		}
	}
	return fallback
}
