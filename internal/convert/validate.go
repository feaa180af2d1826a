package convert

import (
	"fmt"

	"github.com/curbmap/sf/pkg/models"
)

// City-wide sanity bounds. Anything outside is a bad coordinate, not a
// filtering decision.
const (
	sfMinLat = 37.6
	sfMaxLat = 37.9
	sfMinLon = -122.6
	sfMaxLon = -122.3
)

// ValidateBlockfaces runs a post-build sanity pass over the bundle. Findings
// are warnings for the run summary; a violation never rejects the bundle.
func ValidateBlockfaces(bundle *models.BlockfaceBundle) []string {
	var warnings []string

	seen := map[string]struct{}{}
	for _, bf := range bundle.Blockfaces {
		if _, ok := seen[bf.ID]; ok {
			warnings = append(warnings, fmt.Sprintf("duplicate blockface id %s", bf.ID))
		}
		seen[bf.ID] = struct{}{}

		if len(bf.Geometry.Coordinates) < 2 {
			warnings = append(warnings, fmt.Sprintf("blockface %s has fewer than 2 vertices", bf.ID))
		}
		for _, c := range bf.Geometry.Coordinates {
			if len(c) < 2 || c[0] < sfMinLon || c[0] > sfMaxLon || c[1] < sfMinLat || c[1] > sfMaxLat {
				warnings = append(warnings, fmt.Sprintf("blockface %s has a coordinate outside San Francisco", bf.ID))
				break
			}
		}

		keys := map[string]struct{}{}
		for _, reg := range bf.Regulations {
			key := reg.Key()
			if _, ok := keys[key]; ok {
				warnings = append(warnings, fmt.Sprintf("blockface %s has duplicate regulations", bf.ID))
				break
			}
			keys[key] = struct{}{}
		}
	}

	return warnings
}

// ValidateZones checks the zones bundle the same way: unique codes, non-empty
// polygons, coordinates within the city.
func ValidateZones(bundle *models.ZoneBundle) []string {
	var warnings []string

	seen := map[string]struct{}{}
	for _, zone := range bundle.Zones {
		if _, ok := seen[zone.Code]; ok {
			warnings = append(warnings, fmt.Sprintf("duplicate zone code %s", zone.Code))
		}
		seen[zone.Code] = struct{}{}

		if len(zone.Polygon) == 0 {
			warnings = append(warnings, fmt.Sprintf("zone %s has no polygon", zone.Code))
			continue
		}
		for _, ring := range zone.Polygon {
			bad := false
			for _, c := range ring {
				if len(c) < 2 || c[0] < sfMinLon || c[0] > sfMaxLon || c[1] < sfMinLat || c[1] > sfMaxLat {
					warnings = append(warnings, fmt.Sprintf("zone %s has a coordinate outside San Francisco", zone.Code))
					bad = true
					break
				}
			}
			if bad {
				break
			}
		}
	}

	return warnings
}
