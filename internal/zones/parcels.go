package zones

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// Parcel is one permit-parcel footprint. Ring is the exterior ring of the
// parcel polygon.
type Parcel struct {
	Codes []string
	Ring  []geom.Coord
}

// LoadParcels reads the RPP parcels dataset. Parcels without a permit code
// or a polygon are dropped silently; the buffered-centerline path covers
// zones the parcel data misses.
func LoadParcels(path string) ([]Parcel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read parcels: %w", err)
	}

	var parcels []Parcel

	features := gjson.GetBytes(data, "features")
	features.ForEach(func(_, feature gjson.Result) bool {
		props := feature.Get("properties")

		var codes []string
		for _, name := range []string{"rpparea", "RPPAREA", "area", "permit_area"} {
			if v := props.Get(name); v.Exists() {
				for _, code := range strings.Split(v.String(), ",") {
					code = strings.ToUpper(strings.TrimSpace(code))
					if code != "" {
						codes = append(codes, code)
					}
				}
				break
			}
		}
		if len(codes) == 0 {
			return true
		}

		ring := parcelRing(feature.Get("geometry"))
		if len(ring) < 3 {
			return true
		}

		parcels = append(parcels, Parcel{Codes: codes, Ring: ring})
		return true
	})

	return parcels, nil
}

func parcelRing(raw gjson.Result) []geom.Coord {
	if !raw.Exists() {
		return nil
	}

	var g geom.T
	if err := geojson.Unmarshal([]byte(raw.Raw), &g); err != nil {
		return nil
	}

	switch g := g.(type) {
	case *geom.Polygon:
		if g.NumLinearRings() == 0 {
			return nil
		}
		return g.LinearRing(0).Coords()
	case *geom.MultiPolygon:
		// Largest exterior ring by vertex count stands in for the parcel.
		var best []geom.Coord
		for i := 0; i < g.NumPolygons(); i++ {
			polygon := g.Polygon(i)
			if polygon.NumLinearRings() == 0 {
				continue
			}
			ring := polygon.LinearRing(0).Coords()
			if len(ring) > len(best) {
				best = ring
			}
		}
		return best
	}
	return nil
}
