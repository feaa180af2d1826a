package convert

import "github.com/twpayne/go-geom"

// Default tolerances in degrees. 0.000135 is roughly 15 meters at San
// Francisco's latitude.
const (
	DefaultMatchBuffer = 0.000135
)

// BoundsFilter restricts a run to a geographic window. The defaults cover the
// Mission District, which is where the source datasets are densest.
type BoundsFilter struct {
	Enabled bool
	MinLat  float64
	MaxLat  float64
	MinLon  float64
	MaxLon  float64
}

// Contains reports whether the point lies inside the window. A disabled
// filter contains everything.
func (b BoundsFilter) Contains(lon, lat float64) bool {
	if !b.Enabled {
		return true
	}
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// ContainsLine reports whether any vertex of the line lies inside the window.
func (b BoundsFilter) ContainsLine(coords []geom.Coord) bool {
	if !b.Enabled {
		return true
	}
	for _, c := range coords {
		if b.Contains(c[0], c[1]) {
			return true
		}
	}
	return false
}

// Config holds the conversion tunables. Zero values are not usable; start
// from DefaultConfig.
type Config struct {
	// MatchBuffer is the candidate-search tolerance in degrees.
	MatchBuffer float64

	Bounds BoundsFilter
}

func DefaultConfig() Config {
	return Config{
		MatchBuffer: DefaultMatchBuffer,
		Bounds: BoundsFilter{
			Enabled: true,
			MinLat:  37.744,
			MaxLat:  37.780,
			MinLon:  -122.426,
			MaxLon:  -122.407,
		},
	}
}
