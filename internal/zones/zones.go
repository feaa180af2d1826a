// Package zones derives permit-area polygons from matched blockfaces and,
// when available, parcel footprints.
package zones

import (
	"errors"
	"fmt"
	"sort"

	zlog "github.com/rs/zerolog/log"

	"github.com/curbmap/sf/pkg/models"
)

// Default tunables in degrees. 0.00009 is roughly 10 meters at San
// Francisco's latitude.
const (
	DefaultZoneBuffer        = 0.00009
	DefaultSimplifyTolerance = 0.00002
)

// MeteredZoneCode is the synthetic code for the city-wide metered district.
const MeteredZoneCode = "METERED"

type Config struct {
	// ZoneBuffer is the half-width used when expanding blockface
	// centerlines into zone polygons.
	ZoneBuffer float64

	// SimplifyTolerance thins output rings. Zero disables simplification.
	SimplifyTolerance float64
}

func DefaultConfig() Config {
	return Config{
		ZoneBuffer:        DefaultZoneBuffer,
		SimplifyTolerance: DefaultSimplifyTolerance,
	}
}

// Derive runs the full zone pass: collect polygons per permit code, merge
// same-zone overlaps, split cross-zone overlaps, then assemble the bundle.
// Zones are regenerated wholesale; there is no incremental update.
func Derive(cfg Config, blockfaces []models.Blockface, parcels []Parcel) (*models.ZoneBundle, error) {
	log := zlog.With().Str("pass", "zones").Logger()

	if len(blockfaces) == 0 && len(parcels) == 0 {
		return nil, errors.New("no input geometries")
	}

	collected := collect(cfg, blockfaces, parcels)
	if len(collected.members) == 0 {
		log.Warn().Msg("no permit codes found; emitting empty zone bundle")
		return &models.ZoneBundle{Zones: []models.Zone{}}, nil
	}

	merged := mergeSameZone(collected.members)
	split := splitCrossZone(merged, log)

	codes := make([]string, 0, len(split))
	for code := range split {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	bundle := &models.ZoneBundle{Zones: make([]models.Zone, 0, len(codes))}
	for _, code := range codes {
		zone := assembleZone(cfg, code, split[code])
		zone.BlockCount = collected.blockCounts[code]
		zone.MeterCount = collected.meterCounts[code]
		bundle.Zones = append(bundle.Zones, zone)
		log.Info().
			Str("zone", code).
			Int("rings", len(zone.Polygon)).
			Int("blocks", zone.BlockCount).
			Msg("derived zone")
	}

	return bundle, nil
}

func zoneName(code string) string {
	if code == MeteredZoneCode {
		return "Metered District"
	}
	return fmt.Sprintf("Residential Permit Area %s", code)
}
