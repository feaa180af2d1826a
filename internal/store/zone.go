package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/twpayne/go-geos"

	"github.com/curbmap/sf/pkg/models"
)

type ZoneRow struct {
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Geom        *geos.Geom `json:"geom"`
	MultiPermit []byte     `json:"multi_permit"`
	BlockCount  int        `json:"block_count"`
	MeterCount  int        `json:"meter_count"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (z *ZoneRow) scan(row pgx.Row) error {
	return row.Scan(
		&z.Code,
		&z.Name,
		&z.Geom,
		&z.MultiPermit,
		&z.BlockCount,
		&z.MeterCount,
		&z.UpdatedAt,
	)
}

// SaveZones upserts every zone in the bundle, keyed by code.
func SaveZones(db *pgxpool.Pool, bundle *models.ZoneBundle) error {
	for _, zone := range bundle.Zones {
		geom := zoneGeom(zone)
		if geom == nil {
			continue
		}

		multiPermit := zone.MultiPermitPolygons
		if multiPermit == nil {
			multiPermit = map[string][]string{}
		}
		encoded, err := json.Marshal(multiPermit)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		_, err = db.Exec(ctx, `
		INSERT INTO curbmap_zones (code, name, geom, multi_permit, block_count, meter_count, updated_at)
		VALUES ($1, $2, ST_SetSRID($3, 4326), $4, $5, $6, now())
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			geom = EXCLUDED.geom,
			multi_permit = EXCLUDED.multi_permit,
			block_count = EXCLUDED.block_count,
			meter_count = EXCLUDED.meter_count,
			updated_at = now()
		`, zone.Code, zone.Name, geom, encoded, zone.BlockCount, zone.MeterCount)
		cancel()
		if err != nil {
			return err
		}
	}

	return nil
}

// zoneGeom rebuilds the zone's rings as a GEOS multi-polygon.
func zoneGeom(zone models.Zone) *geos.Geom {
	var polys []*geos.Geom
	for _, ring := range zone.Polygon {
		if len(ring) < 4 {
			continue
		}
		if poly := geos.NewPolygon([][][]float64{ring}); poly != nil {
			polys = append(polys, poly)
		}
	}
	if len(polys) == 0 {
		return nil
	}
	return geos.NewCollection(geos.TypeIDMultiPolygon, polys)
}

// FindZoneByCode fetches one zone row. Returns nil when absent.
func FindZoneByCode(db *pgxpool.Pool, code string) (*ZoneRow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	row := db.QueryRow(ctx, `
	SELECT code, name, geom, multi_permit, block_count, meter_count, updated_at
	FROM curbmap_zones WHERE code = $1
	`, code)

	zone := &ZoneRow{}
	if err := zone.scan(row); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return zone, nil
}
