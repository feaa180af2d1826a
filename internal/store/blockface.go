package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/twpayne/go-geos"

	"github.com/curbmap/sf/pkg/geometry"
	"github.com/curbmap/sf/pkg/models"
)

type BlockfaceRow struct {
	ID          string     `json:"id"`
	Street      string     `json:"street"`
	FromStreet  string     `json:"from_street"`
	ToStreet    string     `json:"to_street"`
	Side        string     `json:"side"`
	Geom        *geos.Geom `json:"geom"`
	Regulations []byte     `json:"regulations"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (bf *BlockfaceRow) scan(row pgx.Row) error {
	return row.Scan(
		&bf.ID,
		&bf.Street,
		&bf.FromStreet,
		&bf.ToStreet,
		&bf.Side,
		&bf.Geom,
		&bf.Regulations,
		&bf.UpdatedAt,
	)
}

// SaveBlockfaces upserts every blockface in the bundle. Runs replace rows
// wholesale; the id is the conflict key.
func SaveBlockfaces(db *pgxpool.Pool, bundle *models.BlockfaceBundle) error {
	for _, bf := range bundle.Blockfaces {
		regulations, err := json.Marshal(bf.Regulations)
		if err != nil {
			return err
		}

		geom := geometry.GeosLineString(geometry.FromFloat(bf.Geometry.Coordinates))

		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		_, err = db.Exec(ctx, `
		INSERT INTO curbmap_blockfaces (id, street, from_street, to_street, side, geom, regulations, updated_at)
		VALUES ($1, $2, $3, $4, $5, ST_SetSRID($6, 4326), $7, now())
		ON CONFLICT (id) DO UPDATE SET
			street = EXCLUDED.street,
			from_street = EXCLUDED.from_street,
			to_street = EXCLUDED.to_street,
			side = EXCLUDED.side,
			geom = EXCLUDED.geom,
			regulations = EXCLUDED.regulations,
			updated_at = now()
		`, bf.ID, bf.Street, bf.FromStreet, bf.ToStreet, string(bf.Side), geom, regulations)
		cancel()
		if err != nil {
			return err
		}
	}

	return nil
}

// FindBlockfaceByID fetches one blockface row. Returns nil when absent.
func FindBlockfaceByID(db *pgxpool.Pool, id string) (*BlockfaceRow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	row := db.QueryRow(ctx, `
	SELECT id, street, from_street, to_street, side, geom, regulations, updated_at
	FROM curbmap_blockfaces WHERE id = $1
	`, id)

	bf := &BlockfaceRow{}
	if err := bf.scan(row); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return bf, nil
}

// FindBlockfacesNear returns the blockfaces whose geometry lies within the
// given distance (degrees) of a point.
func FindBlockfacesNear(db *pgxpool.Pool, lon, lat, distance float64) ([]*BlockfaceRow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := db.Query(ctx, `
	SELECT id, street, from_street, to_street, side, geom, regulations, updated_at
	FROM curbmap_blockfaces
	WHERE ST_DWithin(geom, ST_SetSRID(ST_MakePoint($1, $2), 4326), $3)
	`, lon, lat, distance)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blockfaces []*BlockfaceRow
	for rows.Next() {
		bf := &BlockfaceRow{}
		if err := bf.scan(rows); err != nil {
			return nil, err
		}
		blockfaces = append(blockfaces, bf)
	}

	return blockfaces, nil
}
