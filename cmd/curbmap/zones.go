package main

import (
	"context"
	"encoding/json"
	"os"

	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/curbmap/sf/internal/convert"
	"github.com/curbmap/sf/internal/store"
	"github.com/curbmap/sf/internal/zones"
	"github.com/curbmap/sf/pkg/models"
)

var (
	zonesIn        string
	zonesParcels   string
	zonesOut       string
	zonesBuffer    float64
	zonesTolerance float64
	zonesCompress  bool
	zonesStore     bool

	zonesCmd = &cobra.Command{
		Use:   "zones",
		Short: "Derive permit-area polygons from a converted blockface bundle.",
		Run: func(cmd *cobra.Command, args []string) {
			runZones()
		},
	}
)

func init() {
	flags := zonesCmd.Flags()
	flags.StringVar(&zonesIn, "in", "blockfaces.json", "Converted blockface bundle.")
	flags.StringVar(&zonesParcels, "parcels", "", "Optional RPP parcels GeoJSON.")
	flags.StringVar(&zonesOut, "out", "zones.json", "Output bundle path.")
	flags.Float64Var(&zonesBuffer, "buffer", zones.DefaultZoneBuffer, "Zone buffer half-width in degrees.")
	flags.Float64Var(&zonesTolerance, "tolerance", zones.DefaultSimplifyTolerance, "Ring simplification tolerance in degrees. Zero disables.")
	flags.BoolVar(&zonesCompress, "compress", false, "Gzip the output bundle.")
	flags.BoolVar(&zonesStore, "store", false, "Also persist the zones to PostGIS (DATABASE_URL).")
}

func runZones() {
	log := zlog.With().Str("cmd", "zones").Logger()

	data, err := os.ReadFile(zonesIn)
	if err != nil {
		log.Error().Err(err).Msg("failed to read blockface bundle")
		os.Exit(1)
	}

	var blockfaces models.BlockfaceBundle
	if err := json.Unmarshal(data, &blockfaces); err != nil {
		log.Error().Err(err).Msg("failed to parse blockface bundle")
		os.Exit(1)
	}

	var parcels []zones.Parcel
	if zonesParcels != "" {
		parcels, err = zones.LoadParcels(zonesParcels)
		if err != nil {
			log.Error().Err(err).Msg("failed to load parcels")
			os.Exit(1)
		}
		log.Info().Int("parcels", len(parcels)).Msg("loaded parcels")
	}

	cfg := zones.Config{
		ZoneBuffer:        zonesBuffer,
		SimplifyTolerance: zonesTolerance,
	}

	bundle, err := zones.Derive(cfg, blockfaces.Blockfaces, parcels)
	if err != nil {
		log.Error().Err(err).Msg("zone derivation failed")
		os.Exit(1)
	}

	for _, warning := range convert.ValidateZones(bundle) {
		log.Warn().Msg(warning)
	}

	if err := convert.WriteBundle(zonesOut, bundle, zonesCompress); err != nil {
		log.Error().Err(err).Msg("failed to write bundle")
		os.Exit(1)
	}
	log.Info().Str("path", zonesOut).Int("zones", len(bundle.Zones)).Msg("wrote bundle")

	if zonesStore {
		if err := persistZones(bundle); err != nil {
			log.Error().Err(err).Msg("failed to persist zones")
			os.Exit(1)
		}
		log.Info().Msg("persisted zones")
	}
}

func persistZones(bundle *models.ZoneBundle) error {
	ctx := context.Background()

	db, err := store.NewPool(ctx, os.Getenv("DATABASE_URL"))
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.EnsureSchema(db); err != nil {
		return err
	}
	return store.SaveZones(db, bundle)
}
