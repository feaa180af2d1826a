package main

import (
	"context"
	"os"

	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/curbmap/sf/internal/convert"
	"github.com/curbmap/sf/internal/store"
	"github.com/curbmap/sf/pkg/models"
)

var (
	convertInputs   convert.Inputs
	convertOut      string
	convertBuffer   float64
	convertNoBounds bool
	convertCompress bool
	convertStore    bool

	convertCmd = &cobra.Command{
		Use:   "convert",
		Short: "Match source records onto blockfaces and write the app bundle.",
		Run: func(cmd *cobra.Command, args []string) {
			runConvert()
		},
	}
)

func init() {
	flags := convertCmd.Flags()
	flags.StringVar(&convertInputs.Blockfaces, "blockfaces", "data/blockfaces.geojson", "Street-segment centerline GeoJSON.")
	flags.StringVar(&convertInputs.Regulations, "regulations", "", "Parking-regulation GeoJSON.")
	flags.StringVar(&convertInputs.Sweeping, "sweeping", "", "Street-sweeping schedule GeoJSON.")
	flags.StringVar(&convertInputs.Metered, "metered", "", "Metered-blockface GeoJSON.")
	flags.StringVar(&convertInputs.Meters, "meters", "", "Parking-meter GeoJSON.")
	flags.StringVar(&convertOut, "out", "blockfaces.json", "Output bundle path.")
	flags.Float64Var(&convertBuffer, "buffer", convert.DefaultMatchBuffer, "Match tolerance in degrees.")
	flags.BoolVar(&convertNoBounds, "no-bounds", false, "Disable the geographic bounds filter.")
	flags.BoolVar(&convertCompress, "compress", false, "Gzip the output bundle.")
	flags.BoolVar(&convertStore, "store", false, "Also persist the bundle to PostGIS (DATABASE_URL).")
}

func runConvert() {
	log := zlog.With().Str("cmd", "convert").Logger()

	cfg := convert.DefaultConfig()
	cfg.MatchBuffer = convertBuffer
	if convertNoBounds {
		cfg.Bounds.Enabled = false
	}

	bundle, _, err := convert.Run(cfg, convertInputs)
	if err != nil {
		log.Error().Err(err).Msg("conversion failed")
		os.Exit(1)
	}

	if err := convert.WriteBundle(convertOut, bundle, convertCompress); err != nil {
		log.Error().Err(err).Msg("failed to write bundle")
		os.Exit(1)
	}
	log.Info().Str("path", convertOut).Int("blockfaces", len(bundle.Blockfaces)).Msg("wrote bundle")

	if convertStore {
		if err := persistBlockfaces(bundle); err != nil {
			log.Error().Err(err).Msg("failed to persist bundle")
			os.Exit(1)
		}
		log.Info().Msg("persisted bundle")
	}
}

func persistBlockfaces(bundle *models.BlockfaceBundle) error {
	ctx := context.Background()

	db, err := store.NewPool(ctx, os.Getenv("DATABASE_URL"))
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.EnsureSchema(db); err != nil {
		return err
	}
	return store.SaveBlockfaces(db, bundle)
}
