package convert

import (
	"errors"

	zlog "github.com/rs/zerolog/log"

	"github.com/curbmap/sf/pkg/models"
	"github.com/curbmap/sf/pkg/sfdata"
)

// Inputs names the source dataset files for a run. Blockfaces is required;
// empty paths skip that dataset.
type Inputs struct {
	Blockfaces  string
	Regulations string
	Sweeping    string
	Metered     string
	Meters      string
}

// Run executes a full conversion pass: load, match, aggregate. Per-record
// failures accumulate in the returned stats; only an empty blockface set
// aborts.
func Run(cfg Config, inputs Inputs) (*models.BlockfaceBundle, *Stats, error) {
	log := zlog.With().Str("pass", "convert").Logger()

	stats := NewStats()
	normalizer := sfdata.NewNormalizer(sfdata.DefaultRules())

	blockfaces, err := LoadBlockfaces(inputs.Blockfaces, cfg, normalizer, stats)
	if err != nil {
		return nil, stats, err
	}
	if len(blockfaces) == 0 {
		return nil, stats, errors.New("no blockfaces loaded")
	}
	log.Info().Int("blockfaces", len(blockfaces)).Msg("loaded blockfaces")

	var records []Record
	sources := []struct {
		path string
		kind SourceKind
	}{
		{inputs.Regulations, SourceRegulation},
		{inputs.Sweeping, SourceSweeping},
		{inputs.Metered, SourceMeteredBlockface},
		{inputs.Meters, SourceMeter},
	}
	for _, src := range sources {
		if src.path == "" {
			continue
		}
		loaded, err := LoadRecords(src.path, src.kind, cfg, stats)
		if err != nil {
			return nil, stats, err
		}
		log.Info().Int("records", len(loaded)).Str("source", string(src.kind)).Msg("loaded records")
		records = append(records, loaded...)
	}
	if len(records) == 0 {
		log.Warn().Msg("no source records loaded; emitting blockfaces without matched regulations")
	}

	matcher := NewMatcher(cfg, blockfaces)
	for _, rec := range records {
		i, ok := matcher.Match(rec)
		if !ok {
			stats.Unmatch(rec.Kind)
			continue
		}
		blockfaces[i].Regulations = append(blockfaces[i].Regulations, rec.Extract(normalizer)...)
		stats.Match()
	}

	Aggregate(blockfaces, normalizer)

	bundle := &models.BlockfaceBundle{Blockfaces: make([]models.Blockface, len(blockfaces))}
	for i, bf := range blockfaces {
		bundle.Blockfaces[i] = *bf
	}

	stats.Log(log)
	for _, warning := range ValidateBlockfaces(bundle) {
		log.Warn().Msg(warning)
	}

	return bundle, stats, nil
}
