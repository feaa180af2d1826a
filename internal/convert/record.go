// Package convert matches San Francisco parking source records to blockface
// centerlines and aggregates the matched regulations into the app bundle.
package convert

import (
	"github.com/twpayne/go-geom"

	"github.com/curbmap/sf/pkg/models"
	"github.com/curbmap/sf/pkg/sfdata"
)

// SourceKind identifies which dataset a record came from. It is assigned at
// load time so the matcher never has to sniff field names.
type SourceKind string

const (
	SourceRegulation       SourceKind = "regulation"
	SourceSweeping         SourceKind = "sweeping"
	SourceMeteredBlockface SourceKind = "meteredBlockface"
	SourceMeter            SourceKind = "meter"
)

// Record is one external feature awaiting a blockface match. Exactly one of
// the payload pointers is set, according to Kind.
type Record struct {
	Kind   SourceKind
	Coords []geom.Coord

	Regulation *sfdata.RegulationRecord
	Sweeping   *sfdata.SweepingRecord
	Meter      *sfdata.MeterRecord
}

// Extract expands the record into canonical regulations using the extractor
// for its source kind.
func (r *Record) Extract(n *sfdata.Normalizer) []models.Regulation {
	switch r.Kind {
	case SourceRegulation:
		return n.ExtractRegulations(*r.Regulation)
	case SourceSweeping:
		return []models.Regulation{n.ExtractSweeping(*r.Sweeping)}
	case SourceMeteredBlockface:
		return []models.Regulation{n.ExtractMeteredBlockface()}
	case SourceMeter:
		return []models.Regulation{n.ExtractMeter(*r.Meter)}
	}
	return nil
}
