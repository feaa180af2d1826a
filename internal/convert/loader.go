package convert

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/curbmap/sf/pkg/geometry"
	"github.com/curbmap/sf/pkg/models"
	"github.com/curbmap/sf/pkg/sfdata"
)

// prop resolves a property across the aliased field names the open-data
// portal uses (lowercase, uppercase, underscore variants).
func prop(props gjson.Result, names ...string) string {
	for _, name := range names {
		if v := props.Get(name); v.Exists() {
			return strings.TrimSpace(v.String())
		}
	}
	return ""
}

func propInt(props gjson.Result, names ...string) int {
	for _, name := range names {
		if v := props.Get(name); v.Exists() {
			return int(v.Int())
		}
	}
	return 0
}

// featureCoords parses a feature's geometry and flattens it to a vertex
// sequence. Returns nil when the geometry is missing or unparseable.
func featureCoords(feature gjson.Result) []geom.Coord {
	raw := feature.Get("geometry")
	if !raw.Exists() {
		return nil
	}

	var g geom.T
	if err := geojson.Unmarshal([]byte(raw.Raw), &g); err != nil {
		return nil
	}

	return geometry.Flatten(g)
}

// LoadBlockfaces reads street-segment centerline features and builds one
// blockface per feature. The side and cross streets come from the popup
// text; explicit RPP fields on the segment contribute regulations directly.
func LoadBlockfaces(path string, cfg Config, n *sfdata.Normalizer, stats *Stats) ([]*models.Blockface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read blockfaces: %w", err)
	}

	var blockfaces []*models.Blockface

	features := gjson.GetBytes(data, "features")
	features.ForEach(func(_, feature gjson.Result) bool {
		coords := featureCoords(feature)
		if len(coords) < 2 {
			stats.Skip("blockface: missing or degenerate geometry")
			return true
		}
		if !cfg.Bounds.ContainsLine(coords) {
			stats.Skip("blockface: outside bounds")
			return true
		}

		props := feature.Get("properties")
		popup := prop(props, "popup", "description", "POPUP")

		info := sfdata.ParseStreetInfo(popup)

		id := prop(props, "id", "cnn", "objectid", "OBJECTID")
		if id == "" {
			id = fmt.Sprintf("bf-%04d", len(blockfaces))
		}

		bf := &models.Blockface{
			ID:         id,
			Street:     n.NormalizeStreetName(info.Street),
			FromStreet: info.From,
			ToStreet:   info.To,
			Side:       sfdata.ParseSide(popup),
			Geometry: models.LineGeometry{
				Type:        "LineString",
				Coordinates: geometry.ToFloat(coords),
			},
			Regulations: []models.Regulation{},
		}

		// Some centerline extracts carry their own permit fields.
		if rec := segmentRegulation(props); rec != nil {
			bf.Regulations = append(bf.Regulations, n.ExtractRegulations(*rec)...)
		}

		blockfaces = append(blockfaces, bf)
		return true
	})

	return blockfaces, nil
}

// segmentRegulation lifts explicit regulation fields carried on a centerline
// feature, when present.
func segmentRegulation(props gjson.Result) *sfdata.RegulationRecord {
	rec := regulationRecord(props)
	if rec.Regulation == "" && len(rec.RPPAreas) == 0 {
		return nil
	}
	if rec.Regulation == "" {
		rec.Regulation = "Residential Permit Parking"
	}
	return &rec
}

func regulationRecord(props gjson.Result) sfdata.RegulationRecord {
	var areas []string
	for _, name := range []string{"rpparea1", "rpparea2", "rpparea3"} {
		if v := prop(props, name, strings.ToUpper(name)); v != "" {
			areas = append(areas, v)
		}
	}

	return sfdata.RegulationRecord{
		Regulation: prop(props, "regulation", "REGULATION"),
		Days:       prop(props, "days", "DAYS"),
		HoursBegin: prop(props, "hrs_begin", "HRS_BEGIN", "from_time"),
		HoursEnd:   prop(props, "hrs_end", "HRS_END", "to_time"),
		HourLimit:  prop(props, "hrlimit", "HRLIMIT", "hour_limit"),
		RPPAreas:   areas,
		Exceptions: prop(props, "exceptions", "EXCEPTIONS", "except"),
	}
}

// LoadRecords reads one source dataset into tagged records. Kind determines
// which properties are lifted; the matcher never inspects raw fields.
func LoadRecords(path string, kind SourceKind, cfg Config, stats *Stats) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s records: %w", kind, err)
	}

	var records []Record

	features := gjson.GetBytes(data, "features")
	features.ForEach(func(_, feature gjson.Result) bool {
		coords := featureCoords(feature)
		if len(coords) == 0 {
			stats.Skip(fmt.Sprintf("%s: missing geometry", kind))
			return true
		}
		if !cfg.Bounds.ContainsLine(coords) {
			stats.Skip(fmt.Sprintf("%s: outside bounds", kind))
			return true
		}

		props := feature.Get("properties")
		rec := Record{Kind: kind, Coords: coords}

		switch kind {
		case SourceRegulation:
			r := regulationRecord(props)
			rec.Regulation = &r
		case SourceSweeping:
			s := sweepingRecord(props)
			rec.Sweeping = &s
		case SourceMeter:
			m := meterRecord(props)
			rec.Meter = &m
		}

		records = append(records, rec)
		return true
	})

	return records, nil
}

func sweepingRecord(props gjson.Result) sfdata.SweepingRecord {
	var weeks [5]bool
	for i := range weeks {
		name := fmt.Sprintf("week%d", i+1)
		weeks[i] = propInt(props, name, strings.ToUpper(name)) == 1
	}

	return sfdata.SweepingRecord{
		Weekday:  prop(props, "weekday", "WEEKDAY", "wkday"),
		FromHour: propInt(props, "fromhour", "FROMHOUR", "from_hour"),
		ToHour:   propInt(props, "tohour", "TOHOUR", "to_hour"),
		Weeks:    weeks,
		Corridor: prop(props, "corridor", "CORRIDOR", "streetname"),
	}
}

func meterRecord(props gjson.Result) sfdata.MeterRecord {
	return sfdata.MeterRecord{
		PostID:     prop(props, "post_id", "POST_ID"),
		StreetName: prop(props, "street_name", "STREET_NAME", "streetname"),
		CapColor:   prop(props, "cap_color", "CAP_COLOR"),
		RateArea:   prop(props, "rate_area", "RATE_AREA"),
	}
}
