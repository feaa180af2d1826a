package sfdata

import (
	"strings"

	"github.com/curbmap/sf/pkg/models"
)

// MeterRecord is the canonical form of one parking-meter feature.
type MeterRecord struct {
	PostID     string
	StreetName string
	CapColor   string
	RateArea   string
}

var meteredDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// ExtractMeteredBlockface returns the default metered regulation for a
// metered-blockface marker, whose presence alone signals metering. Typical SF
// meter hours are assumed since the dataset carries none.
func (n *Normalizer) ExtractMeteredBlockface() models.Regulation {
	start := "09:00"
	end := "18:00"
	conditions := "Metered parking - rates vary by location and time"

	return models.Regulation{
		Type:              models.RegulationMetered,
		EnforcementDays:   append([]string(nil), meteredDays...),
		EnforcementStart:  &start,
		EnforcementEnd:    &end,
		SpecialConditions: &conditions,
	}
}

// ExtractMeter converts a parking-meter point record into a metered
// regulation. The cap color implies the time limit.
func (n *Normalizer) ExtractMeter(rec MeterRecord) models.Regulation {
	reg := n.ExtractMeteredBlockface()
	reg.SourceStreet = strings.TrimSpace(rec.StreetName)

	if limit, ok := n.rules.CapColorLimits[strings.ToUpper(strings.TrimSpace(rec.CapColor))]; ok {
		reg.TimeLimit = &limit
	}

	return reg
}
