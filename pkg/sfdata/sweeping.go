package sfdata

import (
	"fmt"
	"strings"

	"github.com/curbmap/sf/pkg/models"
)

// SweepingRecord is the canonical form of one street-sweeping schedule entry.
type SweepingRecord struct {
	Weekday  string
	FromHour int
	ToHour   int
	Weeks    [5]bool // week-of-month bit flags
	Corridor string  // source street name, used for backfill
}

// ExtractSweeping converts a sweeping schedule entry into a streetCleaning
// regulation. The week-of-month pattern lands in the special conditions and
// the corridor is carried as the street backfill hint.
func (n *Normalizer) ExtractSweeping(rec SweepingRecord) models.Regulation {
	weekday := n.normalizeWeekday(rec.Weekday)

	var days []string
	if weekday != "" {
		days = []string{weekday}
	}

	start := fmt.Sprintf("%02d:00", clampHour(rec.FromHour))
	end := fmt.Sprintf("%02d:00", clampHour(rec.ToHour))
	conditions := weekPattern(rec.Weeks)

	return models.Regulation{
		Type:              models.RegulationStreetCleaning,
		EnforcementDays:   days,
		EnforcementStart:  &start,
		EnforcementEnd:    &end,
		SpecialConditions: &conditions,
		SourceStreet:      strings.TrimSpace(rec.Corridor),
	}
}

func (n *Normalizer) normalizeWeekday(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for _, p := range n.rules.WeekdayPrefixes {
		if strings.HasPrefix(raw, p[0]) {
			return p[1]
		}
	}
	return raw
}

func clampHour(h int) int {
	if h < 0 || h > 23 {
		return 0
	}
	return h
}

// weekPattern renders the week1..5 bit flags as human-readable text.
func weekPattern(weeks [5]bool) string {
	names := []string{"1st", "2nd", "3rd", "4th", "5th"}

	var active []string
	for i, on := range weeks {
		if on {
			active = append(active, names[i])
		}
	}

	switch {
	case len(active) == 5:
		return "Street cleaning every week"
	case len(active) == 0:
		return "Street cleaning (schedule TBD)"
	}

	key := strings.Join(active, ",")
	switch key {
	case "1st,3rd", "1st,3rd,5th":
		return "Street cleaning on odd weeks"
	case "2nd,4th":
		return "Street cleaning on even weeks"
	}

	joined := active[0]
	if len(active) > 1 {
		joined = strings.Join(active[:len(active)-1], ", ") + " and " + active[len(active)-1]
	}
	return fmt.Sprintf("Street cleaning %s week of month", joined)
}
