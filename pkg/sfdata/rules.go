// Package sfdata normalizes raw San Francisco open-data fields into the
// canonical regulation schema.
package sfdata

import "github.com/curbmap/sf/pkg/models"

// A single keyword rule mapping free-text regulation categories onto a
// canonical type. Rules are evaluated in order and match case-insensitively
// on substrings.
type TypeRule struct {
	Contains string
	Type     models.RegulationType
}

// Rules holds every lookup table the normalizer needs. Tables are injected at
// construction so they can be swapped per city or per test.
type Rules struct {
	// Ordered keyword rules for single-type mapping. Multi-effect rules
	// (pay-or-permit, time-limited with RPP) are recognized by the
	// extractor before these apply.
	Types []TypeRule

	// Day-range shorthand ("M-F") to explicit weekday sets.
	DayRanges map[string][]string

	// Single day codes ("TU") to weekday names.
	DayCodes map[string]string

	// Weekday prefixes used by the sweeping dataset ("Tues" -> "tuesday").
	// Ordered so longer prefixes win over their own prefixes.
	WeekdayPrefixes [][2]string

	// Street suffix abbreviations ("St" -> "Street").
	Suffixes [][2]string

	// Meter cap color to time limit in minutes.
	CapColorLimits map[string]int
}

// DefaultRules returns the rule tables for San Francisco's datasets.
func DefaultRules() Rules {
	return Rules{
		Types: []TypeRule{
			{"street cleaning", models.RegulationStreetCleaning},
			{"street sweeping", models.RegulationStreetCleaning},
			{"residential permit", models.RegulationResidentialPermit},
			{"rpp", models.RegulationResidentialPermit},
			{"time limited", models.RegulationTimeLimit},
			{"no parking", models.RegulationNoParking},
			{"metered", models.RegulationMetered},
			{"pay or permit", models.RegulationMetered},
			{"tow", models.RegulationTowAway},
			{"loading", models.RegulationLoadingZone},
			{"oversized", models.RegulationOther},
		},
		DayRanges: map[string][]string{
			"DAILY": {"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
			"M-SU":  {"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
			"M-F":   {"monday", "tuesday", "wednesday", "thursday", "friday"},
			"M-SA":  {"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"},
		},
		DayCodes: map[string]string{
			"M":  "monday",
			"TU": "tuesday",
			"W":  "wednesday",
			"TH": "thursday",
			"F":  "friday",
			"SA": "saturday",
			"SU": "sunday",
		},
		WeekdayPrefixes: [][2]string{
			{"mon", "monday"},
			{"tues", "tuesday"},
			{"tue", "tuesday"},
			{"wed", "wednesday"},
			{"thurs", "thursday"},
			{"thu", "thursday"},
			{"fri", "friday"},
			{"sat", "saturday"},
			{"sun", "sunday"},
			{"holiday", "holiday"},
		},
		Suffixes: [][2]string{
			{"St", "Street"},
			{"Ave", "Avenue"},
			{"Blvd", "Boulevard"},
			{"Dr", "Drive"},
			{"Rd", "Road"},
			{"Ln", "Lane"},
			{"Ct", "Court"},
			{"Pl", "Place"},
			{"Ter", "Terrace"},
			{"Hwy", "Highway"},
			{"Pkwy", "Parkway"},
			{"Cir", "Circle"},
		},
		CapColorLimits: map[string]int{
			"GREEN":  15,
			"YELLOW": 30,
			"GREY":   60,
			"GRAY":   60,
			"BROWN":  120,
		},
	}
}
