package sfdata

import (
	"sort"
	"strconv"
	"strings"

	"github.com/curbmap/sf/pkg/models"
)

// RegulationRecord is the canonical form of one parking-regulation feature's
// properties, resolved from the source dataset's aliased field names at load
// time.
type RegulationRecord struct {
	Regulation string // free-text category
	Days       string
	HoursBegin string
	HoursEnd   string
	HourLimit  string // hours, possibly fractional
	RPPAreas   []string
	Exceptions string
}

// PermitZones returns the record's permit-area codes, case-normalized,
// de-duplicated and sorted.
func (r *RegulationRecord) PermitZones() []string {
	seen := map[string]struct{}{}
	var zones []string
	for _, area := range r.RPPAreas {
		zone := strings.ToUpper(strings.TrimSpace(area))
		if zone == "" {
			continue
		}
		if _, ok := seen[zone]; ok {
			continue
		}
		seen[zone] = struct{}{}
		zones = append(zones, zone)
	}
	sort.Strings(zones)
	return zones
}

// TimeLimitMinutes converts the hour-limit field to minutes. Returns nil for
// empty or unparseable values.
func (r *RegulationRecord) TimeLimitMinutes() *int {
	s := strings.TrimSpace(r.HourLimit)
	if s == "" {
		return nil
	}
	hours, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	minutes := int(hours * 60)
	return &minutes
}

// ExtractRegulations expands one source record into canonical regulations.
// Multi-effect categories produce two entries sharing the same enforcement
// window: "pay or permit" splits into metered + residentialPermit, and a
// time limit carrying RPP areas splits into timeLimit + residentialPermit.
func (n *Normalizer) ExtractRegulations(rec RegulationRecord) []models.Regulation {
	zones := rec.PermitZones()
	timeLimit := rec.TimeLimitMinutes()
	days := n.ParseDays(rec.Days)
	start := ParseClock(rec.HoursBegin)
	end := ParseClock(rec.HoursEnd)

	var exceptions *string
	if e := strings.TrimSpace(rec.Exceptions); e != "" {
		exceptions = &e
	}

	base := models.Regulation{
		EnforcementDays:   days,
		EnforcementStart:  start,
		EnforcementEnd:    end,
		SpecialConditions: exceptions,
	}

	mapped := n.MapType(rec.Regulation)
	payOrPermit := strings.Contains(strings.ToLower(rec.Regulation), "pay or permit")

	switch {
	case payOrPermit:
		metered := base
		metered.Type = models.RegulationMetered
		metered.TimeLimit = timeLimit

		permit := base
		permit.Type = models.RegulationResidentialPermit
		setPermitZones(&permit, zones)

		return []models.Regulation{metered, permit}

	case mapped == models.RegulationTimeLimit && len(zones) > 0:
		limited := base
		limited.Type = models.RegulationTimeLimit
		limited.TimeLimit = timeLimit

		permit := base
		permit.Type = models.RegulationResidentialPermit
		setPermitZones(&permit, zones)
		exempt := "Exempt from time limits"
		if exceptions != nil {
			exempt = exempt + ". " + *exceptions
		}
		permit.SpecialConditions = &exempt

		return []models.Regulation{limited, permit}
	}

	single := base
	single.Type = mapped
	single.TimeLimit = timeLimit
	setPermitZones(&single, zones)

	return []models.Regulation{single}
}

func setPermitZones(reg *models.Regulation, zones []string) {
	if len(zones) == 0 {
		return
	}
	first := zones[0]
	reg.PermitZone = &first
	reg.PermitZones = zones
}
