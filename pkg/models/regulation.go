package models

import (
	"fmt"
	"sort"
	"strings"
)

// The canonical regulation categories understood by the app.
type RegulationType string

const (
	RegulationTimeLimit         RegulationType = "timeLimit"
	RegulationResidentialPermit RegulationType = "residentialPermit"
	RegulationStreetCleaning    RegulationType = "streetCleaning"
	RegulationMetered           RegulationType = "metered"
	RegulationNoParking         RegulationType = "noParking"
	RegulationTowAway           RegulationType = "towAway"
	RegulationLoadingZone       RegulationType = "loadingZone"
	RegulationOther             RegulationType = "other"
)

// Lower value = more restrictive. Used for optional presentation sorting;
// the pipeline itself stores regulations in match order.
var regulationPriority = map[RegulationType]int{
	RegulationNoParking:         1,
	RegulationTowAway:           2,
	RegulationStreetCleaning:    3,
	RegulationMetered:           4,
	RegulationTimeLimit:         5,
	RegulationResidentialPermit: 6,
	RegulationLoadingZone:       7,
	RegulationOther:             8,
}

func (t RegulationType) Priority() int {
	if p, ok := regulationPriority[t]; ok {
		return p
	}
	return 99
}

// One enforceable rule attached to a blockface. Optional fields are emitted
// as JSON null when absent, matching the app bundle schema.
type Regulation struct {
	Type              RegulationType `json:"type"`
	PermitZone        *string        `json:"permitZone"`
	PermitZones       []string       `json:"permitZones"`
	TimeLimit         *int           `json:"timeLimit"` // minutes
	MeterRate         *float64       `json:"meterRate"`
	EnforcementDays   []string       `json:"enforcementDays"`
	EnforcementStart  *string        `json:"enforcementStart"` // HH:MM
	EnforcementEnd    *string        `json:"enforcementEnd"`   // HH:MM
	SpecialConditions *string        `json:"specialConditions"`

	// SourceStreet carries the source dataset's street label so an
	// unresolved blockface name can be backfilled after matching.
	// Stripped before output.
	SourceStreet string `json:"-"`
}

// Key returns the deduplication key for the regulation: every non-null field
// except the meter rate. Two regulations with equal keys collapse to one.
func (r *Regulation) Key() string {
	var b strings.Builder

	b.WriteString(string(r.Type))
	if r.PermitZone != nil {
		fmt.Fprintf(&b, "|permitZone=%s", *r.PermitZone)
	}
	if r.PermitZones != nil {
		fmt.Fprintf(&b, "|permitZones=%s", strings.Join(r.PermitZones, ","))
	}
	if r.TimeLimit != nil {
		fmt.Fprintf(&b, "|timeLimit=%d", *r.TimeLimit)
	}
	if r.EnforcementDays != nil {
		fmt.Fprintf(&b, "|days=%s", strings.Join(r.EnforcementDays, ","))
	}
	if r.EnforcementStart != nil {
		fmt.Fprintf(&b, "|start=%s", *r.EnforcementStart)
	}
	if r.EnforcementEnd != nil {
		fmt.Fprintf(&b, "|end=%s", *r.EnforcementEnd)
	}
	if r.SpecialConditions != nil {
		fmt.Fprintf(&b, "|conditions=%s", *r.SpecialConditions)
	}
	if r.SourceStreet != "" {
		fmt.Fprintf(&b, "|sourceStreet=%s", r.SourceStreet)
	}

	return b.String()
}

// SortByPriority orders regulations most restrictive first, with the type
// name as a stable secondary key.
func SortByPriority(regulations []Regulation) {
	sort.SliceStable(regulations, func(i, j int) bool {
		pi, pj := regulations[i].Type.Priority(), regulations[j].Type.Priority()
		if pi != pj {
			return pi < pj
		}
		return regulations[i].Type < regulations[j].Type
	})
}
