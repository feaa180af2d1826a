package sfdata

import (
	"regexp"
	"strings"

	"github.com/curbmap/sf/pkg/models"
)

// The sentinel street name for blockfaces whose popup text could not be
// resolved. Backfilled later from matched regulation metadata when possible.
const UnknownStreet = "Unknown Street"

type suffixPattern struct {
	re   *regexp.Regexp
	full string
}

// Normalizer maps raw dataset fields to the canonical regulation schema
// using injected rule tables.
type Normalizer struct {
	rules    Rules
	suffixes []suffixPattern
}

var leadingZeros = regexp.MustCompile(`\b0+(\d)`)

func NewNormalizer(rules Rules) *Normalizer {
	n := &Normalizer{rules: rules}
	for _, s := range rules.Suffixes {
		n.suffixes = append(n.suffixes, suffixPattern{
			re:   regexp.MustCompile(`\b` + s[0] + `$`),
			full: s[1],
		})
	}
	return n
}

// MapType maps a free-text regulation category to a canonical type via the
// ordered keyword rules. Unrecognized text maps to "other".
func (n *Normalizer) MapType(raw string) models.RegulationType {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return models.RegulationOther
	}
	for _, rule := range n.rules.Types {
		if strings.Contains(lower, rule.Contains) {
			return rule.Type
		}
	}
	return models.RegulationOther
}

// NormalizeStreetName expands abbreviated street suffixes ("St" -> "Street")
// and strips leading zeros from numbered streets ("08th" -> "8th"). Empty
// input normalizes to the unknown-street sentinel.
func (n *Normalizer) NormalizeStreetName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return UnknownStreet
	}

	name = leadingZeros.ReplaceAllString(name, "$1")

	for _, s := range n.suffixes {
		if s.re.MatchString(name) {
			name = s.re.ReplaceAllString(name, s.full)
			break
		}
	}

	return name
}
