package sfdata

import (
	"strings"

	"github.com/curbmap/sf/pkg/models"
)

// StreetInfo is the cross-street context parsed from a centerline feature's
// popup text.
type StreetInfo struct {
	Street string
	From   string
	To     string
}

// ParseStreetInfo parses "{street} between {from} and {to}, {side} side"
// popup text. Unparseable text falls back to the whole string as the street
// name with unknown cross streets.
func ParseStreetInfo(popup string) StreetInfo {
	if popup == "" {
		return StreetInfo{Street: UnknownStreet, From: "Unknown", To: "Unknown"}
	}

	if strings.Contains(popup, " between ") {
		parts := strings.SplitN(popup, " between ", 2)
		street := strings.TrimSpace(parts[0])
		rest := parts[1]

		// Drop the trailing ", {side} side" clause.
		if i := strings.Index(rest, ", "); i >= 0 {
			rest = rest[:i]
		}

		if strings.Contains(rest, " and ") {
			fromTo := strings.SplitN(rest, " and ", 2)
			return StreetInfo{
				Street: street,
				From:   strings.TrimSpace(fromTo[0]),
				To:     strings.TrimSpace(fromTo[1]),
			}
		}
	}

	street := popup
	if i := strings.Index(popup, ","); i >= 0 {
		street = popup[:i]
	}
	return StreetInfo{Street: strings.TrimSpace(street), From: "Unknown", To: "Unknown"}
}

// ParseSide extracts the blockface side from popup text. Cardinal directions
// are converted to address parity by the SF convention (even addresses on the
// north and west sides, odd on the south and east). Returns UNKNOWN when the
// popup carries no side clause.
func ParseSide(popup string) models.Side {
	lower := strings.ToLower(popup)

	switch {
	case strings.Contains(lower, "north side"):
		return models.SideEven
	case strings.Contains(lower, "south side"):
		return models.SideOdd
	case strings.Contains(lower, "east side"):
		return models.SideOdd
	case strings.Contains(lower, "west side"):
		return models.SideEven
	case strings.Contains(lower, "odd side"):
		return models.SideOdd
	case strings.Contains(lower, "even side"):
		return models.SideEven
	}

	return models.SideUnknown
}
