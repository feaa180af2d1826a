package sfdata

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDays converts day shorthand into an explicit weekday set. Ranges
// ("M-F", "M-Sa", "DAILY") come from the range table; everything else is
// split on separators and mapped code by code ("Tu/Th", "M/W/F").
// Unrecognized tokens are dropped; nil is returned when nothing maps.
func (n *Normalizer) ParseDays(s string) []string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return nil
	}

	if days, ok := n.rules.DayRanges[s]; ok {
		out := make([]string, len(days))
		copy(out, days)
		return out
	}

	var days []string
	for _, code := range strings.Fields(strings.ReplaceAll(s, "/", " ")) {
		if day, ok := n.rules.DayCodes[code]; ok {
			days = append(days, day)
		}
	}

	return days
}

// ParseClock parses 3-4 digit 24-hour clock strings ("900", "1800") into
// HH:MM, left-padding as needed. Hour 24 wraps to 00. Returns nil when the
// input is empty or not a clock value.
func ParseClock(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	switch {
	case len(s) <= 2:
		s = strings.Repeat("0", 2-len(s)) + s + "00"
	case len(s) == 3:
		s = "0" + s
	}

	hours, err := strconv.Atoi(s[:len(s)-2])
	if err != nil {
		return nil
	}
	minutes, err := strconv.Atoi(s[len(s)-2:])
	if err != nil {
		return nil
	}

	if hours >= 24 {
		hours = 0
	}

	formatted := fmt.Sprintf("%02d:%02d", hours, minutes)
	return &formatted
}
