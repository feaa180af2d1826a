package convert

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"
)

// Stats accumulates per-record outcomes across a run. One bad record never
// aborts a pass; it lands here instead.
type Stats struct {
	Processed int
	Matched   int
	Unmatched int
	Skipped   int

	skipReasons map[string]int
	unmatched   map[SourceKind]int
}

func NewStats() *Stats {
	return &Stats{
		skipReasons: map[string]int{},
		unmatched:   map[SourceKind]int{},
	}
}

// Skip records a record dropped before matching, bucketed by reason.
func (s *Stats) Skip(reason string) {
	s.Processed++
	s.Skipped++
	s.skipReasons[reason]++
}

func (s *Stats) Match() {
	s.Processed++
	s.Matched++
}

// Unmatch records a record that survived loading but found no eligible
// blockface. High unmatched rates for directional-side regulations are
// expected, so these are summary counts rather than errors.
func (s *Stats) Unmatch(kind SourceKind) {
	s.Processed++
	s.Unmatched++
	s.unmatched[kind]++
}

// Log writes the run summary. Skip reasons are emitted in a stable order.
func (s *Stats) Log(log zerolog.Logger) {
	event := log.Info().
		Int("processed", s.Processed).
		Int("matched", s.Matched).
		Int("unmatched", s.Unmatched).
		Int("skipped", s.Skipped)

	for kind, count := range s.unmatched {
		event = event.Int(fmt.Sprintf("unmatched_%s", kind), count)
	}

	event.Msg("conversion complete")

	reasons := make([]string, 0, len(s.skipReasons))
	for reason := range s.skipReasons {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)

	for _, reason := range reasons {
		log.Warn().Int("count", s.skipReasons[reason]).Str("reason", reason).Msg("records skipped")
	}
}
