package convert

import (
	"github.com/curbmap/sf/pkg/models"
	"github.com/curbmap/sf/pkg/sfdata"
)

// Aggregate finalizes each blockface after matching: duplicate regulations
// collapse, unresolved street names are backfilled from source hints, and
// the internal hint field is stripped before output.
func Aggregate(blockfaces []*models.Blockface, n *sfdata.Normalizer) {
	for _, bf := range blockfaces {
		bf.Regulations = dedupe(bf.Regulations)
		backfillStreet(bf, n)
		for i := range bf.Regulations {
			bf.Regulations[i].SourceStreet = ""
		}
	}
}

// dedupe collapses regulations with equal keys, keeping the first occurrence
// so match order is preserved.
func dedupe(regulations []models.Regulation) []models.Regulation {
	if len(regulations) < 2 {
		return regulations
	}

	seen := make(map[string]struct{}, len(regulations))
	out := regulations[:0]
	for _, reg := range regulations {
		key := reg.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, reg)
	}
	return out
}

// backfillStreet adopts the first source-street hint when the blockface's own
// name never resolved.
func backfillStreet(bf *models.Blockface, n *sfdata.Normalizer) {
	if bf.Street != sfdata.UnknownStreet {
		return
	}
	for _, reg := range bf.Regulations {
		if reg.SourceStreet != "" {
			bf.Street = n.NormalizeStreetName(reg.SourceStreet)
			return
		}
	}
}
