package zones

import (
	"sort"
)

// mergeSameZone unions each zone's polygons grouped by their exact
// multi-permit signature. Adjacent blockfaces sharing the same rule collapse
// into one ring; polygons with different signatures stay separate so the
// shared-ring map keeps its meaning.
func mergeSameZone(members map[string][]member) map[string][]member {
	out := make(map[string][]member, len(members))

	for code, list := range members {
		groups := map[string][]member{}
		var order []string
		for _, m := range list {
			key := m.signatureKey()
			if _, ok := groups[key]; !ok {
				order = append(order, key)
			}
			groups[key] = append(groups[key], m)
		}
		sort.Strings(order)

		merged := make([]member, 0, len(order))
		for _, key := range order {
			group := groups[key]
			union := group[0].poly
			for _, m := range group[1:] {
				next := union.Union(m.poly)
				union = repair(next, union)
			}
			merged = append(merged, member{signature: group[0].signature, poly: union})
		}

		out[code] = merged
	}

	return out
}
