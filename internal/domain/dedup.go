package domain

import (
	"strconv"

	m "github.com/tomodakengo/playwright-ai/internal/model"
)

// Deduplicate returns a batch with pairwise-unique identifiers. The
// first occurrence of a name keeps it unchanged; later collisions probe
// name2, name3, ... until a free candidate is found, checking suffixed
// names against everything already emitted. The policy is input-order
// dependent on purpose: reordering elements changes who wins the plain
// name.
func Deduplicate(batch m.ResolvedBatch) m.ResolvedBatch {
	seen := make(map[string]struct{}, len(batch))
	out := make(m.ResolvedBatch, 0, len(batch))

	for _, element := range batch {
		name := element.Identifier
		if _, taken := seen[name]; taken {
			for n := 2; ; n++ {
				candidate := element.Identifier + strconv.Itoa(n)
				if _, taken := seen[candidate]; !taken {
					name = candidate
					break
				}
			}
		}

		seen[name] = struct{}{}
		element.Identifier = name
		out = append(out, element)
	}

	return out
}
