package match

import (
	"cmp"
	"slices"
)

// DefaultThreshold is the minimum Similarity a candidate needs to be suggested.
const DefaultThreshold = 0.5

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit candidates whose similarity to target is at least
// threshold, best first. Ties keep the order of candidates and
// duplicate candidates are reported once.
func Suggest(target string, candidates []string, limit int, threshold float64) []string {
	if limit <= 0 || len(candidates) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(candidates))
	ranked := make([]scored, 0, len(candidates))

	for _, c := range candidates {
		if _, ok := seen[c]; ok {
			continue
		}

		seen[c] = struct{}{}

		if s := Similarity(target, c); s >= threshold {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for _, r := range ranked[:min(limit, len(ranked))] {
		out = append(out, r.name)
	}

	return out
}
