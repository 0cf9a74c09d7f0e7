package importer

import "sort"

// TopN returns the n highest-weighted keys in descending weight order.
// Ties break toward the lexicographically smaller key, which stands in for
// the source's enumeration order since Go maps have none. The input is
// never mutated; an empty map yields nothing rather than failing.
func TopN(weights map[string]float64, n int) []string {
	if n <= 0 || len(weights) == 0 {
		return nil
	}

	keys := make([]string, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if weights[keys[i]] != weights[keys[j]] {
			return weights[keys[i]] > weights[keys[j]]
		}
		return keys[i] < keys[j]
	})

	if n > len(keys) {
		n = len(keys)
	}
	return keys[:n]
}

// Top returns the single highest-weighted key, strictly-greater comparison
// so the earliest key wins ties. The second return is false for an empty
// map, which signals "no data".
func Top(weights map[string]float64) (string, bool) {
	top := TopN(weights, 1)
	if len(top) == 0 {
		return "", false
	}
	return top[0], true
}
