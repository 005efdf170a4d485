package names

import "strings"

// Similarity computes token-set (Jaccard) similarity between two strings after
// normalization. Identical normalized strings short-circuit to 1.0; two empty
// strings score 0. Symmetric by construction.
func Similarity(a, b string) float64 {
	na := Normalize(a)
	nb := Normalize(b)
	if na == "" && nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}

	setA := tokenSet(na)
	setB := tokenSet(nb)

	intersection := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func tokenSet(normalized string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(normalized) {
		set[tok] = struct{}{}
	}
	return set
}
