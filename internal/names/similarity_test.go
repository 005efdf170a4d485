package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityIdentity(t *testing.T) {
	for _, s := range []string{"Arsenal", "Real Madrid", "Schalke 04", "x"} {
		assert.Equal(t, 1.0, Similarity(s, s), "identity for %q", s)
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	pairs := [][2]string{
		{"Manchester United", "Man United"},
		{"Real Madrid", "Liverpool"},
		{"", "Arsenal"},
	}
	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]))
	}
}

func TestSimilarityJaccard(t *testing.T) {
	// {real, madrid} vs {real, sociedad}: 1 shared of 3 total.
	assert.InDelta(t, 1.0/3.0, Similarity("Real Madrid", "Real Sociedad"), 1e-9)

	// Disjoint token sets score zero.
	assert.Equal(t, 0.0, Similarity("Arsenal", "Chelsea"))

	// Both empty is 0, not a division by zero.
	assert.Equal(t, 0.0, Similarity("", ""))
	assert.Equal(t, 0.0, Similarity("***", "---"))
}

func TestAliasResolutionLiftsSimilarity(t *testing.T) {
	raw := Similarity("Manchester United", "Man Utd")
	resolved := Similarity(CanonicalTeam("Manchester United"), CanonicalTeam("Man Utd"))

	assert.GreaterOrEqual(t, resolved, raw, "canonical resolution must not lower the score")
	assert.GreaterOrEqual(t, resolved, 0.6)

	// Alias substitution alone also never lowers the score for mapped tokens.
	aliased := Similarity(ApplyAliases("Manchester United"), ApplyAliases("Man Utd"))
	assert.GreaterOrEqual(t, aliased, raw)
}
