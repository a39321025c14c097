package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityRatio(t *testing.T) {
	t.Run("identical strings", func(t *testing.T) {
		assert.Equal(t, 1.0, SimilarityRatio("microsoft corporation", "microsoft corporation"))
	})

	t.Run("both empty", func(t *testing.T) {
		assert.Equal(t, 1.0, SimilarityRatio("", ""))
	})

	t.Run("one empty", func(t *testing.T) {
		assert.Equal(t, 0.0, SimilarityRatio("microsoft", ""))
		assert.Equal(t, 0.0, SimilarityRatio("", "microsoft"))
	})

	t.Run("common prefix", func(t *testing.T) {
		// "microsoft corp" is fully contained: 2*14/(21+14) = 0.8
		got := SimilarityRatio("microsoft corporation", "microsoft corp")
		assert.InDelta(t, 0.8, got, 0.01)
	})

	t.Run("near match stays above vendor threshold", func(t *testing.T) {
		got := SimilarityRatio("microsoft corporation", "microsoft corporatio")
		assert.Greater(t, got, 0.85)
	})

	t.Run("unrelated strings score low", func(t *testing.T) {
		got := SimilarityRatio("globex industrial supplies", "acme rocket powder")
		assert.Less(t, got, 0.5)
	})
}
