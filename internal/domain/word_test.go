package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCatalog(t *testing.T) {
	catalog := []WordRecord{
		{ID: "w1", Word: "山"},
		{ID: "", Word: "水"},
		{ID: "w3", Word: "火"},
	}

	normalized := NormalizeCatalog(catalog)

	assert.Len(t, normalized, 2)
	assert.Equal(t, "w1", normalized[0].ID)
	assert.Equal(t, "w3", normalized[1].ID)
}

func TestNormalizeCatalogEmpty(t *testing.T) {
	assert.Empty(t, NormalizeCatalog(nil))
	assert.Empty(t, NormalizeCatalog([]WordRecord{{Word: "山"}}))
}

func TestEnsureHistogram(t *testing.T) {
	p := &LearningProgress{WordsAtStage: []int{3, 1}}
	p.EnsureHistogram()

	assert.Len(t, p.WordsAtStage, StageCount)
	assert.Equal(t, []int{3, 1, 0, 0, 0, 0}, p.WordsAtStage)

	// Already full histograms are left alone.
	p.EnsureHistogram()
	assert.Len(t, p.WordsAtStage, StageCount)
}
