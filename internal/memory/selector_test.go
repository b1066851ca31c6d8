package memory

import (
	"math/rand"
	"testing"
	"time"

	"github.com/dts-gxu/CiJingTong/internal/domain"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int {
	return &n
}

func testSelector() *Selector {
	return NewSelector(rand.New(rand.NewSource(42)))
}

func rankedCatalog(n int) []domain.WordRecord {
	catalog := make([]domain.WordRecord, 0, n)
	for i := 0; i < n; i++ {
		catalog = append(catalog, domain.WordRecord{
			ID:   string(rune('a' + i)),
			Word: "词",
			Rank: intPtr(i + 1),
		})
	}
	return catalog
}

func TestSelector_EmptyCatalog(t *testing.T) {
	now := time.Now()
	progress := domain.NewLearningProgress()
	progress.LastLearnDate = domain.DateString(now)

	batch, err := testSelector().NextGroup(nil, domain.StatusMap{}, 7, progress, DefaultLimits, now)

	assert.NoError(t, err)
	assert.Empty(t, batch.Words)
	assert.Equal(t, 0, batch.ReviewCount)
	assert.Equal(t, 0, batch.NewCount)
}

func TestSelector_AllNewWordsBackfill(t *testing.T) {
	// 10 unseen words, size 7: targetNew=5, targetReview=2, empty review
	// pool, so the new pool backfills to 7.
	now := time.Now()
	progress := domain.NewLearningProgress()
	progress.LastLearnDate = domain.DateString(now)

	batch, err := testSelector().NextGroup(rankedCatalog(10), domain.StatusMap{}, 7, progress, DefaultLimits, now)

	assert.NoError(t, err)
	assert.Len(t, batch.Words, 7)
	assert.Equal(t, 7, batch.NewCount)
	assert.Equal(t, 0, batch.ReviewCount)
}

func TestSelector_ZeroSizeSkipsQuota(t *testing.T) {
	// requestedSize 0 must not touch the quota state at all.
	now := time.Now()
	progress := domain.NewLearningProgress()
	progress.LastLearnDate = "2020-01-01"

	batch, err := testSelector().NextGroup(rankedCatalog(3), domain.StatusMap{}, 0, progress, DefaultLimits, now)

	assert.NoError(t, err)
	assert.Empty(t, batch.Words)
	assert.Equal(t, "2020-01-01", progress.LastLearnDate)
}

func TestSelector_QuotaRejectionGivesEmptyBatch(t *testing.T) {
	now := time.Now()
	progress := domain.NewLearningProgress()
	progress.LastLearnDate = domain.DateString(now)
	progress.DailyLearnedCount = 20

	batch, err := testSelector().NextGroup(rankedCatalog(10), domain.StatusMap{}, 7, progress, DefaultLimits, now)

	assert.NoError(t, err)
	assert.Empty(t, batch.Words)
}

func TestSelector_ClampsToRemaining(t *testing.T) {
	now := time.Now()
	progress := domain.NewLearningProgress()
	progress.LastLearnDate = domain.DateString(now)
	progress.DailyLearnedCount = 17 // 3 remaining

	batch, err := testSelector().NextGroup(rankedCatalog(10), domain.StatusMap{}, 7, progress, DefaultLimits, now)

	assert.NoError(t, err)
	assert.Len(t, batch.Words, 3)
}

func TestSelector_MixesNewAndDue(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	progress := domain.NewLearningProgress()
	progress.LastLearnDate = domain.DateString(now)

	catalog := rankedCatalog(10)
	statusMap := domain.StatusMap{}
	// Words a..d are due at stages 1,1,2,3; the rest are new.
	past := now.Add(-time.Hour)
	statusMap["a"] = domain.MemoryStatus{Stage: 1, NextReviewTime: &past}
	statusMap["b"] = domain.MemoryStatus{Stage: 1, NextReviewTime: &past}
	statusMap["c"] = domain.MemoryStatus{Stage: 2, NextReviewTime: &past}
	statusMap["d"] = domain.MemoryStatus{Stage: 3, NextReviewTime: &past}

	batch, err := testSelector().NextGroup(catalog, statusMap, 10, progress, DefaultLimits, now)

	assert.NoError(t, err)
	assert.Len(t, batch.Words, 10)
	// targetNew = ceil(10*0.6) = 6, 6 new available; targetReview = 4.
	assert.Equal(t, 6, batch.NewCount)
	assert.Equal(t, 4, batch.ReviewCount)
}

func TestSelector_ReviewRoundRobinAcrossStages(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)

	var catalog []domain.WordRecord
	statusMap := domain.StatusMap{}
	// Five stage-1 words and one word each at stages 2 and 3, all due.
	ids := []string{"s1a", "s1b", "s1c", "s1d", "s1e"}
	for _, id := range ids {
		catalog = append(catalog, domain.WordRecord{ID: id, Word: "词"})
		statusMap[id] = domain.MemoryStatus{Stage: 1, NextReviewTime: &past}
	}
	catalog = append(catalog,
		domain.WordRecord{ID: "s2", Word: "词"},
		domain.WordRecord{ID: "s3", Word: "词"},
	)
	statusMap["s2"] = domain.MemoryStatus{Stage: 2, NextReviewTime: &past}
	statusMap["s3"] = domain.MemoryStatus{Stage: 3, NextReviewTime: &past}

	pick := pickReviews(catalog, statusMap, 3)

	// One word per stage per pass: stages 1, 2, 3 each contribute one word
	// before stage 1 gets a second slot.
	assert.Len(t, pick.taken, 3)
	stages := map[int]int{}
	for _, w := range pick.taken {
		stages[statusMap[w.ID].Stage]++
	}
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1}, stages)
	assert.Len(t, pick.left, 4)
}

func TestSelector_NewWordsFollowRank(t *testing.T) {
	words := []domain.WordRecord{
		{ID: "unranked", Word: "词"},
		{ID: "third", Word: "词", Rank: intPtr(30)},
		{ID: "first", Word: "词", Rank: intPtr(1)},
		{ID: "second", Word: "词", Rank: intPtr(5)},
	}

	sortByRank(words)

	ids := []string{words[0].ID, words[1].ID, words[2].ID, words[3].ID}
	assert.Equal(t, []string{"first", "second", "third", "unranked"}, ids)
}

func TestSelector_NoDuplicates(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	progress := domain.NewLearningProgress()
	progress.LastLearnDate = domain.DateString(now)

	catalog := rankedCatalog(8)
	statusMap := domain.StatusMap{}
	// Only two due reviews: the review target cannot be met and the new pool
	// must backfill without repeating anything.
	statusMap["a"] = domain.MemoryStatus{Stage: 1, NextReviewTime: &past}
	statusMap["b"] = domain.MemoryStatus{Stage: 2, NextReviewTime: &past}

	batch, err := testSelector().NextGroup(catalog, statusMap, 8, progress, DefaultLimits, now)

	assert.NoError(t, err)
	assert.Len(t, batch.Words, 8)

	seen := map[string]bool{}
	for _, w := range batch.Words {
		assert.False(t, seen[w.ID], "duplicate word %s", w.ID)
		seen[w.ID] = true
	}
}

func TestSelector_DeterministicUnderFixedSeed(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	run := func() []string {
		progress := domain.NewLearningProgress()
		progress.LastLearnDate = domain.DateString(now)
		batch, err := testSelector().NextGroup(rankedCatalog(10), domain.StatusMap{}, 7, progress, DefaultLimits, now)
		assert.NoError(t, err)
		ids := make([]string, 0, len(batch.Words))
		for _, w := range batch.Words {
			ids = append(ids, w.ID)
		}
		return ids
	}

	assert.Equal(t, run(), run())
}
