package memory

import (
	"math/rand"
	"sort"
	"time"

	"github.com/dts-gxu/CiJingTong/internal/domain"
)

// newWordShare is the share of a group reserved for first-exposure words;
// the rest is filled with due reviews.
const newWordShare = 0.6

// Selector composes study groups. The random source is injected so the
// presentation shuffle is deterministic under a fixed seed.
type Selector struct {
	rnd *rand.Rand
}

// NewSelector creates a selector. A nil source falls back to a time-seeded one.
func NewSelector(rnd *rand.Rand) *Selector {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rnd: rnd}
}

// NextGroup selects the next study group: a 60/40 mix of new words (rank
// order) and due reviews (ascending stage, round-robin across stages), capped
// by the daily/session quotas, shuffled for presentation. A quota rejection
// yields an empty batch, not an error; the caller gets the message from
// CheckLimits.
func (s *Selector) NextGroup(
	catalog []domain.WordRecord,
	statusMap domain.StatusMap,
	size int,
	progress *domain.LearningProgress,
	limits Limits,
	now time.Time,
) (domain.LearningBatch, error) {
	if size <= 0 {
		return domain.LearningBatch{}, nil
	}

	check, err := CheckLimits(progress, limits, now)
	if err != nil {
		return domain.LearningBatch{}, err
	}
	if !check.CanLearn {
		return domain.LearningBatch{}, nil
	}
	if check.Remaining < size {
		size = check.Remaining
	}

	due, fresh := Classify(catalog, statusMap, now)

	targetNew := (size*6 + 9) / 10 // ceil(size * newWordShare)
	targetReview := size - targetNew

	reviews := pickReviews(due, statusMap, targetReview)

	sortByRank(fresh)
	newCount := targetNew
	if newCount > len(fresh) {
		newCount = len(fresh)
	}

	group := append([]domain.WordRecord{}, reviews.taken...)
	group = append(group, fresh[:newCount]...)
	fresh = fresh[newCount:]
	reviewCount := len(reviews.taken)

	// Backfill from whichever pool still has words: reviews first, then new.
	for len(group) < size {
		switch {
		case len(reviews.left) > 0:
			group = append(group, reviews.left[0])
			reviews.left = reviews.left[1:]
			reviewCount++
		case len(fresh) > 0:
			group = append(group, fresh[0])
			fresh = fresh[1:]
			newCount++
		default:
			return shuffled(s.rnd, group, reviewCount, newCount), nil
		}
	}

	return shuffled(s.rnd, group, reviewCount, newCount), nil
}

type reviewPick struct {
	taken []domain.WordRecord
	left  []domain.WordRecord
}

// pickReviews draws up to target due words, one per stage bucket per pass in
// ascending stage order, so no single stage dominates a group. Whatever is
// not taken is returned in stage order for backfill.
func pickReviews(due []domain.WordRecord, statusMap domain.StatusMap, target int) reviewPick {
	buckets := make(map[int][]domain.WordRecord)
	for _, word := range due {
		stage := statusMap[word.ID].Stage
		if stage == 0 {
			stage = 1
		}
		buckets[stage] = append(buckets[stage], word)
	}

	stages := make([]int, 0, len(buckets))
	for stage := range buckets {
		stages = append(stages, stage)
	}
	sort.Ints(stages)

	var pick reviewPick
	for len(pick.taken) < target && len(pick.taken) < len(due) {
		took := false
		for _, stage := range stages {
			if len(pick.taken) >= target {
				break
			}
			if len(buckets[stage]) == 0 {
				continue
			}
			pick.taken = append(pick.taken, buckets[stage][0])
			buckets[stage] = buckets[stage][1:]
			took = true
		}
		if !took {
			break
		}
	}

	for _, stage := range stages {
		pick.left = append(pick.left, buckets[stage]...)
	}
	return pick
}

// sortByRank orders new words by ascending rank; unranked words sort after
// ranked ones, keeping catalog order among themselves.
func sortByRank(words []domain.WordRecord) {
	sort.SliceStable(words, func(i, j int) bool {
		ri, rj := words[i].Rank, words[j].Rank
		if ri == nil {
			return false
		}
		if rj == nil {
			return true
		}
		return *ri < *rj
	})
}

// shuffled permutes the group so presentation order does not reveal the
// new/review split or the stage grouping.
func shuffled(rnd *rand.Rand, group []domain.WordRecord, reviewCount, newCount int) domain.LearningBatch {
	rnd.Shuffle(len(group), func(i, j int) {
		group[i], group[j] = group[j], group[i]
	})
	return domain.LearningBatch{
		Words:       group,
		ReviewCount: reviewCount,
		NewCount:    newCount,
	}
}
