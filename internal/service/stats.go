package service

import (
	"fmt"
	"time"

	"github.com/dts-gxu/CiJingTong/internal/domain"
	"github.com/dts-gxu/CiJingTong/internal/repository"

	"go.uber.org/zap"
)

// StatsService recomputes learning statistics from the full status map.
// The incremental histogram in LearningProgress can drift after partial
// syncs; this full pass is the source of truth for the stats screen.
type StatsService struct {
	catalogRepo  repository.CatalogRepository
	progressRepo repository.ProgressRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewStatsService creates a new stats service
func NewStatsService(catalogRepo repository.CatalogRepository, progressRepo repository.ProgressRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		catalogRepo:  catalogRepo,
		progressRepo: progressRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// Overview recomputes the per-stage distribution for the user and syncs the
// stored progress histogram with it.
func (s *StatsService) Overview(userID int64) (*domain.LearningStats, error) {
	catalog, err := s.catalogRepo.GetAllWords()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	statusMap, err := s.progressRepo.GetStatusMap(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load word statuses: %w", err)
	}

	totalWords := len(domain.NormalizeCatalog(catalog))
	learned := len(statusMap)

	distribution := make([]int, domain.StageCount)
	for _, status := range statusMap {
		if status.Stage > 0 && status.Stage < domain.StageCount {
			distribution[status.Stage]++
		}
	}

	// Stage 0 counts the words never studied.
	notLearned := totalWords - learned
	if notLearned < 0 {
		notLearned = 0
	}
	distribution[0] = notLearned

	stats := &domain.LearningStats{
		TotalWords:        totalWords,
		LearnedWords:      learned,
		NotLearnedWords:   notLearned,
		StageDistribution: distribution,
	}

	if err := s.syncProgress(userID, stats); err != nil {
		// The overview itself is still valid; log and carry on.
		s.logger.Warn("Failed to sync recomputed stats",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	return stats, nil
}

// syncProgress writes the recomputed totals back into the stored progress
// and copies the daily counters into the stats view.
func (s *StatsService) syncProgress(userID int64, stats *domain.LearningStats) error {
	progress, err := s.progressRepo.GetProgress(userID)
	if err != nil {
		return err
	}
	if progress == nil {
		progress = domain.NewLearningProgress()
	}

	stats.DailyLearnedCount = progress.DailyLearnedCount
	stats.LastLearnDate = progress.LastLearnDate

	progress.TotalWordsLearned = stats.LearnedWords
	progress.WordsAtStage = append([]int{}, stats.StageDistribution...)

	return s.progressRepo.SaveProgress(userID, progress, s.now())
}
