package service

import (
	"fmt"
	"time"

	"github.com/dts-gxu/CiJingTong/internal/domain"
	"github.com/dts-gxu/CiJingTong/internal/memory"
	"github.com/dts-gxu/CiJingTong/internal/repository"

	"go.uber.org/zap"
)

// LearningService drives study sessions: it selects the next group of words
// for a user and folds finished rounds back into the persisted memory state.
type LearningService struct {
	catalogRepo  repository.CatalogRepository
	progressRepo repository.ProgressRepository
	userRepo     repository.UserRepository
	selector     *memory.Selector
	defaults     memory.Limits
	logger       *zap.Logger
	now          func() time.Time
}

// NewLearningService creates a new learning service
func NewLearningService(
	catalogRepo repository.CatalogRepository,
	progressRepo repository.ProgressRepository,
	userRepo repository.UserRepository,
	selector *memory.Selector,
	defaults memory.Limits,
	logger *zap.Logger,
) *LearningService {
	return &LearningService{
		catalogRepo:  catalogRepo,
		progressRepo: progressRepo,
		userRepo:     userRepo,
		selector:     selector,
		defaults:     defaults,
		logger:       logger,
		now:          time.Now,
	}
}

// Targets returns the user's effective daily/session limits: their stored
// overrides if set, the configured defaults otherwise.
func (s *LearningService) Targets(userID int64) (memory.Limits, error) {
	custom, err := s.userRepo.GetLearningTargets(userID)
	if err != nil {
		return memory.Limits{}, fmt.Errorf("failed to load learning targets: %w", err)
	}
	if custom != nil {
		return *custom, nil
	}
	return s.defaults, nil
}

// UpdateTargets stores new daily/session limits for the user
func (s *LearningService) UpdateTargets(userID int64, limits memory.Limits) error {
	if limits.Daily <= 0 || limits.Session <= 0 {
		return fmt.Errorf("targets must be positive: %w", memory.ErrInvalidLimits)
	}
	return s.userRepo.SaveLearningTargets(userID, limits)
}

// NextGroup selects the next study group for the user. A quota rejection is
// reported through the returned LimitCheck, not as an error; the batch is
// empty in that case.
func (s *LearningService) NextGroup(userID int64, size int) (domain.LearningBatch, memory.LimitCheck, error) {
	now := s.now()

	catalog, err := s.catalogRepo.GetAllWords()
	if err != nil {
		return domain.LearningBatch{}, memory.LimitCheck{}, fmt.Errorf("failed to load catalog: %w", err)
	}
	catalog = domain.NormalizeCatalog(catalog)

	statusMap, err := s.progressRepo.GetStatusMap(userID)
	if err != nil {
		return domain.LearningBatch{}, memory.LimitCheck{}, fmt.Errorf("failed to load word statuses: %w", err)
	}

	progress, err := s.progressRepo.GetProgress(userID)
	if err != nil {
		return domain.LearningBatch{}, memory.LimitCheck{}, fmt.Errorf("failed to load progress: %w", err)
	}
	if progress == nil {
		progress = domain.NewLearningProgress()
	}

	limits, err := s.Targets(userID)
	if err != nil {
		return domain.LearningBatch{}, memory.LimitCheck{}, err
	}

	check, err := memory.CheckLimits(progress, limits, now)
	if err != nil {
		return domain.LearningBatch{}, memory.LimitCheck{}, err
	}
	if !check.CanLearn {
		s.logger.Info("Learning limit reached",
			zap.Int64("user_id", userID),
			zap.String("message", check.Message),
		)
		return domain.LearningBatch{}, check, nil
	}

	batch, err := s.selector.NextGroup(catalog, statusMap, size, progress, limits, now)
	if err != nil {
		return domain.LearningBatch{}, check, err
	}

	s.logger.Info("Study group selected",
		zap.Int64("user_id", userID),
		zap.Int("words", len(batch.Words)),
		zap.Int("reviews", batch.ReviewCount),
		zap.Int("new", batch.NewCount),
	)

	return batch, check, nil
}

// SubmitResults applies a finished round of answers, persists the touched
// word statuses and the aggregate progress, and returns the round summary.
func (s *LearningService) SubmitResults(userID int64, results []domain.AnswerResult) (domain.PracticeSummary, error) {
	now := s.now()

	statusMap, err := s.progressRepo.GetStatusMap(userID)
	if err != nil {
		return domain.PracticeSummary{}, fmt.Errorf("failed to load word statuses: %w", err)
	}

	progress, err := s.progressRepo.GetProgress(userID)
	if err != nil {
		return domain.PracticeSummary{}, fmt.Errorf("failed to load progress: %w", err)
	}
	if progress == nil {
		progress = domain.NewLearningProgress()
	}

	summary, err := memory.ApplyBatchResults(progress, statusMap, results, now)
	if err != nil {
		return domain.PracticeSummary{}, err
	}

	touched := make(map[string]domain.MemoryStatus, len(results))
	for _, result := range results {
		touched[result.WordID] = statusMap[result.WordID]
	}

	if err := s.progressRepo.SaveStatuses(userID, touched); err != nil {
		return domain.PracticeSummary{}, fmt.Errorf("failed to save word statuses: %w", err)
	}
	if err := s.progressRepo.SaveProgress(userID, progress, now); err != nil {
		return domain.PracticeSummary{}, fmt.Errorf("failed to save progress: %w", err)
	}

	s.logger.Info("Round submitted",
		zap.Int64("user_id", userID),
		zap.Int("answers", summary.TotalCount),
		zap.Int("correct", summary.CorrectCount),
	)

	return summary, nil
}

// ResetSessions zeroes every user's session counter at day rollover
func (s *LearningService) ResetSessions() error {
	return s.progressRepo.ResetSessionCounts()
}
