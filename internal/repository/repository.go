package repository

import (
	"time"

	"github.com/dts-gxu/CiJingTong/internal/domain"
	"github.com/dts-gxu/CiJingTong/internal/memory"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
	GetLearningTargets(userID int64) (*memory.Limits, error)
	SaveLearningTargets(userID int64, limits memory.Limits) error
}

// CatalogRepository serves the shared word catalog
type CatalogRepository interface {
	GetAllWords() ([]domain.WordRecord, error)
}

// ProgressRepository persists per-user memory state and aggregate progress
type ProgressRepository interface {
	GetStatusMap(userID int64) (domain.StatusMap, error)
	SaveStatuses(userID int64, statuses map[string]domain.MemoryStatus) error
	GetProgress(userID int64) (*domain.LearningProgress, error)
	SaveProgress(userID int64, progress *domain.LearningProgress, syncTime time.Time) error
	ResetSessionCounts() error
}
