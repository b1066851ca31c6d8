package testutil

import (
	"time"

	"github.com/dts-gxu/CiJingTong/internal/domain"
	"github.com/dts-gxu/CiJingTong/internal/memory"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) GetLearningTargets(userID int64) (*memory.Limits, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*memory.Limits), args.Error(1)
}

func (m *MockUserRepository) SaveLearningTargets(userID int64, limits memory.Limits) error {
	args := m.Called(userID, limits)
	return args.Error(0)
}

// MockCatalogRepository is a mock for CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetAllWords() ([]domain.WordRecord, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordRecord), args.Error(1)
}

// MockProgressRepository is a mock for ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) GetStatusMap(userID int64) (domain.StatusMap, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.StatusMap), args.Error(1)
}

func (m *MockProgressRepository) SaveStatuses(userID int64, statuses map[string]domain.MemoryStatus) error {
	args := m.Called(userID, statuses)
	return args.Error(0)
}

func (m *MockProgressRepository) GetProgress(userID int64) (*domain.LearningProgress, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LearningProgress), args.Error(1)
}

func (m *MockProgressRepository) SaveProgress(userID int64, progress *domain.LearningProgress, syncTime time.Time) error {
	args := m.Called(userID, progress, syncTime)
	return args.Error(0)
}

func (m *MockProgressRepository) ResetSessionCounts() error {
	args := m.Called()
	return args.Error(0)
}
