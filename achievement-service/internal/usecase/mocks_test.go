package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/director74/achievements/achievement-service/internal/entity"
)

// Мок для UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	// Имитируем присвоение ID, как это делает БД
	if args.Error(0) == nil && user.ID == 0 {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// Мок для AchievementRepository
type MockAchievementRepository struct {
	mock.Mock
}

func (m *MockAchievementRepository) Create(ctx context.Context, achievement *entity.Achievement) error {
	args := m.Called(ctx, achievement)
	if args.Error(0) == nil && achievement.ID == 0 {
		achievement.ID = 1
	}
	return args.Error(0)
}

func (m *MockAchievementRepository) GetByID(ctx context.Context, id uint) (*entity.Achievement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Achievement), args.Error(1)
}

func (m *MockAchievementRepository) List(ctx context.Context, skip, limit int) ([]entity.Achievement, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Achievement), args.Error(1)
}

// Мок для AwardRepository
type MockAwardRepository struct {
	mock.Mock
}

func (m *MockAwardRepository) FindOrCreate(ctx context.Context, userID, achievementID uint, awardedAt time.Time) (entity.UserAchievement, bool, error) {
	args := m.Called(ctx, userID, achievementID, awardedAt)
	return args.Get(0).(entity.UserAchievement), args.Bool(1), args.Error(2)
}

func (m *MockAwardRepository) ListDetails(ctx context.Context, userID uint, locale string) ([]entity.UserAchievementDetail, error) {
	args := m.Called(ctx, userID, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.UserAchievementDetail), args.Error(1)
}

// Мок для StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) TopUserByAchievementCount(ctx context.Context) (*entity.UserAchievementCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserAchievementCount), args.Error(1)
}

func (m *MockStatsRepository) UserPointTotals(ctx context.Context) ([]entity.UserPoints, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.UserPoints), args.Error(1)
}

func (m *MockStatsRepository) AwardsBetween(ctx context.Context, from, to time.Time) ([]entity.AwardMoment, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AwardMoment), args.Error(1)
}

// Мок для публикации событий
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishMessage(exchange, routingKey string, message interface{}) error {
	args := m.Called(exchange, routingKey, message)
	return args.Error(0)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func strPtr(s string) *string {
	return &s
}
