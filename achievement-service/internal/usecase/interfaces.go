package usecase

import (
	"context"
	"time"

	"github.com/director74/achievements/achievement-service/internal/entity"
)

// UserRepository интерфейс хранилища пользователей
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}

// AchievementRepository интерфейс хранилища достижений
type AchievementRepository interface {
	Create(ctx context.Context, achievement *entity.Achievement) error
	GetByID(ctx context.Context, id uint) (*entity.Achievement, error)
	List(ctx context.Context, skip, limit int) ([]entity.Achievement, error)
}

// AwardRepository интерфейс хранилища выдач достижений
type AwardRepository interface {
	FindOrCreate(ctx context.Context, userID, achievementID uint, awardedAt time.Time) (entity.UserAchievement, bool, error)
	ListDetails(ctx context.Context, userID uint, locale string) ([]entity.UserAchievementDetail, error)
}

// StatsRepository интерфейс агрегирующих запросов
type StatsRepository interface {
	TopUserByAchievementCount(ctx context.Context) (*entity.UserAchievementCount, error)
	UserPointTotals(ctx context.Context) ([]entity.UserPoints, error)
	AwardsBetween(ctx context.Context, from, to time.Time) ([]entity.AwardMoment, error)
}
