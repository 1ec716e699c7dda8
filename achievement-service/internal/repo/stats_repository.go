package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/director74/achievements/achievement-service/internal/entity"
)

// StatsRepository агрегирующие запросы для статистики
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{
		db: db,
	}
}

// TopUserByAchievementCount возвращает пользователя с наибольшим числом выдач
// или nil, если выдач нет. При равенстве побеждает меньший id.
func (r *StatsRepository) TopUserByAchievementCount(ctx context.Context) (*entity.UserAchievementCount, error) {
	var top entity.UserAchievementCount
	result := r.db.WithContext(ctx).
		Table("users").
		Select("users.id AS user_id, users.username AS username, COUNT(user_achievements.id) AS total_achievements").
		Joins("JOIN user_achievements ON user_achievements.user_id = users.id").
		Group("users.id, users.username").
		Order("total_achievements DESC, users.id ASC").
		Limit(1).
		Scan(&top)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &top, nil
}

// UserPointTotals возвращает сумму очков каждого пользователя, включая пользователей без выдач
func (r *StatsRepository) UserPointTotals(ctx context.Context) ([]entity.UserPoints, error) {
	totals := make([]entity.UserPoints, 0)
	err := r.db.WithContext(ctx).
		Table("users").
		Select("users.id AS user_id, users.username AS username, COALESCE(SUM(achievements.points), 0) AS total_points").
		Joins("LEFT JOIN user_achievements ON user_achievements.user_id = users.id").
		Joins("LEFT JOIN achievements ON achievements.id = user_achievements.achievement_id").
		Group("users.id, users.username").
		Order("users.id ASC").
		Scan(&totals).Error
	return totals, err
}

// AwardsBetween возвращает выдачи с awarded_at в полуинтервале [from, to)
func (r *StatsRepository) AwardsBetween(ctx context.Context, from, to time.Time) ([]entity.AwardMoment, error) {
	moments := make([]entity.AwardMoment, 0)
	err := r.db.WithContext(ctx).
		Table("user_achievements").
		Select("user_achievements.user_id AS user_id, users.username AS username, user_achievements.awarded_at AS awarded_at").
		Joins("JOIN users ON users.id = user_achievements.user_id").
		Where("user_achievements.awarded_at >= ? AND user_achievements.awarded_at < ?", from, to).
		Order("user_achievements.user_id ASC, user_achievements.awarded_at ASC").
		Scan(&moments).Error
	return moments, err
}
