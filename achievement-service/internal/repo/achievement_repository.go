package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/director74/achievements/achievement-service/internal/entity"
)

// AchievementRepository доступ к каталогу достижений
type AchievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{
		db: db,
	}
}

func (r *AchievementRepository) Create(ctx context.Context, achievement *entity.Achievement) error {
	return r.db.WithContext(ctx).Create(achievement).Error
}

func (r *AchievementRepository) GetByID(ctx context.Context, id uint) (*entity.Achievement, error) {
	var achievement entity.Achievement
	result := r.db.WithContext(ctx).First(&achievement, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAchievementNotFound
		}
		return nil, result.Error
	}
	return &achievement, nil
}

// List возвращает страницу достижений в порядке добавления
func (r *AchievementRepository) List(ctx context.Context, skip, limit int) ([]entity.Achievement, error) {
	achievements := make([]entity.Achievement, 0)
	err := r.db.WithContext(ctx).Order("id ASC").Offset(skip).Limit(limit).Find(&achievements).Error
	return achievements, err
}
