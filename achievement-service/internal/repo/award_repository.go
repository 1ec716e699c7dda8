package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/director74/achievements/achievement-service/internal/entity"
)

// AwardRepository хранит записи о выдаче достижений
type AwardRepository struct {
	db *gorm.DB
}

func NewAwardRepository(db *gorm.DB) *AwardRepository {
	return &AwardRepository{
		db: db,
	}
}

// FindOrCreate возвращает существующую выдачу для пары или создает новую с awardedAt.
// Второе значение true, если запись была создана этим вызовом.
func (r *AwardRepository) FindOrCreate(ctx context.Context, userID, achievementID uint, awardedAt time.Time) (entity.UserAchievement, bool, error) {
	var award entity.UserAchievement
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Блокировка строки пользователя сериализует параллельные выдачи этому пользователю
		var user entity.User
		lock := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&user, userID)
		if lock.Error != nil {
			if errors.Is(lock.Error, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return lock.Error
		}

		existing := tx.Where("user_id = ? AND achievement_id = ?", userID, achievementID).
			Order("id ASC").Limit(1).Find(&award)
		if existing.Error != nil {
			return existing.Error
		}
		if existing.RowsAffected > 0 {
			return nil
		}

		award = entity.UserAchievement{
			UserID:        userID,
			AchievementID: achievementID,
			AwardedAt:     awardedAt,
		}
		if err := tx.Create(&award).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return entity.UserAchievement{}, false, err
	}

	return award, created, nil
}

type awardDetailRow struct {
	Name          string    `gorm:"column:name"`
	NameRU        *string   `gorm:"column:name_ru"`
	NameEN        *string   `gorm:"column:name_en"`
	Points        int       `gorm:"column:points"`
	Description   string    `gorm:"column:description"`
	DescriptionRU *string   `gorm:"column:description_ru"`
	DescriptionEN *string   `gorm:"column:description_en"`
	AwardedAt     time.Time `gorm:"column:awarded_at"`
}

// ListDetails возвращает выданные пользователю достижения с текстами на языке locale
func (r *AwardRepository) ListDetails(ctx context.Context, userID uint, locale string) ([]entity.UserAchievementDetail, error) {
	var rows []awardDetailRow
	err := r.db.WithContext(ctx).
		Table("user_achievements").
		Select("achievements.name, achievements.name_ru, achievements.name_en, achievements.points, " +
			"achievements.description, achievements.description_ru, achievements.description_en, " +
			"user_achievements.awarded_at").
		Joins("JOIN achievements ON achievements.id = user_achievements.achievement_id").
		Where("user_achievements.user_id = ?", userID).
		Order("user_achievements.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	details := make([]entity.UserAchievementDetail, 0, len(rows))
	for _, row := range rows {
		achievement := entity.Achievement{
			Name:          row.Name,
			NameRU:        row.NameRU,
			NameEN:        row.NameEN,
			Description:   row.Description,
			DescriptionRU: row.DescriptionRU,
			DescriptionEN: row.DescriptionEN,
		}
		details = append(details, entity.UserAchievementDetail{
			Name:        achievement.LocalizedName(locale),
			Description: achievement.LocalizedDescription(locale),
			Points:      row.Points,
			AwardedAt:   row.AwardedAt,
		})
	}

	return details, nil
}
