package repo

import (
	"gorm.io/gorm"

	"github.com/director74/achievements/achievement-service/internal/entity"
	"github.com/director74/achievements/pkg/database"
)

// Migrate создает или обновляет таблицы users, achievements и user_achievements
func Migrate(db *gorm.DB) error {
	return database.AutoMigrateWithCleanup(db,
		&entity.User{},
		&entity.Achievement{},
		&entity.UserAchievement{},
	)
}
