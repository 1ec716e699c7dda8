package entity

import (
	"time"
)

// UserAchievement запись о выдаче достижения пользователю.
// Для пары (user_id, achievement_id) существует не более одной записи.
type UserAchievement struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"user_id" gorm:"not null;index:idx_user_achievements_user_id"`
	AchievementID uint      `json:"achievement_id" gorm:"not null;index:idx_user_achievements_achievement_id"`
	AwardedAt     time.Time `json:"awarded_at" gorm:"not null;index:idx_user_achievements_awarded_at"`

	// Связи только для внешних ключей схемы, в запросах не загружаются
	User        *User        `json:"-" gorm:"foreignKey:UserID"`
	Achievement *Achievement `json:"-" gorm:"foreignKey:AchievementID"`
}

// AwardRequest запрос на выдачу достижения
type AwardRequest struct {
	UserID        uint `json:"user_id" binding:"required"`
	AchievementID uint `json:"achievement_id" binding:"required"`
}

// AwardResponse ответ на выдачу достижения
type AwardResponse struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	AchievementID   uint      `json:"achievement_id"`
	AwardedAt       time.Time `json:"awarded_at"`
	Username        string    `json:"username"`
	AchievementName string    `json:"achievement_name"`
}

// UserAchievementDetail выданное достижение с названием на языке пользователя
type UserAchievementDetail struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	AwardedAt   time.Time `json:"awarded_at"`
}

// UserAchievementsQuery позволяет явно запросить язык вместо языка пользователя
type UserAchievementsQuery struct {
	Language string `form:"language" binding:"omitempty,len=2"`
}

// UserAchievementsResponse список достижений пользователя
type UserAchievementsResponse struct {
	UserID       uint                    `json:"user_id"`
	Username     string                  `json:"username"`
	Language     string                  `json:"language"`
	Achievements []UserAchievementDetail `json:"achievements"`
}

// Типы событий выдачи достижений
const (
	EventTypeAchievementAwarded = "achievement.awarded"
)

// AchievementAwardedEvent событие о новой выдаче достижения (транспортная модель)
type AchievementAwardedEvent struct {
	EventID         string    `json:"event_id"`
	Type            string    `json:"type"`
	AwardID         uint      `json:"award_id"`
	UserID          uint      `json:"user_id"`
	Username        string    `json:"username"`
	AchievementID   uint      `json:"achievement_id"`
	AchievementName string    `json:"achievement_name"`
	Points          int       `json:"points"`
	AwardedAt       time.Time `json:"awarded_at"`
}
