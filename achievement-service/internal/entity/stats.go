package entity

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Date календарная дата, в JSON записывается как "YYYY-MM-DD"
type Date datatypes.Date

// NewDate возвращает дату момента t в его часовом поясе
func NewDate(t time.Time) Date {
	return Date(t)
}

func (d Date) Time() time.Time {
	return time.Time(d)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(time.DateOnly))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

// UserAchievementCount количество выдач у пользователя
type UserAchievementCount struct {
	UserID            uint   `json:"user_id"`
	Username          string `json:"username"`
	TotalAchievements int64  `json:"total_achievements"`
}

// UserPoints сумма очков пользователя
type UserPoints struct {
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	TotalPoints int64  `json:"total_points"`
}

// UserPointsDifference пара пользователей и разница их очков
type UserPointsDifference struct {
	User1ID    uint   `json:"user1_id"`
	User1Name  string `json:"user1_name"`
	User2ID    uint   `json:"user2_id"`
	User2Name  string `json:"user2_name"`
	Difference int64  `json:"difference"`
}

// AwardMoment момент выдачи достижения пользователю
type AwardMoment struct {
	UserID    uint
	Username  string
	AwardedAt time.Time
}

// StreakUser пользователь, получавший достижения каждый день окна
type StreakUser struct {
	UserID            uint   `json:"user_id"`
	Username          string `json:"username"`
	StreakStart       Date   `json:"streak_start"`
	StreakEnd         Date   `json:"streak_end"`
	AchievementsCount int    `json:"achievements_count"`
}

// MessageResponse информационный ответ, когда статистику посчитать не из чего
type MessageResponse struct {
	Message string `json:"message"`
}
