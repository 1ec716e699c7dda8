package entity

import (
	"time"
)

// DefaultLanguage язык пользователя по умолчанию
const DefaultLanguage = "ru"

// User представляет пользователя системы достижений
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:100;not null;uniqueIndex"`
	Language  string    `json:"language" gorm:"size:2;not null;default:'ru'"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
}

// CreateUserRequest запрос на создание пользователя
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Language string `json:"language" binding:"omitempty,len=2,alpha"`
}

// UserResponse представление пользователя в ответе API
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse собирает ответ из сущности пользователя
func NewUserResponse(user User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Language:  user.Language,
		CreatedAt: user.CreatedAt,
	}
}

// GetUserByUsernameQuery параметры поиска пользователя по имени
type GetUserByUsernameQuery struct {
	Username string `form:"username" binding:"required"`
}
