package entity

import (
	"time"
)

// Поддерживаемые локали с отдельными полями перевода
const (
	LocaleRU = "ru"
	LocaleEN = "en"
)

// Achievement описывает достижение. Локализованные поля необязательны,
// при их отсутствии используются name и description.
type Achievement struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:200;not null"`
	NameRU        *string   `json:"name_ru" gorm:"column:name_ru;size:200"`
	NameEN        *string   `json:"name_en" gorm:"column:name_en;size:200"`
	Points        int       `json:"points" gorm:"not null"`
	Description   string    `json:"description" gorm:"type:text;not null"`
	DescriptionRU *string   `json:"description_ru" gorm:"column:description_ru;type:text"`
	DescriptionEN *string   `json:"description_en" gorm:"column:description_en;type:text"`
	CreatedAt     time.Time `json:"created_at" gorm:"not null"`
}

// LocalizedName возвращает название на языке locale или каноническое название
func (a Achievement) LocalizedName(locale string) string {
	var override *string
	switch locale {
	case LocaleRU:
		override = a.NameRU
	case LocaleEN:
		override = a.NameEN
	}
	return fallback(override, a.Name)
}

// LocalizedDescription возвращает описание на языке locale или каноническое описание
func (a Achievement) LocalizedDescription(locale string) string {
	var override *string
	switch locale {
	case LocaleRU:
		override = a.DescriptionRU
	case LocaleEN:
		override = a.DescriptionEN
	}
	return fallback(override, a.Description)
}

func fallback(override *string, canonical string) string {
	if override != nil && *override != "" {
		return *override
	}
	return canonical
}

// CreateAchievementRequest запрос на создание достижения.
// Положительность points проверяется в usecase, чтобы вернуть ошибку валидации.
type CreateAchievementRequest struct {
	Name          string  `json:"name" binding:"required,max=200"`
	NameRU        *string `json:"name_ru" binding:"omitempty,max=200"`
	NameEN        *string `json:"name_en" binding:"omitempty,max=200"`
	Points        int     `json:"points"`
	Description   string  `json:"description" binding:"required"`
	DescriptionRU *string `json:"description_ru"`
	DescriptionEN *string `json:"description_en"`
}

// ListAchievementsQuery параметры постраничного списка достижений
type ListAchievementsQuery struct {
	Skip  int `form:"skip" binding:"min=0"`
	Limit int `form:"limit,default=100" binding:"min=0,max=1000"`
}
