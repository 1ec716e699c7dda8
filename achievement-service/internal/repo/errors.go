package repo

import (
	"fmt"

	apperrors "github.com/director74/achievements/pkg/errors"
)

// Ошибки отсутствия записей; оборачивают общий ErrNotFound
var (
	ErrUserNotFound        = fmt.Errorf("пользователь не найден: %w", apperrors.ErrNotFound)
	ErrAchievementNotFound = fmt.Errorf("достижение не найдено: %w", apperrors.ErrNotFound)
	ErrUsernameTaken       = fmt.Errorf("имя пользователя занято: %w", apperrors.ErrAlreadyExists)
)
