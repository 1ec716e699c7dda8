package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/director74/achievements/achievement-service/internal/entity"
	"github.com/director74/achievements/achievement-service/internal/repo"
	apperrors "github.com/director74/achievements/pkg/errors"
)

// UserUseCase сценарии работы с пользователями
type UserUseCase struct {
	userRepo UserRepository
	now      func() time.Time
}

func NewUserUseCase(userRepo UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// CreateUser регистрирует пользователя; имя пользователя должно быть уникальным
func (uc *UserUseCase) CreateUser(ctx context.Context, req entity.CreateUserRequest) (entity.UserResponse, error) {
	if strings.TrimSpace(req.Username) == "" {
		return entity.UserResponse{}, apperrors.NewValidationError("username", "не может быть пустым")
	}

	existing, err := uc.userRepo.GetByUsername(ctx, req.Username)
	if err == nil && existing != nil {
		return entity.UserResponse{}, apperrors.NewDuplicateError("Пользователь", "username", req.Username)
	}
	if err != nil && !errors.Is(err, repo.ErrUserNotFound) {
		return entity.UserResponse{}, apperrors.NewInternalServerError(apperrors.AppendPrefix(err, "ошибка при проверке имени пользователя"))
	}

	language := strings.ToLower(req.Language)
	if language == "" {
		language = entity.DefaultLanguage
	}

	user := &entity.User{
		Username:  req.Username,
		Language:  language,
		CreatedAt: uc.now(),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		// Параллельный запрос успел занять имя после проверки
		if errors.Is(err, repo.ErrUsernameTaken) {
			return entity.UserResponse{}, apperrors.NewDuplicateError("Пользователь", "username", req.Username)
		}
		return entity.UserResponse{}, apperrors.NewInternalServerError(apperrors.AppendPrefix(err, "ошибка при создании пользователя"))
	}

	return entity.NewUserResponse(*user), nil
}

func (uc *UserUseCase) GetUser(ctx context.Context, id uint) (entity.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return entity.UserResponse{}, apperrors.NewNotFoundError("Пользователь", id)
		}
		return entity.UserResponse{}, err
	}

	return entity.NewUserResponse(*user), nil
}

func (uc *UserUseCase) GetUserByUsername(ctx context.Context, username string) (entity.UserResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return entity.UserResponse{}, apperrors.NewNotFoundByFieldError("Пользователь", "username", username)
		}
		return entity.UserResponse{}, err
	}

	return entity.NewUserResponse(*user), nil
}
