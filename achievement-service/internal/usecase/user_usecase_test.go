package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/director74/achievements/achievement-service/internal/entity"
	"github.com/director74/achievements/achievement-service/internal/repo"
	apperrors "github.com/director74/achievements/pkg/errors"
)

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	userRepo := new(MockUserRepository)
	uc := NewUserUseCase(userRepo)
	uc.now = fixedClock(createdAt)

	userRepo.On("GetByUsername", ctx, "neo").Return(nil, repo.ErrUserNotFound).Once()
	userRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Username == "neo" && u.Language == "en" && u.CreatedAt.Equal(createdAt)
	})).Return(nil).Once()

	resp, err := uc.CreateUser(ctx, entity.CreateUserRequest{Username: "neo", Language: "EN"})

	require.NoError(t, err)
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "neo", resp.Username)
	assert.Equal(t, "en", resp.Language)
	assert.Equal(t, createdAt, resp.CreatedAt)
	userRepo.AssertExpectations(t)
}

func TestCreateUserDefaultLanguage(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	uc := NewUserUseCase(userRepo)

	userRepo.On("GetByUsername", ctx, "trinity").Return(nil, repo.ErrUserNotFound)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	resp, err := uc.CreateUser(ctx, entity.CreateUserRequest{Username: "trinity"})

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultLanguage, resp.Language)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	uc := NewUserUseCase(userRepo)

	first := &entity.User{ID: 5, Username: "neo", Language: "ru"}
	userRepo.On("GetByUsername", ctx, "neo").Return(nil, repo.ErrUserNotFound).Once()
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil).Once()
	userRepo.On("GetByUsername", ctx, "neo").Return(first, nil).Once()

	_, err := uc.CreateUser(ctx, entity.CreateUserRequest{Username: "neo", Language: "ru"})
	require.NoError(t, err)

	_, err = uc.CreateUser(ctx, entity.CreateUserRequest{Username: "neo", Language: "en"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrAlreadyExists))
	// Второй вызов не должен доходить до вставки
	userRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestCreateUserConcurrentDuplicateOnInsert(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	uc := NewUserUseCase(userRepo)

	// Проверка прошла, но уникальный индекс сработал при вставке
	userRepo.On("GetByUsername", ctx, "neo").Return(nil, repo.ErrUserNotFound)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(repo.ErrUsernameTaken)

	_, err := uc.CreateUser(ctx, entity.CreateUserRequest{Username: "neo"})

	require.Error(t, err)
	var se *apperrors.ServiceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.Code)
	assert.True(t, errors.Is(err, apperrors.ErrAlreadyExists))
}

func TestCreateUserBlankUsername(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewUserUseCase(userRepo)

	_, err := uc.CreateUser(context.Background(), entity.CreateUserRequest{Username: "   "})

	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	userRepo.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
}

func TestCreateUserLookupFailure(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	uc := NewUserUseCase(userRepo)

	dbErr := errors.New("connection reset by peer")
	userRepo.On("GetByUsername", ctx, "neo").Return(nil, dbErr)

	_, err := uc.CreateUser(ctx, entity.CreateUserRequest{Username: "neo"})

	assert.ErrorIs(t, err, dbErr)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	uc := NewUserUseCase(userRepo)

	userRepo.On("GetByID", ctx, uint(3)).Return(&entity.User{ID: 3, Username: "morpheus", Language: "ru"}, nil)
	userRepo.On("GetByID", ctx, uint(999)).Return(nil, repo.ErrUserNotFound)

	resp, err := uc.GetUser(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "morpheus", resp.Username)

	_, err = uc.GetUser(ctx, 999)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestGetUserByUsername(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	uc := NewUserUseCase(userRepo)

	userRepo.On("GetByUsername", ctx, "ghost").Return(nil, repo.ErrUserNotFound)

	_, err := uc.GetUserByUsername(ctx, "ghost")

	var se *apperrors.ServiceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 404, se.Code)
	assert.Equal(t, "Пользователь с username=ghost не найден", se.Message)
}
