package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/director74/achievements/achievement-service/internal/entity"
	"github.com/director74/achievements/achievement-service/internal/repo"
	apperrors "github.com/director74/achievements/pkg/errors"
)

// AchievementUseCase сценарии работы с каталогом достижений
type AchievementUseCase struct {
	achievementRepo AchievementRepository
	now             func() time.Time
}

func NewAchievementUseCase(achievementRepo AchievementRepository) *AchievementUseCase {
	return &AchievementUseCase{
		achievementRepo: achievementRepo,
		now:             time.Now,
	}
}

// CreateAchievement создает достижение; points должно быть положительным
func (uc *AchievementUseCase) CreateAchievement(ctx context.Context, req entity.CreateAchievementRequest) (entity.Achievement, error) {
	if req.Points <= 0 {
		return entity.Achievement{}, apperrors.NewValidationError("points", "должно быть больше 0")
	}

	achievement := entity.Achievement{
		Name:          req.Name,
		NameRU:        req.NameRU,
		NameEN:        req.NameEN,
		Points:        req.Points,
		Description:   req.Description,
		DescriptionRU: req.DescriptionRU,
		DescriptionEN: req.DescriptionEN,
		CreatedAt:     uc.now(),
	}

	if err := uc.achievementRepo.Create(ctx, &achievement); err != nil {
		return entity.Achievement{}, apperrors.NewInternalServerError(apperrors.AppendPrefix(err, "ошибка при создании достижения"))
	}

	return achievement, nil
}

func (uc *AchievementUseCase) GetAchievement(ctx context.Context, id uint) (entity.Achievement, error) {
	achievement, err := uc.achievementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrAchievementNotFound) {
			return entity.Achievement{}, apperrors.NewNotFoundError("Достижение", id)
		}
		return entity.Achievement{}, err
	}

	return *achievement, nil
}

func (uc *AchievementUseCase) ListAchievements(ctx context.Context, query entity.ListAchievementsQuery) ([]entity.Achievement, error) {
	return uc.achievementRepo.List(ctx, query.Skip, query.Limit)
}
