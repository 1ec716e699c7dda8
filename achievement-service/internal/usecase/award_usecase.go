package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/director74/achievements/achievement-service/internal/entity"
	"github.com/director74/achievements/achievement-service/internal/repo"
	apperrors "github.com/director74/achievements/pkg/errors"
	"github.com/director74/achievements/pkg/messaging"
	"github.com/director74/achievements/pkg/metrics"
)

// AwardUseCase выдача достижений и чтение выданных достижений пользователя
type AwardUseCase struct {
	userRepo        UserRepository
	achievementRepo AchievementRepository
	awardRepo       AwardRepository
	publisher       messaging.MessagePublisher
	eventsExch      string
	metrics         *metrics.Metrics
	now             func() time.Time
}

// NewAwardUseCase создает usecase выдачи; publisher может быть nil, тогда события не отправляются
func NewAwardUseCase(
	userRepo UserRepository,
	achievementRepo AchievementRepository,
	awardRepo AwardRepository,
	publisher messaging.MessagePublisher,
	eventsExch string,
	m *metrics.Metrics,
) *AwardUseCase {
	return &AwardUseCase{
		userRepo:        userRepo,
		achievementRepo: achievementRepo,
		awardRepo:       awardRepo,
		publisher:       publisher,
		eventsExch:      eventsExch,
		metrics:         m,
		now:             time.Now,
	}
}

// Award выдает достижение пользователю. Повторный вызов для той же пары
// возвращает существующую запись без изменений.
func (uc *AwardUseCase) Award(ctx context.Context, req entity.AwardRequest) (entity.AwardResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return entity.AwardResponse{}, apperrors.NewNotFoundError("Пользователь", req.UserID)
		}
		return entity.AwardResponse{}, err
	}

	achievement, err := uc.achievementRepo.GetByID(ctx, req.AchievementID)
	if err != nil {
		if errors.Is(err, repo.ErrAchievementNotFound) {
			return entity.AwardResponse{}, apperrors.NewNotFoundError("Достижение", req.AchievementID)
		}
		return entity.AwardResponse{}, err
	}

	award, created, err := uc.awardRepo.FindOrCreate(ctx, user.ID, achievement.ID, uc.now())
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return entity.AwardResponse{}, apperrors.NewNotFoundError("Пользователь", req.UserID)
		}
		return entity.AwardResponse{}, apperrors.NewInternalServerError(apperrors.AppendPrefix(err, "ошибка при выдаче достижения"))
	}

	uc.metrics.ObserveAward(created)
	if created {
		logrus.WithFields(logrus.Fields{
			"user_id":        user.ID,
			"achievement_id": achievement.ID,
			"award_id":       award.ID,
		}).Info("Достижение выдано")
		uc.publishAwarded(award, user, achievement)
	}

	return entity.AwardResponse{
		ID:              award.ID,
		UserID:          award.UserID,
		AchievementID:   award.AchievementID,
		AwardedAt:       award.AwardedAt,
		Username:        user.Username,
		AchievementName: achievement.Name,
	}, nil
}

// publishAwarded отправляет событие о новой выдаче; ошибка публикации не отменяет выдачу
func (uc *AwardUseCase) publishAwarded(award entity.UserAchievement, user *entity.User, achievement *entity.Achievement) {
	if uc.publisher == nil {
		return
	}

	event := entity.AchievementAwardedEvent{
		EventID:         uuid.NewString(),
		Type:            entity.EventTypeAchievementAwarded,
		AwardID:         award.ID,
		UserID:          user.ID,
		Username:        user.Username,
		AchievementID:   achievement.ID,
		AchievementName: achievement.Name,
		Points:          achievement.Points,
		AwardedAt:       award.AwardedAt,
	}

	if err := messaging.PublishWithLogging(uc.publisher, uc.eventsExch, entity.EventTypeAchievementAwarded, event); err != nil {
		apperrors.LogErrorWithDetails(err, "AwardUseCase.publishAwarded", map[string]interface{}{
			"award_id": award.ID,
			"event_id": event.EventID,
		})
	}
}

// GetUserAchievements возвращает выданные пользователю достижения.
// Пустой language означает язык из профиля пользователя.
func (uc *AwardUseCase) GetUserAchievements(ctx context.Context, userID uint, language string) (entity.UserAchievementsResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return entity.UserAchievementsResponse{}, apperrors.NewNotFoundError("Пользователь", userID)
		}
		return entity.UserAchievementsResponse{}, err
	}

	locale := user.Language
	if language != "" {
		locale = strings.ToLower(language)
	}

	details, err := uc.awardRepo.ListDetails(ctx, user.ID, locale)
	if err != nil {
		return entity.UserAchievementsResponse{}, apperrors.NewInternalServerError(apperrors.AppendPrefix(err, "ошибка при получении достижений пользователя"))
	}

	return entity.UserAchievementsResponse{
		UserID:       user.ID,
		Username:     user.Username,
		Language:     locale,
		Achievements: details,
	}, nil
}
