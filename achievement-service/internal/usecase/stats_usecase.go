package usecase

import (
	"context"
	"time"

	"github.com/director74/achievements/achievement-service/internal/entity"
	apperrors "github.com/director74/achievements/pkg/errors"
	"github.com/director74/achievements/pkg/metrics"
)

// StatsUseCase статистика по выданным достижениям; каждый вызов пересчитывает данные заново
type StatsUseCase struct {
	statsRepo StatsRepository
	location  *time.Location
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewStatsUseCase(statsRepo StatsRepository, location *time.Location, m *metrics.Metrics) *StatsUseCase {
	if location == nil {
		location = time.Local
	}
	return &StatsUseCase{
		statsRepo: statsRepo,
		location:  location,
		metrics:   m,
		now:       time.Now,
	}
}

// MaxAchievements возвращает пользователя с наибольшим числом достижений или nil
func (uc *StatsUseCase) MaxAchievements(ctx context.Context) (*entity.UserAchievementCount, error) {
	defer uc.metrics.ObserveStat("max_achievements", time.Now())

	top, err := uc.statsRepo.TopUserByAchievementCount(ctx)
	if err != nil {
		return nil, apperrors.NewInternalServerError(apperrors.AppendPrefix(err, "ошибка при подсчете достижений"))
	}
	return top, nil
}

// MaxPoints возвращает пользователя с наибольшей суммой очков или nil
func (uc *StatsUseCase) MaxPoints(ctx context.Context) (*entity.UserPoints, error) {
	defer uc.metrics.ObserveStat("max_points", time.Now())

	totals, err := uc.pointTotals(ctx)
	if err != nil {
		return nil, err
	}
	return MaxPoints(totals), nil
}

// MaxDifference возвращает пару с максимальной разницей очков или nil
func (uc *StatsUseCase) MaxDifference(ctx context.Context) (*entity.UserPointsDifference, error) {
	defer uc.metrics.ObserveStat("max_difference", time.Now())

	totals, err := uc.pointTotals(ctx)
	if err != nil {
		return nil, err
	}
	return MaxDifference(totals), nil
}

// MinDifference возвращает пару с минимальной разницей очков или nil
func (uc *StatsUseCase) MinDifference(ctx context.Context) (*entity.UserPointsDifference, error) {
	defer uc.metrics.ObserveStat("min_difference", time.Now())

	totals, err := uc.pointTotals(ctx)
	if err != nil {
		return nil, err
	}
	return MinDifference(totals), nil
}

// SevenDayStreak возвращает пользователей, получавших достижения каждый из последних 7 дней
func (uc *StatsUseCase) SevenDayStreak(ctx context.Context) ([]entity.StreakUser, error) {
	defer uc.metrics.ObserveStat("seven_day_streak", time.Now())

	window := NewStreakWindow(uc.now(), uc.location)
	moments, err := uc.statsRepo.AwardsBetween(ctx, window.Start, window.Until)
	if err != nil {
		return nil, apperrors.NewInternalServerError(apperrors.AppendPrefix(err, "ошибка при выборке выдач за неделю"))
	}
	return SevenDayStreaks(moments, window), nil
}

func (uc *StatsUseCase) pointTotals(ctx context.Context) ([]entity.UserPoints, error) {
	totals, err := uc.statsRepo.UserPointTotals(ctx)
	if err != nil {
		return nil, apperrors.NewInternalServerError(apperrors.AppendPrefix(err, "ошибка при подсчете очков"))
	}
	return totals, nil
}
