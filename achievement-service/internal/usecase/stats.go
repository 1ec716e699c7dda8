package usecase

import (
	"sort"
	"time"

	"github.com/director74/achievements/achievement-service/internal/entity"
)

// StreakDays длина окна серии в календарных днях
const StreakDays = 7

// MaxPoints возвращает первого пользователя с наибольшей суммой очков.
// Если у всех сумма нулевая, возвращает nil.
func MaxPoints(totals []entity.UserPoints) *entity.UserPoints {
	var best *entity.UserPoints
	for i := range totals {
		if best == nil || totals[i].TotalPoints > best.TotalPoints {
			best = &totals[i]
		}
	}
	if best == nil || best.TotalPoints <= 0 {
		return nil
	}

	result := *best
	return &result
}

// MaxDifference возвращает пару пользователей с минимальной и максимальной суммой
// среди пользователей с ненулевыми очками; nil, если таких меньше двух.
func MaxDifference(totals []entity.UserPoints) *entity.UserPointsDifference {
	users := eligibleSorted(totals)
	if len(users) < 2 {
		return nil
	}

	low, high := users[0], users[len(users)-1]
	return newDifference(low, high)
}

// MinDifference возвращает соседнюю по сумме пару с наименьшим разрывом.
// При равных разрывах побеждает первая пара по возрастанию.
func MinDifference(totals []entity.UserPoints) *entity.UserPointsDifference {
	users := eligibleSorted(totals)
	if len(users) < 2 {
		return nil
	}

	best := 0
	for i := 1; i < len(users)-1; i++ {
		if gap(users, i) < gap(users, best) {
			best = i
		}
	}

	return newDifference(users[best], users[best+1])
}

func gap(users []entity.UserPoints, i int) int64 {
	return users[i+1].TotalPoints - users[i].TotalPoints
}

// eligibleSorted отбрасывает пользователей без очков и сортирует остальных по возрастанию суммы.
// Сортировка стабильная, поэтому равные суммы сохраняют входной порядок.
func eligibleSorted(totals []entity.UserPoints) []entity.UserPoints {
	users := make([]entity.UserPoints, 0, len(totals))
	for _, t := range totals {
		if t.TotalPoints > 0 {
			users = append(users, t)
		}
	}

	sort.SliceStable(users, func(i, j int) bool {
		return users[i].TotalPoints < users[j].TotalPoints
	})
	return users
}

func newDifference(low, high entity.UserPoints) *entity.UserPointsDifference {
	return &entity.UserPointsDifference{
		User1ID:    low.UserID,
		User1Name:  low.Username,
		User2ID:    high.UserID,
		User2Name:  high.Username,
		Difference: high.TotalPoints - low.TotalPoints,
	}
}

// StreakWindow окно из StreakDays календарных дней, заканчивающееся сегодня
type StreakWindow struct {
	Start time.Time // полночь первого дня
	End   time.Time // полночь последнего дня (сегодня)
	Until time.Time // полночь следующего за окном дня, граница не включается
}

// NewStreakWindow строит окно серии для момента now в часовом поясе loc
func NewStreakWindow(now time.Time, loc *time.Location) StreakWindow {
	local := now.In(loc)
	y, m, d := local.Date()

	return StreakWindow{
		Start: time.Date(y, m, d-(StreakDays-1), 0, 0, 0, 0, loc),
		End:   time.Date(y, m, d, 0, 0, 0, 0, loc),
		Until: time.Date(y, m, d+1, 0, 0, 0, 0, loc),
	}
}

// Contains сообщает, попадает ли момент t в окно
func (w StreakWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.Until)
}

type streakProgress struct {
	username string
	days     map[string]struct{}
	count    int
}

// SevenDayStreaks отбирает пользователей, получавших достижения в каждый день окна.
// AchievementsCount считает все выдачи в окне, а не число дней.
func SevenDayStreaks(moments []entity.AwardMoment, window StreakWindow) []entity.StreakUser {
	loc := window.Start.Location()
	byUser := make(map[uint]*streakProgress)
	userIDs := make([]uint, 0)

	for _, moment := range moments {
		if !window.Contains(moment.AwardedAt) {
			continue
		}

		progress, ok := byUser[moment.UserID]
		if !ok {
			progress = &streakProgress{
				username: moment.Username,
				days:     make(map[string]struct{}, StreakDays),
			}
			byUser[moment.UserID] = progress
			userIDs = append(userIDs, moment.UserID)
		}

		progress.days[moment.AwardedAt.In(loc).Format(time.DateOnly)] = struct{}{}
		progress.count++
	}

	sort.Slice(userIDs, func(i, j int) bool { return userIDs[i] < userIDs[j] })

	streaks := make([]entity.StreakUser, 0)
	for _, id := range userIDs {
		progress := byUser[id]
		if len(progress.days) < StreakDays {
			continue
		}
		streaks = append(streaks, entity.StreakUser{
			UserID:            id,
			Username:          progress.username,
			StreakStart:       entity.NewDate(window.Start),
			StreakEnd:         entity.NewDate(window.End),
			AchievementsCount: progress.count,
		})
	}

	return streaks
}
