package http

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/director74/achievements/achievement-service/internal/entity"
	"github.com/director74/achievements/achievement-service/internal/repo"
)

// memoryStore хранилище в памяти, реализующее все репозитории usecase-слоя
type memoryStore struct {
	mu           sync.Mutex
	users        []entity.User
	achievements []entity.Achievement
	awards       []entity.UserAchievement
	failWith     error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{}
}

func (s *memoryStore) Create(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = uint(len(s.users) + 1)
	s.users = append(s.users, *user)
	return nil
}

func (s *memoryStore) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, repo.ErrUserNotFound
}

func (s *memoryStore) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, repo.ErrUserNotFound
}

// achievementStore отдельный тип, так как методы Create/GetByID совпадают по имени
type achievementStore struct{ *memoryStore }

func (s achievementStore) Create(ctx context.Context, achievement *entity.Achievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	achievement.ID = uint(len(s.achievements) + 1)
	s.achievements = append(s.achievements, *achievement)
	return nil
}

func (s achievementStore) GetByID(ctx context.Context, id uint) (*entity.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.achievements {
		if a.ID == id {
			achievement := a
			return &achievement, nil
		}
	}
	return nil, repo.ErrAchievementNotFound
}

func (s achievementStore) List(ctx context.Context, skip, limit int) ([]entity.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]entity.Achievement, 0)
	for i := skip; i < len(s.achievements) && len(result) < limit; i++ {
		result = append(result, s.achievements[i])
	}
	return result, nil
}

func (s *memoryStore) FindOrCreate(ctx context.Context, userID, achievementID uint, awardedAt time.Time) (entity.UserAchievement, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.awards {
		if a.UserID == userID && a.AchievementID == achievementID {
			return a, false, nil
		}
	}
	award := entity.UserAchievement{
		ID:            uint(len(s.awards) + 1),
		UserID:        userID,
		AchievementID: achievementID,
		AwardedAt:     awardedAt,
	}
	s.awards = append(s.awards, award)
	return award, true, nil
}

func (s *memoryStore) ListDetails(ctx context.Context, userID uint, locale string) ([]entity.UserAchievementDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	details := make([]entity.UserAchievementDetail, 0)
	for _, award := range s.awards {
		if award.UserID != userID {
			continue
		}
		for _, a := range s.achievements {
			if a.ID == award.AchievementID {
				details = append(details, entity.UserAchievementDetail{
					Name:        a.LocalizedName(locale),
					Description: a.LocalizedDescription(locale),
					Points:      a.Points,
					AwardedAt:   award.AwardedAt,
				})
			}
		}
	}
	return details, nil
}

// statsStore считает агрегаты так же, как SQL-запросы репозитория
type statsStore struct{ *memoryStore }

func (s statsStore) TopUserByAchievementCount(ctx context.Context) (*entity.UserAchievementCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	counts := make(map[uint]int64)
	for _, a := range s.awards {
		counts[a.UserID]++
	}
	var top *entity.UserAchievementCount
	for _, u := range s.users {
		if counts[u.ID] == 0 {
			continue
		}
		if top == nil || counts[u.ID] > top.TotalAchievements {
			top = &entity.UserAchievementCount{UserID: u.ID, Username: u.Username, TotalAchievements: counts[u.ID]}
		}
	}
	return top, nil
}

func (s statsStore) UserPointTotals(ctx context.Context) ([]entity.UserPoints, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	points := make(map[uint]int)
	for _, a := range s.achievements {
		points[a.ID] = a.Points
	}
	totals := make([]entity.UserPoints, 0, len(s.users))
	for _, u := range s.users {
		total := entity.UserPoints{UserID: u.ID, Username: u.Username}
		for _, award := range s.awards {
			if award.UserID == u.ID {
				total.TotalPoints += int64(points[award.AchievementID])
			}
		}
		totals = append(totals, total)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].UserID < totals[j].UserID })
	return totals, nil
}

func (s statsStore) AwardsBetween(ctx context.Context, from, to time.Time) ([]entity.AwardMoment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	moments := make([]entity.AwardMoment, 0)
	for _, award := range s.awards {
		if award.AwardedAt.Before(from) || !award.AwardedAt.Before(to) {
			continue
		}
		moment := entity.AwardMoment{UserID: award.UserID, AwardedAt: award.AwardedAt}
		for _, u := range s.users {
			if u.ID == award.UserID {
				moment.Username = u.Username
			}
		}
		moments = append(moments, moment)
	}
	return moments, nil
}
