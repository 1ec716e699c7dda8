package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/director74/achievements/achievement-service/internal/entity"
	"github.com/director74/achievements/achievement-service/internal/usecase"
	apperrors "github.com/director74/achievements/pkg/errors"
)

// Сообщения для случаев, когда статистику посчитать не из чего
const (
	msgNoAchievements      = "No achievements found"
	msgNotEnoughUsers      = "Not enough users with achievements"
	msgNoMinimumDifference = "Could not calculate minimum difference"
)

type StatsHandler struct {
	statsUseCase *usecase.StatsUseCase
}

func NewStatsHandler(statsUseCase *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{statsUseCase: statsUseCase}
}

func (h *StatsHandler) RegisterRoutes(router *gin.Engine) {
	stats := router.Group("/api/stats")
	{
		stats.GET("/max-achievements/", h.MaxAchievements)
		stats.GET("/max-points/", h.MaxPoints)
		stats.GET("/max-difference/", h.MaxDifference)
		stats.GET("/min-difference/", h.MinDifference)
		stats.GET("/seven-day-streak/", h.SevenDayStreak)
	}
}

func (h *StatsHandler) MaxAchievements(c *gin.Context) {
	top, err := h.statsUseCase.MaxAchievements(c.Request.Context())
	if apperrors.HandleGinError(c, err) {
		return
	}
	if top == nil {
		c.JSON(http.StatusOK, entity.MessageResponse{Message: msgNoAchievements})
		return
	}

	c.JSON(http.StatusOK, top)
}

func (h *StatsHandler) MaxPoints(c *gin.Context) {
	best, err := h.statsUseCase.MaxPoints(c.Request.Context())
	if apperrors.HandleGinError(c, err) {
		return
	}
	if best == nil {
		c.JSON(http.StatusOK, entity.MessageResponse{Message: msgNoAchievements})
		return
	}

	c.JSON(http.StatusOK, best)
}

func (h *StatsHandler) MaxDifference(c *gin.Context) {
	diff, err := h.statsUseCase.MaxDifference(c.Request.Context())
	if apperrors.HandleGinError(c, err) {
		return
	}
	if diff == nil {
		c.JSON(http.StatusOK, entity.MessageResponse{Message: msgNotEnoughUsers})
		return
	}

	c.JSON(http.StatusOK, diff)
}

func (h *StatsHandler) MinDifference(c *gin.Context) {
	diff, err := h.statsUseCase.MinDifference(c.Request.Context())
	if apperrors.HandleGinError(c, err) {
		return
	}
	if diff == nil {
		c.JSON(http.StatusOK, entity.MessageResponse{Message: msgNoMinimumDifference})
		return
	}

	c.JSON(http.StatusOK, diff)
}

func (h *StatsHandler) SevenDayStreak(c *gin.Context) {
	streaks, err := h.statsUseCase.SevenDayStreak(c.Request.Context())
	if apperrors.HandleGinError(c, err) {
		return
	}

	c.JSON(http.StatusOK, streaks)
}
