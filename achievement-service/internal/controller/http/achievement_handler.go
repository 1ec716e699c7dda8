package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/director74/achievements/achievement-service/internal/entity"
	"github.com/director74/achievements/achievement-service/internal/usecase"
	apperrors "github.com/director74/achievements/pkg/errors"
)

type AchievementHandler struct {
	achievementUseCase *usecase.AchievementUseCase
	awardUseCase       *usecase.AwardUseCase
}

func NewAchievementHandler(achievementUseCase *usecase.AchievementUseCase, awardUseCase *usecase.AwardUseCase) *AchievementHandler {
	return &AchievementHandler{
		achievementUseCase: achievementUseCase,
		awardUseCase:       awardUseCase,
	}
}

func (h *AchievementHandler) RegisterRoutes(router *gin.Engine) {
	achievements := router.Group("/api/achievements")
	{
		achievements.GET("/", h.ListAchievements)
		achievements.POST("/", h.CreateAchievement)
		achievements.POST("/award/", h.AwardAchievement)
		achievements.GET("/:id", h.GetAchievement)
	}
}

func (h *AchievementHandler) CreateAchievement(c *gin.Context) {
	var req entity.CreateAchievementRequest
	if !apperrors.BindJSON(c, &req) {
		return
	}

	resp, err := h.achievementUseCase.CreateAchievement(c.Request.Context(), req)
	if apperrors.HandleGinError(c, err) {
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AchievementHandler) GetAchievement(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.achievementUseCase.GetAchievement(c.Request.Context(), id)
	if apperrors.HandleGinError(c, err) {
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AchievementHandler) ListAchievements(c *gin.Context) {
	var query entity.ListAchievementsQuery
	if !apperrors.BindQuery(c, &query) {
		return
	}

	resp, err := h.achievementUseCase.ListAchievements(c.Request.Context(), query)
	if apperrors.HandleGinError(c, err) {
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AwardAchievement выдает достижение; повторная выдача возвращает существующую запись
func (h *AchievementHandler) AwardAchievement(c *gin.Context) {
	var req entity.AwardRequest
	if !apperrors.BindJSON(c, &req) {
		return
	}

	resp, err := h.awardUseCase.Award(c.Request.Context(), req)
	if apperrors.HandleGinError(c, err) {
		return
	}

	c.JSON(http.StatusOK, resp)
}
