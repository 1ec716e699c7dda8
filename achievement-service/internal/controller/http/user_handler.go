package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/director74/achievements/achievement-service/internal/entity"
	"github.com/director74/achievements/achievement-service/internal/usecase"
	apperrors "github.com/director74/achievements/pkg/errors"
)

type UserHandler struct {
	userUseCase  *usecase.UserUseCase
	awardUseCase *usecase.AwardUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase, awardUseCase *usecase.AwardUseCase) *UserHandler {
	return &UserHandler{
		userUseCase:  userUseCase,
		awardUseCase: awardUseCase,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.Engine) {
	users := router.Group("/api/users")
	{
		users.POST("/", h.CreateUser)
		users.GET("/", h.GetUserByUsername)
		users.GET("/:id", h.GetUser)
		users.GET("/:id/achievements/", h.GetUserAchievements)
	}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req entity.CreateUserRequest
	if !apperrors.BindJSON(c, &req) {
		return
	}

	resp, err := h.userUseCase.CreateUser(c.Request.Context(), req)
	if apperrors.HandleGinError(c, err) {
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.userUseCase.GetUser(c.Request.Context(), id)
	if apperrors.HandleGinError(c, err) {
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GetUserByUsername(c *gin.Context) {
	var query entity.GetUserByUsernameQuery
	if !apperrors.BindQuery(c, &query) {
		return
	}

	resp, err := h.userUseCase.GetUserByUsername(c.Request.Context(), query.Username)
	if apperrors.HandleGinError(c, err) {
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetUserAchievements список выданных достижений на языке пользователя или из ?language=
func (h *UserHandler) GetUserAchievements(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var query entity.UserAchievementsQuery
	if !apperrors.BindQuery(c, &query) {
		return
	}

	resp, err := h.awardUseCase.GetUserAchievements(c.Request.Context(), id, query.Language)
	if apperrors.HandleGinError(c, err) {
		return
	}

	c.JSON(http.StatusOK, resp)
}
