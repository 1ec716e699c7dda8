package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServiceHandler служебные эндпоинты: баннер и проверка здоровья
type ServiceHandler struct {
	appName string
}

func NewServiceHandler(appName string) *ServiceHandler {
	return &ServiceHandler{appName: appName}
}

func (h *ServiceHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Root)
	router.GET("/health", h.HealthCheck)
}

func (h *ServiceHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to " + h.appName,
		"docs":    "/api",
		"health":  "/health",
	})
}

func (h *ServiceHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
