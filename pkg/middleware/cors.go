package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig конфигурация CORS
type CORSConfig struct {
	// AllowOrigins список разрешенных источников, "*" разрешает любой
	AllowOrigins []string
	AllowMethods []string
	AllowHeaders []string
	// AllowCredentials разрешает передачу cookie и заголовков авторизации
	AllowCredentials bool
}

// NewCORSConfig создает конфигурацию, разрешающую любые источники, методы и заголовки
func NewCORSConfig() *CORSConfig {
	return &CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}
}

// CORS middleware добавляет CORS-заголовки и отвечает на preflight-запросы
func CORS(config *CORSConfig) gin.HandlerFunc {
	if config == nil {
		config = NewCORSConfig()
	}

	methods := strings.Join(config.AllowMethods, ", ")
	headers := strings.Join(config.AllowHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" || !isOriginAllowed(origin, config.AllowOrigins) {
			c.Next()
			return
		}

		// При включенных credentials браузер не принимает "*" в ответе
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Vary", "Origin")
		if config.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", methods)
			allowHeaders := headers
			if headers == "*" {
				if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
					allowHeaders = requested
				}
			}
			c.Header("Access-Control-Allow-Headers", allowHeaders)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// isOriginAllowed проверяет, входит ли источник в список разрешенных
func isOriginAllowed(origin string, allowed []string) bool {
	for _, o := range allowed {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}
