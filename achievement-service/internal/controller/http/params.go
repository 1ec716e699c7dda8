package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/director74/achievements/pkg/errors"
)

// parseID читает положительный числовой параметр пути
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		apperrors.HandleGinError(c, apperrors.NewBadRequestError("некорректный "+name))
		return 0, false
	}
	return uint(id), true
}
