package handler

import (
	"errors"
	"net/http"

	"github.com/0xj4an-Work/landing-latam/internal/logger"
	"github.com/0xj4an-Work/landing-latam/internal/logic"
	"github.com/gin-gonic/gin"
)

// handleError 将logic层错误映射为HTTP响应。
// 校验类错误原样返回给调用方，未知错误只记日志、对外返回通用消息。
func handleError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, logic.ErrTeamNotFound), errors.Is(err, logic.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, logic.ErrDuplicateEmail),
		errors.Is(err, logic.ErrInvalidMilestoneType),
		logic.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
