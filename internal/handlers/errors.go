package handlers

// 错误分类到 HTTP 状态码的集中映射：
// 校验失败与唯一性冲突 -> 400，未认证 -> 401，非所有者 -> 403，目标不存在 -> 404，
// 其余视为内部错误 -> 500（仅外显消息字符串，不泄露内部细节）。

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"bloglist/internal/services"
)

// statusForError 将领域错误映射为 HTTP 状态码与外显消息。
func statusForError(err error) (int, string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Reason
	case errors.Is(err, services.ErrUsernameTaken):
		return http.StatusBadRequest, "username must be unique"
	case errors.Is(err, services.ErrInvalidToken):
		return http.StatusUnauthorized, "token missing or invalid"
	case errors.Is(err, services.ErrBadCredentials):
		return http.StatusUnauthorized, "invalid username or password"
	case errors.Is(err, services.ErrNotOwner):
		return http.StatusForbidden, "only the owner may delete a post"
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, "not found"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// fail 输出错误响应；内部错误额外记录日志。
func (h *Handler) fail(c *gin.Context, err error) {
	status, msg := statusForError(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).WithFields(log.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("request failed")
	}
	c.JSON(status, gin.H{"error": msg})
}
