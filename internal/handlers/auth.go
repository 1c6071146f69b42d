package handlers

// 认证中间件：对需要身份的变更操作（创建/删除文章）执行严格的线性状态机：
// 1) 提取 Bearer 令牌，缺失即未认证；
// 2) 校验签名与有效期，无效或缺少身份声明即未认证；
// 3) 按身份声明解析账号，成功后放入请求上下文。
// 失败均为终态，不做重试。

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bloglist/internal/metrics"
	"bloglist/internal/storage"
)

const ctxUserKey = "auth_user"

// bearerToken 从 Authorization 头提取 Bearer 令牌，未携带时返回空串。
func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth == "" {
		return ""
	}
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// requireAuth 校验 Bearer 令牌并将对应账号写入 Gin Context。
func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			metrics.AuthFailures.WithLabelValues("missing_token").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token missing or invalid"})
			return
		}
		ident, err := h.tokenSvc.Verify(raw)
		if err != nil {
			metrics.AuthFailures.WithLabelValues("invalid_token").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token missing or invalid"})
			return
		}
		u, err := h.userSvc.FindByID(c, ident.UserID)
		if err != nil {
			metrics.AuthFailures.WithLabelValues("unknown_user").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token missing or invalid"})
			return
		}
		c.Set(ctxUserKey, u)
		c.Next()
	}
}

// currentUser 读取 requireAuth 放入上下文的账号。
func currentUser(c *gin.Context) (*storage.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*storage.User)
	return u, ok && u != nil
}
