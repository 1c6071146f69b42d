package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bloglist/internal/metrics"
	"bloglist/internal/services"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// @Summary      登录
// @Description  校验用户名与口令，签发 Bearer 访问令牌
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200 {object} loginResponse
// @Failure      401 {object} map[string]string
// @Router       /api/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	u, err := h.userSvc.FindByUsername(c, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.AuthFailures.WithLabelValues("unknown_user").Inc()
			h.fail(c, services.ErrBadCredentials)
			return
		}
		h.fail(c, err)
		return
	}
	if !h.userSvc.CheckPassword(u, req.Password) {
		metrics.AuthFailures.WithLabelValues("bad_password").Inc()
		h.auditSvc.Write(c, "warn", "user.login_failed", &u.ID, nil, u.Username, c.ClientIP())
		h.fail(c, services.ErrBadCredentials)
		return
	}
	token, _, err := h.tokenSvc.Issue(u)
	if err != nil {
		h.fail(c, err)
		return
	}
	metrics.Logins.Inc()
	h.auditSvc.Write(c, "info", "user.login", &u.ID, nil, u.Username, c.ClientIP())
	c.JSON(http.StatusOK, loginResponse{Token: token, Username: u.Username, Name: u.Name})
}
