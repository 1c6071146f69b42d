package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bloglist/internal/metrics"
	"bloglist/internal/storage"
)

// postSummary 为账号响应中内嵌的文章摘要。
type postSummary struct {
	ID     uint64 `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	URL    string `json:"url"`
}

type userView struct {
	ID       uint64        `json:"id"`
	Username string        `json:"username"`
	Name     string        `json:"name,omitempty"`
	Posts    []postSummary `json:"posts"`
}

func toUserView(u storage.User) userView {
	v := userView{ID: u.ID, Username: u.Username, Name: u.Name, Posts: make([]postSummary, 0, len(u.Posts))}
	for _, p := range u.Posts {
		v.Posts = append(v.Posts, postSummary{ID: p.ID, Title: p.Title, Author: p.Author, URL: p.URL})
	}
	return v
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// @Summary      注册账号
// @Description  用户名与口令均必填且不少于 3 个字符；用户名全局唯一；响应不含口令哈希
// @Tags         users
// @Accept       json
// @Produce      json
// @Success      200 {object} userView
// @Failure      400 {object} map[string]string
// @Router       /api/users [post]
func (h *Handler) registerUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	u, err := h.userSvc.Create(c, req.Username, req.Password, req.Name)
	if err != nil {
		h.fail(c, err)
		return
	}
	metrics.AccountsRegistered.Inc()
	h.auditSvc.Write(c, "info", "user.register", &u.ID, nil, u.Username, c.ClientIP())
	c.JSON(http.StatusOK, toUserView(*u))
}

// @Summary      账号列表
// @Description  返回全部账号及各自的文章摘要
// @Tags         users
// @Produce      json
// @Success      200 {array} userView
// @Router       /api/users [get]
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.userSvc.List(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, toUserView(u))
	}
	c.JSON(http.StatusOK, views)
}
