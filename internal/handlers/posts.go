package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bloglist/internal/metrics"
	"bloglist/internal/services"
	"bloglist/internal/storage"
)

// ownerView 为文章响应中内嵌的所有者摘要（不含口令哈希）。
type ownerView struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

type postView struct {
	ID     uint64     `json:"id"`
	Title  string     `json:"title"`
	Author string     `json:"author,omitempty"`
	URL    string     `json:"url"`
	Likes  int        `json:"likes"`
	User   *ownerView `json:"user,omitempty"`
}

func toPostView(p storage.Post) postView {
	v := postView{ID: p.ID, Title: p.Title, Author: p.Author, URL: p.URL, Likes: p.Likes}
	if p.User != nil {
		v.User = &ownerView{ID: p.User.ID, Username: p.User.Username, Name: p.User.Name}
	}
	return v
}

type createPostRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	// 指针以区分“未提供”与显式 0
	Likes *int `json:"likes"`
}

type updatePostRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	URL    *string `json:"url"`
	Likes  *int    `json:"likes"`
}

// parseID 解析路径参数中的文章 ID。
func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return 0, false
	}
	return id, true
}

// @Summary      文章列表
// @Description  返回全部文章及所有者摘要
// @Tags         posts
// @Produce      json
// @Success      200 {array} postView
// @Router       /api/posts [get]
func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.postSvc.List(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	views := make([]postView, 0, len(posts))
	for _, p := range posts {
		views = append(views, toPostView(p))
	}
	c.JSON(http.StatusOK, views)
}

// @Summary      单篇文章
// @Tags         posts
// @Produce      json
// @Success      200 {object} postView
// @Failure      404 {object} map[string]string
// @Router       /api/posts/{id} [get]
func (h *Handler) getPost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.postSvc.FindByID(c, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toPostView(*p))
}

// @Summary      新建文章
// @Description  title 与 url 必填；likes 缺省为 0（显式 0 原样保留）；文章归属当前令牌对应的账号
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} postView
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Router       /api/posts [post]
func (h *Handler) createPost(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token missing or invalid"})
		return
	}
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	p, err := h.postSvc.Create(c, services.CreatePostInput{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	}, u.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	metrics.PostsCreated.Inc()
	h.auditSvc.Write(c, "info", "post.create", &u.ID, &p.ID, p.Title, c.ClientIP())
	p.User = u
	c.JSON(http.StatusOK, toPostView(*p))
}

// @Summary      更新文章
// @Description  部分更新：仅覆盖请求中提供的字段；提供但为空的 title/url 视为校验失败
// @Tags         posts
// @Accept       json
// @Produce      json
// @Success      200 {object} postView
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/posts/{id} [put]
func (h *Handler) updatePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	p, err := h.postSvc.Update(c, id, services.UpdatePostInput{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toPostView(*p))
}

// @Summary      删除文章
// @Description  仅文章所有者可删除；目标不存在返回 404
// @Tags         posts
// @Security     BearerAuth
// @Success      204 {string} string ""
// @Failure      401 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/posts/{id} [delete]
func (h *Handler) deletePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	u, uok := currentUser(c)
	if !uok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token missing or invalid"})
		return
	}
	if err := h.postSvc.Delete(c, id, u.ID); err != nil {
		h.fail(c, err)
		return
	}
	h.auditSvc.Write(c, "info", "post.delete", &u.ID, &id, "", c.ClientIP())
	c.Status(http.StatusNoContent)
}
