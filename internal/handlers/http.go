package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"bloglist/internal/config"
	"bloglist/internal/metrics"
	"bloglist/internal/middlewares"
	"bloglist/internal/services"
)

// Handler 聚合所有依赖（配置、存储、服务）并注册所有 HTTP 路由。
type Handler struct {
	cfg      config.Config
	userSvc  *services.UserService
	postSvc  *services.PostService
	tokenSvc *services.TokenService
	auditSvc *services.AuditService
	rdb      *redis.Client
}

// New 构造 Handler，将各领域服务注入，用于后续路由注册与处理。
func New(cfg config.Config, us *services.UserService, ps *services.PostService, ts *services.TokenService, as *services.AuditService, rdb *redis.Client) *Handler {
	return &Handler{cfg: cfg, userSvc: us, postSvc: ps, tokenSvc: ts, auditSvc: as, rdb: rdb}
}

// RegisterRoutes 在 Gin 路由上挂载博客服务的全部端点（文章、账号、登录、统计与运维）。
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	window := func() time.Duration {
		if h.cfg.Limits.Window > 0 {
			return h.cfg.Limits.Window
		}
		return time.Minute
	}()
	byIP := func(c *gin.Context) string { return c.ClientIP() }

	api := r.Group("/api")

	// 文章：读取公开；创建与删除需要 Bearer 令牌
	api.GET("/posts", h.listPosts)
	api.GET("/posts/:id", h.getPost)
	api.POST("/posts", h.requireAuth(), h.createPost)
	api.PUT("/posts/:id", h.updatePost)
	api.DELETE("/posts/:id", h.requireAuth(), h.deletePost)

	// 账号注册与列表；注册按 IP 限流
	api.POST("/users", middlewares.RateLimit(h.rdb, "register", h.cfg.Limits.RegisterPerMinute, window, byIP), h.registerUser)
	api.GET("/users", h.listUsers)

	// 登录换取访问令牌；按 IP 限流
	api.POST("/login", middlewares.RateLimit(h.rdb, "login", h.cfg.Limits.LoginPerMinute, window, byIP), h.login)

	// 聚合统计
	api.GET("/stats", h.stats)

	// 运维端点
	r.GET("/metrics", h.metrics)
	r.GET("/healthz", h.healthz)
}

// @Summary      Prometheus 指标
// @Description  暴露 Prometheus 指标（text/plain; version=0.0.4）
// @Tags         ops
// @Produce      plain
// @Success      200 {string} string
// @Router       /metrics [get]
func (h *Handler) metrics(c *gin.Context) { metrics.Exposer()(c) }

// @Summary      健康检查
// @Tags         ops
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /healthz [get]
func (h *Handler) healthz(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) }
