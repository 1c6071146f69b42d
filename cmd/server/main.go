package main

// @title           Bloglist API
// @version         0.1.0
// @description     基于 Go(Gin) 的博客服务：文章 CRUD、账号注册、登录与令牌认证、聚合统计。
// @schemes         http https
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"bloglist/internal/config"
	"bloglist/internal/handlers"
	"bloglist/internal/metrics"
	"bloglist/internal/middlewares"
	"bloglist/internal/services"
	"bloglist/internal/storage"
)

// main 为服务入口：加载配置、初始化日志/存储/服务、注册路由并启动 HTTP 服务。
func main() {
	// 配置结构化日志格式
	log.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)

	// 加载配置（以配置文件为主，配合内置默认值）
	cfg := config.Load()
	// 生产环境基线检查：禁止默认签名密钥与默认数据库密码进入生产。
	if cfg.Env == "prod" {
		if cfg.Token.Secret == "dev-token-secret-change-me" || cfg.Token.Secret == "" {
			log.Fatal("insecure token secret in prod; set token.secret in config.yaml")
		}
		if cfg.MySQL.Password == "123456" || cfg.MySQL.Password == "password" || cfg.MySQL.Password == "" {
			log.Fatal("insecure mysql password in prod; configure mysql.password in config.yaml")
		}
		if strings.Contains(cfg.MySQL.User, "root") {
			log.Warn("using MySQL root in prod is discouraged")
		}
	}
	log.WithFields(log.Fields{
		"env":        cfg.Env,
		"http_addr":  cfg.HTTPAddr,
		"mysql_dsn":  cfg.MySQL.DSNMasked(),
		"redis_addr": cfg.Redis.Addr,
		"token_ttl":  cfg.Token.TTL.String(),
	}).Info("configuration loaded")

	// 初始化存储（MySQL + Redis）
	db, err := storage.InitMySQL(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect mysql")
	}
	defer storage.CloseMySQL(db)

	rdb, err := storage.InitRedis(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect redis")
	}
	defer func() { _ = rdb.Close() }()

	// 初始化核心服务
	userSvc := services.NewUserService(db)
	postSvc := services.NewPostService(db)
	tokenSvc := services.NewTokenService(cfg)
	auditSvc := services.NewAuditService(db)

	// 可选的初始账号（仅在账号不存在时创建）
	bootstrapInitialUser(cfg, userSvc)

	// HTTP 路由与中间件
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestID())
	router.Use(middlewares.RequestLogger())
	router.Use(middlewares.SecurityHeaders(cfg))
	router.Use(metrics.Handler())

	// 装载 HTTP 处理器
	h := handlers.New(cfg, userSvc, postSvc, tokenSvc, auditSvc, rdb)
	h.RegisterRoutes(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("starting http server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("listen")
		}
	}()

	// 优雅退出
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown")
	} else {
		log.Info("server stopped")
	}
}

// bootstrapInitialUser 按配置创建初始账号；已存在或未启用时直接返回。
func bootstrapInitialUser(cfg config.Config, userSvc *services.UserService) {
	iu := cfg.Bootstrap.InitialUser
	if !iu.Enable {
		return
	}
	if _, err := userSvc.FindByUsername(context.Background(), iu.Username); err == nil {
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.WithError(err).Warn("bootstrap user lookup failed")
		return
	}
	if _, err := userSvc.Create(context.Background(), iu.Username, iu.Password, iu.Name); err != nil {
		log.WithError(err).Warn("bootstrap user creation failed")
		return
	}
	log.WithField("username", iu.Username).Info("bootstrap user created")
}
