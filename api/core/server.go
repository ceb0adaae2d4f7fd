package core

import (
	"net/http"
	"time"

	"github.com/anoixa/photo-album/api/middleware"
	"github.com/anoixa/photo-album/config"
	"github.com/anoixa/photo-album/internal/app"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// setupRouter 创建 gin 引擎并注册中间件与路由，返回的函数用于停止后台清理
func setupRouter(cfg *config.Config, container *app.Container) (*gin.Engine, func()) {
	// 仅在开发版本时启用 gin 日志
	if !config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if config.IsDevelopment() {
		router.Use(gin.Logger())
	}
	router.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if origins := cfg.CorsOrigins(); len(origins) > 0 {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	_ = router.SetTrustedProxies(nil)

	// 响应压缩，/metrics 供采集端直接读取
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	// 并发限制，避免数据库连接被占满
	concurrencyLimiter := middleware.NewConcurrencyLimiter(cfg.ServerMaxConcurrency)
	router.Use(concurrencyLimiter.Middleware())

	// 请求ID追踪
	router.Use(middleware.RequestID())

	// 基础监控指标
	router.Use(middleware.Metrics())

	// 记录 handler 上报的内部错误
	router.Use(middleware.ErrorReporter())

	// 速率限制
	authRateLimiter := middleware.NewIPRateLimiter(cfg.RateLimitAuthRPS, cfg.RateLimitAuthBurst, cfg.RateLimitExpireTime)
	apiRateLimiter := middleware.NewIPRateLimiter(cfg.RateLimitApiRPS, cfg.RateLimitApiBurst, cfg.RateLimitExpireTime)
	cleanup := func() {
		authRateLimiter.StopCleanup()
		apiRateLimiter.StopCleanup()
	}

	RegisterRoutes(router, &RouterDependencies{
		Provider:        container.GetDatabaseProvider(),
		CacheHelper:     container.GetCacheHelper(),
		AlbumService:    container.AlbumService,
		JWTService:      container.JWTService,
		LoginService:    container.LoginService,
		AuthRateLimiter: authRateLimiter,
		APIRateLimiter:  apiRateLimiter,
		ServerVersion: ServerVersion{
			Version:    config.Version,
			CommitHash: config.CommitHash,
		},
		EnableSwagger: true,
	})

	return router, cleanup
}

// StartServer 创建 http.Server
func StartServer(cfg *config.Config, container *app.Container) (*http.Server, func()) {
	router, clean := setupRouter(cfg, container)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return srv, clean
}
