package core

import (
	"net/http"

	"github.com/anoixa/photo-album/api/common"
	handlerAlbums "github.com/anoixa/photo-album/api/handler/albums"
	handlerAuth "github.com/anoixa/photo-album/api/handler/auth"
	"github.com/anoixa/photo-album/api/middleware"
	"github.com/anoixa/photo-album/cache"
	"github.com/anoixa/photo-album/database"
	svcAlbums "github.com/anoixa/photo-album/internal/albums"
	"github.com/anoixa/photo-album/internal/auth"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// ServerVersion 版本信息
type ServerVersion struct {
	Version    string
	CommitHash string
}

// RouterDependencies 路由注册依赖
type RouterDependencies struct {
	Provider        database.Provider
	CacheHelper     *cache.Helper
	AlbumService    *svcAlbums.Service
	JWTService      *auth.JWTService
	LoginService    *auth.LoginService
	AuthRateLimiter *middleware.IPRateLimiter
	APIRateLimiter  *middleware.IPRateLimiter
	ServerVersion   ServerVersion
	EnableSwagger   bool
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(router *gin.Engine, deps *RouterDependencies) {
	// 基础路由
	registerBasicRoutes(router, deps)

	// 相册路由
	registerAlbumRoutes(router, deps)

	// API 路由
	registerAPIRoutes(router, deps)
}

// registerBasicRoutes 注册基础路由
func registerBasicRoutes(router *gin.Engine, deps *RouterDependencies) {
	healthHandler := NewHealthHandler(deps.Provider, deps.CacheHelper)
	router.GET("/health", healthHandler.Handle)

	router.GET("/version", func(context *gin.Context) {
		common.RespondSuccess(context, gin.H{
			"version": deps.ServerVersion.Version,
			"commit":  deps.ServerVersion.CommitHash,
		})
	})

	router.GET("/metrics", func(context *gin.Context) {
		context.JSON(http.StatusOK, middleware.GetMetrics())
	})

	if deps.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// registerAlbumRoutes 注册 /albums 路由
func registerAlbumRoutes(router *gin.Engine, deps *RouterDependencies) {
	albumHandler := handlerAlbums.NewHandler(deps.AlbumService)

	albumsGroup := router.Group("/albums")
	albumsGroup.Use(apiMiddlewares(deps)...)
	albumHandler.RegisterRoutes(albumsGroup)
}

// registerAPIRoutes 注册 /api 路由
func registerAPIRoutes(router *gin.Engine, deps *RouterDependencies) {
	albumHandler := handlerAlbums.NewHandler(deps.AlbumService)
	loginHandler := handlerAuth.NewLoginHandler(deps.LoginService)

	apiGroup := router.Group("/api")
	apiGroup.Use(func(context *gin.Context) { // 所有API禁止缓存
		context.Header("Cache-Control", "no-store")
		context.Next()
	})
	{
		authGroup := apiGroup.Group("/auth")
		if deps.AuthRateLimiter != nil {
			authGroup.Use(deps.AuthRateLimiter.Middleware())
		}
		{
			authGroup.POST("/login", loginHandler.LoginHandlerFunc) // POST /api/auth/login
		}

		v1 := apiGroup.Group("/v1")
		v1.Use(apiMiddlewares(deps)...)
		{
			albumHandler.RegisterRoutes(v1.Group("/albums")) // /api/v1/albums
		}
	}
}

// apiMiddlewares 需要认证的路由共用的中间件
func apiMiddlewares(deps *RouterDependencies) []gin.HandlerFunc {
	handlers := make([]gin.HandlerFunc, 0, 2)
	if deps.APIRateLimiter != nil {
		handlers = append(handlers, deps.APIRateLimiter.Middleware())
	}
	return append(handlers, middleware.JWTAuth(deps.JWTService))
}
