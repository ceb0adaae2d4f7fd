package core

import (
	"context"
	"net/http"
	"time"

	"github.com/anoixa/photo-album/cache"
	"github.com/anoixa/photo-album/config"
	"github.com/anoixa/photo-album/database"
	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

const healthCheckTimeout = 3 * time.Second

// HealthHandler 健康检查处理器
type HealthHandler struct {
	provider    database.Provider
	cacheHelper *cache.Helper
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(provider database.Provider, cacheHelper *cache.Helper) *HealthHandler {
	return &HealthHandler{provider: provider, cacheHelper: cacheHelper}
}

// Handle 返回数据库与缓存状态，任一检查失败时返回 503
func (h *HealthHandler) Handle(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	checks := gin.H{
		"database": checkDatabaseHealth(ctx, h.provider),
		"cache":    checkCacheHealth(ctx, h.cacheHelper),
	}

	status := "ok"
	httpStatus := http.StatusOK
	for _, result := range checks {
		if result != "ok" && result != "disabled" {
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(httpStatus, gin.H{
		"status":  status,
		"uptime":  time.Since(startTime).Round(time.Second).String(),
		"version": config.Version,
		"checks":  checks,
	})
}

func checkDatabaseHealth(ctx context.Context, provider database.Provider) string {
	if provider == nil {
		return "not initialized"
	}
	if err := provider.Ping(ctx); err != nil {
		return "unavailable: " + err.Error()
	}
	return "ok"
}

func checkCacheHealth(ctx context.Context, helper *cache.Helper) string {
	if helper == nil || helper.Provider() == nil {
		return "disabled"
	}
	if err := helper.Ping(ctx); err != nil {
		return "unavailable: " + err.Error()
	}
	return "ok"
}
