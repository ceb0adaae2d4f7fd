package app

import (
	"fmt"

	"github.com/anoixa/photo-album/cache"
	"github.com/anoixa/photo-album/config"
	"github.com/anoixa/photo-album/database"
	"github.com/anoixa/photo-album/internal/albums"
	"github.com/anoixa/photo-album/internal/auth"
	"github.com/anoixa/photo-album/internal/repositories"
	"github.com/anoixa/photo-album/utils"
)

// Container 依赖注入容器 - 管理所有服务的生命周期
type Container struct {
	config        *config.Config
	provider      database.Provider
	cacheProvider cache.Provider
	cacheHelper   *cache.Helper

	Repositories *repositories.Repositories
	AlbumService *albums.Service
	JWTService   *auth.JWTService
	LoginService *auth.LoginService
}

// NewContainer 创建新的依赖注入容器
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config: cfg,
	}
}

// Init 初始化数据库、缓存和服务
func (c *Container) Init() error {
	if err := c.InitDatabase(); err != nil {
		return err
	}
	if err := c.InitServices(); err != nil {
		return err
	}
	return nil
}

// InitDatabase 打开数据库连接并创建仓库
func (c *Container) InitDatabase() error {
	utils.LogIfDev("Initializing DI container...")

	provider, err := database.NewGormProvider(c.config)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	c.UseDatabase(provider)

	utils.LogIfDev("DI container initialized successfully")
	return nil
}

// UseDatabase 使用已有的数据库提供者，测试中替代 InitDatabase
func (c *Container) UseDatabase(provider database.Provider) {
	c.provider = provider
	c.Repositories = repositories.NewRepositories(provider)
	utils.LogIfDev("Repositories initialized")
}

// InitServices 初始化缓存与业务服务
func (c *Container) InitServices() error {
	cacheProvider, err := cache.NewFactory(c.config)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	c.cacheProvider = cacheProvider
	c.cacheHelper = cache.NewHelper(cacheProvider, cache.HelperConfig{
		AlbumListTTL: c.config.CacheAlbumListTTL,
	})

	jwtService, err := auth.NewJWTService(c.config.JWTSecret, c.config.JWTExpiresIn)
	if err != nil {
		return fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	c.JWTService = jwtService
	c.LoginService = auth.NewLoginService(c.Repositories.Accounts, jwtService)

	c.AlbumService = albums.NewService(c.provider, c.Repositories.Albums, c.Repositories.Photos, c.cacheHelper)
	utils.LogIfDev("Services initialized")
	return nil
}

// GetDatabaseProvider 获取数据库提供者
func (c *Container) GetDatabaseProvider() database.Provider {
	return c.provider
}

// GetCacheHelper 获取缓存辅助对象
func (c *Container) GetCacheHelper() *cache.Helper {
	return c.cacheHelper
}

// GetConfig 获取配置
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// Close 关闭所有服务
func (c *Container) Close() error {
	utils.LogIfDev("Closing DI container...")

	if c.cacheProvider != nil {
		if err := c.cacheProvider.Close(); err != nil {
			utils.LogIfDevf("Error closing cache provider: %v", err)
		}
	}

	if c.provider != nil {
		if err := c.provider.Close(); err != nil {
			utils.LogIfDevf("Error closing database: %v", err)
		}
	}

	utils.LogIfDev("DI container closed")
	return nil
}
