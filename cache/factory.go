package cache

import (
	"fmt"
	"log"

	"github.com/anoixa/photo-album/cache/memory"
	"github.com/anoixa/photo-album/cache/redis"
	"github.com/anoixa/photo-album/config"
)

// NewFactory 根据 cache_type 创建缓存提供者
// cache_type 为 none 时返回 (nil, nil)，调用方按无缓存处理
func NewFactory(cfg *config.Config) (Provider, error) {
	switch cfg.CacheType {
	case "", "memory":
		provider, err := memory.NewMemory(memory.DefaultConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to create memory cache: %w", err)
		}
		log.Println("[CacheFactory] Using memory cache")
		return provider, nil

	case "redis":
		provider, err := redis.NewRedisFromConfig(&redis.Config{
			Address:      cfg.CacheRedisAddr,
			Password:     cfg.CacheRedisPassword,
			DB:           cfg.CacheRedisDB,
			PoolSize:     10,
			MinIdleConns: 2,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis cache: %w", err)
		}
		log.Printf("[CacheFactory] Using redis cache at %s", cfg.CacheRedisAddr)
		return provider, nil

	case "none":
		log.Println("[CacheFactory] Cache disabled")
		return nil, nil

	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.CacheType)
	}
}
