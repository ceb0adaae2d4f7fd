package cache

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/anoixa/photo-album/database/models"
)

// DefaultAlbumListCacheExpiration 相册列表缓存过期时间
const DefaultAlbumListCacheExpiration = 10 * time.Minute

// addJitter 添加随机抖动（+0~10%），防止缓存雪崩
func addJitter(duration time.Duration) time.Duration {
	if duration < 10 {
		return duration
	}
	jitter := time.Duration(rand.Int63n(int64(duration) / 10))
	return duration + jitter
}

// HelperConfig 缓存辅助工具配置
type HelperConfig struct {
	AlbumListTTL time.Duration
}

// DefaultHelperConfig 返回默认配置
func DefaultHelperConfig() HelperConfig {
	return HelperConfig{
		AlbumListTTL: DefaultAlbumListCacheExpiration,
	}
}

// Helper 缓存辅助工具，provider 为 nil 时所有读取都视为未命中
type Helper struct {
	provider Provider
	config   HelperConfig

	lastVersion atomic.Int64
}

// NewHelper 创建新的缓存辅助工具
func NewHelper(provider Provider, cfg ...HelperConfig) *Helper {
	c := DefaultHelperConfig()
	if len(cfg) > 0 {
		c = cfg[0]
	}
	if c.AlbumListTTL <= 0 {
		c.AlbumListTTL = DefaultAlbumListCacheExpiration
	}
	return &Helper{
		provider: provider,
		config:   c,
	}
}

// Provider 返回底层缓存提供者
func (h *Helper) Provider() Provider {
	return h.provider
}

// AlbumListVersion 返回用户相册列表的当前版本，不存在时生成新版本
// 列表缓存键包含版本，读取方应在查询数据库之前取得版本
func (h *Helper) AlbumListVersion(ctx context.Context, userID uint) (int64, error) {
	if h.provider == nil {
		return 0, nil
	}

	var version int64
	err := h.provider.Get(ctx, AlbumListVersion.BuildID(userID), &version)
	if err == nil {
		return version, nil
	}
	if !IsCacheMiss(err) {
		return 0, err
	}
	return h.bumpAlbumListVersion(ctx, userID)
}

func (h *Helper) bumpAlbumListVersion(ctx context.Context, userID uint) (int64, error) {
	version := h.nextVersion()
	if err := h.provider.Set(ctx, AlbumListVersion.BuildID(userID), version, 0); err != nil {
		return 0, err
	}
	return version, nil
}

// nextVersion 基于当前时间生成版本，同一进程内严格递增
func (h *Helper) nextVersion() int64 {
	for {
		last := h.lastVersion.Load()
		next := time.Now().UnixNano()
		if next <= last {
			next = last + 1
		}
		if h.lastVersion.CompareAndSwap(last, next) {
			return next
		}
	}
}

// CacheAlbumList 缓存用户相册列表，version 为查询前取得的版本
func (h *Helper) CacheAlbumList(ctx context.Context, userID uint, version int64, albums []*models.Album) error {
	if h.provider == nil {
		return fmt.Errorf("cache provider not initialized")
	}
	return h.provider.Set(ctx, AlbumList.BuildID(userID, version), albums, addJitter(h.config.AlbumListTTL))
}

// GetCachedAlbumList 获取指定版本的用户相册列表
func (h *Helper) GetCachedAlbumList(ctx context.Context, userID uint, version int64) ([]*models.Album, error) {
	if h.provider == nil {
		return nil, ErrCacheMiss
	}

	var albums []*models.Album
	if err := h.provider.Get(ctx, AlbumList.BuildID(userID, version), &albums); err != nil {
		return nil, err
	}
	if albums == nil {
		albums = make([]*models.Album, 0)
	}
	return albums, nil
}

// InvalidateAlbumList 切换到新版本，旧版本的列表不再被读取，随 TTL 过期
func (h *Helper) InvalidateAlbumList(ctx context.Context, userID uint) error {
	if h.provider == nil {
		return nil
	}
	_, err := h.bumpAlbumListVersion(ctx, userID)
	return err
}

// Ping 写入并读取探测键，用于健康检查
func (h *Helper) Ping(ctx context.Context) error {
	if h.provider == nil {
		return nil
	}

	key := HealthProbe.Build("probe")
	if err := h.provider.Set(ctx, key, "ok", time.Minute); err != nil {
		return err
	}
	exists, err := h.provider.Exists(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("cache probe key %s not found after write", key)
	}
	return nil
}
