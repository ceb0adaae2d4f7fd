package cache

import (
	"fmt"
	"strings"
)

// KeyBuilder 缓存键构建器
type KeyBuilder struct {
	prefix string
	sep    string
}

// NewKeyBuilder 创建新的键构建器
func NewKeyBuilder(prefix string) *KeyBuilder {
	return &KeyBuilder{
		prefix: prefix,
		sep:    ":",
	}
}

// Build 构建缓存键
func (kb *KeyBuilder) Build(parts ...string) string {
	if len(parts) == 0 {
		return kb.prefix
	}
	return kb.prefix + kb.sep + strings.Join(parts, kb.sep)
}

// BuildID 构建带 ID 的缓存键，多个 ID 依次拼接
func (kb *KeyBuilder) BuildID(ids ...interface{}) string {
	var b strings.Builder
	b.WriteString(kb.prefix)
	for _, id := range ids {
		b.WriteString(kb.sep)
		fmt.Fprint(&b, id)
	}
	return b.String()
}

var (
	// AlbumList 用户相册列表缓存，album_list:<user_id>:<version>
	AlbumList = NewKeyBuilder("album_list")

	// AlbumListVersion 用户相册列表版本，album_list_version:<user_id>
	AlbumListVersion = NewKeyBuilder("album_list_version")

	// HealthProbe 健康检查写入的探测键
	HealthProbe = NewKeyBuilder("health")
)
