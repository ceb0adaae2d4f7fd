package repositories

import (
	"github.com/anoixa/photo-album/database"
	"github.com/anoixa/photo-album/database/repo/accounts"
	"github.com/anoixa/photo-album/database/repo/albums"
	"github.com/anoixa/photo-album/database/repo/photos"
)

// Repositories 集中管理所有数据库仓库
type Repositories struct {
	Accounts *accounts.Repository
	Albums   *albums.Repository
	Photos   *photos.Repository
}

// NewRepositories 创建所有仓库实例
func NewRepositories(provider database.Provider) *Repositories {
	return &Repositories{
		Accounts: accounts.NewRepository(provider),
		Albums:   albums.NewRepository(provider),
		Photos:   photos.NewRepository(provider),
	}
}
