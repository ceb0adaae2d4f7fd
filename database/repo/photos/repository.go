package photos

import (
	"context"

	"github.com/anoixa/photo-album/database"
	"github.com/anoixa/photo-album/database/models"
	"gorm.io/gorm"
)

// Repository 照片仓库
type Repository struct {
	db database.Provider
}

// NewRepository 创建新的照片仓库
func NewRepository(db database.Provider) *Repository {
	return &Repository{db: db}
}

// OwnedPhotoIDs 返回 ids 中属于该用户的照片 ID
// 照片出现在该用户任一相册中，或由该用户上传，即视为属于该用户
func (r *Repository) OwnedPhotoIDs(userID uint, ids []uint) ([]uint, error) {
	owned := make([]uint, 0, len(ids))
	if len(ids) == 0 {
		return owned, nil
	}

	db := r.db.DB()
	viaAlbums := db.
		Table("albums_photos").
		Select("albums_photos.photo_id").
		Joins("JOIN albums ON albums.id = albums_photos.album_id").
		Where("albums.user_id = ?", userID)

	err := db.
		Model(&models.Photo{}).
		Where("photos.id IN ?", ids).
		Where(db.Where("photos.user_id = ?", userID).Or("photos.id IN (?)", viaAlbums)).
		Order("photos.id asc").
		Pluck("photos.id", &owned).Error
	return owned, err
}

// ListByUser 返回用户的全部照片，规则同 OwnedPhotoIDs
func (r *Repository) ListByUser(userID uint) ([]*models.Photo, error) {
	photos := make([]*models.Photo, 0)
	db := r.db.DB()
	viaAlbums := db.
		Table("albums_photos").
		Select("albums_photos.photo_id").
		Joins("JOIN albums ON albums.id = albums_photos.album_id").
		Where("albums.user_id = ?", userID)

	err := db.
		Where("photos.user_id = ?", userID).
		Or("photos.id IN (?)", viaAlbums).
		Order("photos.id asc").
		Find(&photos).Error
	return photos, err
}

// CreatePhoto 创建照片记录
func (r *Repository) CreatePhoto(photo *models.Photo) error {
	return r.db.DB().Create(photo).Error
}

// WithContext 返回带上下文的仓库
func (r *Repository) WithContext(ctx context.Context) *Repository {
	return &Repository{db: &contextProvider{Provider: r.db, ctx: ctx}}
}

// WithTx 返回绑定到事务的仓库
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: &txProvider{Provider: r.db, tx: tx}}
}

// contextProvider 包装 Provider 添加上下文
type contextProvider struct {
	database.Provider
	ctx context.Context
}

func (c *contextProvider) DB() *gorm.DB {
	return c.Provider.WithContext(c.ctx)
}

func (c *contextProvider) Transaction(fn database.TxFunc) error {
	return c.Provider.TransactionWithContext(c.ctx, fn)
}

type txProvider struct {
	database.Provider
	tx *gorm.DB
}

func (t *txProvider) DB() *gorm.DB {
	return t.tx
}

func (t *txProvider) Transaction(fn database.TxFunc) error {
	return fn(t.tx)
}
