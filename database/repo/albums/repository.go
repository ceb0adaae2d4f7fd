package albums

import (
	"context"
	"errors"

	"github.com/anoixa/photo-album/database"
	"github.com/anoixa/photo-album/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository 相册仓库 - 封装所有相册相关的数据库操作
type Repository struct {
	db database.Provider
}

// NewRepository 创建新的相册仓库
func NewRepository(db database.Provider) *Repository {
	return &Repository{db: db}
}

// ListByUser 获取用户的全部相册（不含照片），按 ID 排序
func (r *Repository) ListByUser(userID uint) ([]*models.Album, error) {
	albums := make([]*models.Album, 0)
	err := r.db.DB().
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&albums).Error
	return albums, err
}

// FindOwned 获取用户拥有的相册，并对该行加锁
// 相册不存在或不属于该用户时返回 (nil, nil)
func (r *Repository) FindOwned(albumID, userID uint) (*models.Album, error) {
	var album models.Album
	err := r.db.DB().
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&album, "id = ? AND user_id = ?", albumID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &album, nil
}

// FindOwnedWithPhotos 获取用户拥有的相册及其照片
// 相册不存在或不属于该用户时返回 (nil, nil)
func (r *Repository) FindOwnedWithPhotos(albumID, userID uint) (*models.Album, error) {
	var album models.Album
	err := r.db.DB().
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("photos.id asc")
		}).
		First(&album, "id = ? AND user_id = ?", albumID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if album.Photos == nil {
		album.Photos = make([]*models.Photo, 0)
	}
	return &album, nil
}

// GetAlbumByID 通过ID获取相册
func (r *Repository) GetAlbumByID(albumID uint) (*models.Album, error) {
	var album models.Album
	if err := r.db.DB().First(&album, albumID).Error; err != nil {
		return nil, err
	}
	return &album, nil
}

// PhotoIDs 返回相册当前关联的照片 ID
func (r *Repository) PhotoIDs(albumID uint) ([]uint, error) {
	ids := make([]uint, 0)
	err := r.db.DB().
		Model(&models.AlbumPhoto{}).
		Where("album_id = ?", albumID).
		Order("photo_id asc").
		Pluck("photo_id", &ids).Error
	return ids, err
}

// HasPhoto 检查照片是否在相册中
func (r *Repository) HasPhoto(albumID, photoID uint) (bool, error) {
	var count int64
	err := r.db.DB().
		Model(&models.AlbumPhoto{}).
		Where("album_id = ? AND photo_id = ?", albumID, photoID).
		Count(&count).Error
	return count > 0, err
}

// CreateAlbum 创建相册
func (r *Repository) CreateAlbum(album *models.Album) error {
	return r.db.DB().Create(album).Error
}

// UpdateFields 部分更新相册字段，只写入 fields 中出现的列
func (r *Repository) UpdateFields(albumID uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.DB().
		Model(&models.Album{}).
		Where("id = ?", albumID).
		Updates(fields).Error
}

// AttachPhotos 批量添加照片到相册，已存在的关联忽略
func (r *Repository) AttachPhotos(albumID uint, photoIDs []uint) error {
	if len(photoIDs) == 0 {
		return nil
	}

	rows := make([]models.AlbumPhoto, len(photoIDs))
	for i, id := range photoIDs {
		rows[i] = models.AlbumPhoto{AlbumID: albumID, PhotoID: id}
	}
	return r.db.DB().
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

// DetachPhoto 从相册移除单张照片，返回删除的行数
func (r *Repository) DetachPhoto(albumID, photoID uint) (int64, error) {
	result := r.db.DB().
		Where("album_id = ? AND photo_id = ?", albumID, photoID).
		Delete(&models.AlbumPhoto{})
	return result.RowsAffected, result.Error
}

// ClearPhotos 移除相册的全部照片关联
func (r *Repository) ClearPhotos(albumID uint) error {
	return r.db.DB().
		Where("album_id = ?", albumID).
		Delete(&models.AlbumPhoto{}).Error
}

// DeleteAlbum 删除相册行
func (r *Repository) DeleteAlbum(albumID uint) error {
	return r.db.DB().Delete(&models.Album{}, albumID).Error
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

// txProvider 包装 Provider，所有查询走同一个事务
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
