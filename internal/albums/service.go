package albums

import (
	"context"
	"log"

	"github.com/anoixa/photo-album/cache"
	"github.com/anoixa/photo-album/database"
	"github.com/anoixa/photo-album/database/models"
	albumsrepo "github.com/anoixa/photo-album/database/repo/albums"
	photosrepo "github.com/anoixa/photo-album/database/repo/photos"
	"github.com/anoixa/photo-album/utils"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Service 相册服务层
// userID 由认证中间件给出，服务直接信任
type Service struct {
	db       database.Provider
	albums   *albumsrepo.Repository
	photos   *photosrepo.Repository
	cache    *cache.Helper
	validate *validator.Validate
}

// NewService 创建新的相册服务，cacheHelper 可以为 nil
func NewService(db database.Provider, albums *albumsrepo.Repository, photos *photosrepo.Repository, cacheHelper *cache.Helper) *Service {
	if cacheHelper == nil {
		cacheHelper = cache.NewHelper(nil)
	}
	return &Service{
		db:       db,
		albums:   albums,
		photos:   photos,
		cache:    cacheHelper,
		validate: newValidator(),
	}
}

// ListForUser 获取用户的全部相册，不含照片
func (s *Service) ListForUser(ctx context.Context, userID uint) ([]*models.Album, error) {
	// 先取版本再查库，查询期间发生的写入会切换版本，旧结果不会被读到
	version, err := s.cache.AlbumListVersion(ctx, userID)
	if err != nil {
		log.Printf("[Albums] Failed to read album list version for user %d: %v", userID, err)
		return s.listFromStore(ctx, userID)
	}

	cached, err := s.cache.GetCachedAlbumList(ctx, userID, version)
	if err == nil {
		return cached, nil
	}
	if !cache.IsCacheMiss(err) {
		log.Printf("[Albums] Failed to read album list cache for user %d: %v", userID, err)
	}

	albums, err := s.listFromStore(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.CacheAlbumList(ctx, userID, version, albums); err != nil {
		utils.LogIfDevf("[Albums] Failed to cache album list for user %d: %v", userID, err)
	}
	return albums, nil
}

func (s *Service) listFromStore(ctx context.Context, userID uint) ([]*models.Album, error) {
	albums, err := s.albums.WithContext(ctx).ListByUser(userID)
	if err != nil {
		return nil, internal(MsgListFailed, err)
	}
	return albums, nil
}

// GetOne 获取用户拥有的相册及其照片
func (s *Service) GetOne(ctx context.Context, userID, albumID uint) (*models.Album, error) {
	album, err := s.albums.WithContext(ctx).FindOwnedWithPhotos(albumID, userID)
	if err != nil {
		return nil, internal(MsgGetFailed, err)
	}
	if album == nil {
		return nil, notFound(MsgAlbumNotFound)
	}
	return album, nil
}

// Create 创建相册，所有者固定为 userID
func (s *Service) Create(ctx context.Context, userID uint, in CreateAlbumInput) (*models.Album, error) {
	in.normalize()
	if fields := validateInput(s.validate, &in, in.values()); fields != nil {
		return nil, validationError(fields)
	}

	album := &models.Album{
		UserID:  userID,
		Title:   in.Title,
		URL:     in.URL,
		Comment: in.Comment,
	}
	if err := s.albums.WithContext(ctx).CreateAlbum(album); err != nil {
		return nil, internal(MsgCreateFailed, err)
	}

	s.invalidateAlbumList(ctx, userID)
	utils.LogIfDevf("[Albums] User %d created album %d", userID, album.ID)
	return album, nil
}

// Update 部分更新相册，先校验归属再校验字段
func (s *Service) Update(ctx context.Context, userID, albumID uint, in UpdateAlbumInput) (*models.Album, error) {
	in.normalize()

	var updated *models.Album
	err := s.transaction(ctx, MsgUpdateFailed, func(own ownership) error {
		album, err := own.album(albumID, userID)
		if err != nil {
			return internal(MsgUpdateFailed, err)
		}
		if album == nil {
			return forbidden(MsgAlbumNotOwned)
		}

		values := in.values()
		fields := append([]FieldError(nil), in.typeErrors...)
		fields = append(fields, validateInput(s.validate, &in, values)...)
		if len(fields) > 0 {
			return validationError(fields)
		}

		values["user_id"] = userID
		if err := own.albums.UpdateFields(albumID, values); err != nil {
			return internal(MsgUpdateFailed, err)
		}

		updated, err = own.albums.GetAlbumByID(albumID)
		if err != nil {
			return internal(MsgUpdateFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateAlbumList(ctx, userID)
	return updated, nil
}

// AttachPhotos 将照片加入相册
// 检查顺序：全部已存在(400) -> 相册或照片不属于用户(403) -> 写入
func (s *Service) AttachPhotos(ctx context.Context, userID, albumID uint, in AttachPhotosInput) error {
	if fields := validateInput(s.validate, &in, in.values()); fields != nil {
		return validationError(fields)
	}
	ids := in.unique()

	return s.transaction(ctx, MsgAttachFailed, func(own ownership) error {
		album, err := own.album(albumID, userID)
		if err != nil {
			return internal(MsgAttachFailed, err)
		}

		current, err := own.albums.PhotoIDs(albumID)
		if err != nil {
			return internal(MsgAttachFailed, err)
		}
		if containsAll(current, ids) {
			return conflict(MsgPhotoAlreadyExists)
		}

		if album == nil {
			return forbidden(MsgAlbumOrPhotoNotOwned)
		}
		allOwned, err := own.allPhotos(userID, ids)
		if err != nil {
			return internal(MsgAttachFailed, err)
		}
		if !allOwned {
			return forbidden(MsgAlbumOrPhotoNotOwned)
		}

		// 部分重叠时只写入缺失的关联
		if err := own.albums.AttachPhotos(albumID, missingFrom(current, ids)); err != nil {
			return internal(MsgAttachFailed, err)
		}
		return nil
	})
}

// DetachPhoto 从相册移除单张照片
// 检查顺序：关联不存在(404) -> 相册不属于用户(403) -> 删除
func (s *Service) DetachPhoto(ctx context.Context, userID, albumID, photoID uint) error {
	return s.transaction(ctx, MsgDetachFailed, func(own ownership) error {
		album, err := own.album(albumID, userID)
		if err != nil {
			return internal(MsgDetachFailed, err)
		}

		exists, err := own.albums.HasPhoto(albumID, photoID)
		if err != nil {
			return internal(MsgDetachFailed, err)
		}
		if !exists {
			return notFound(MsgPhotoNotInAlbum)
		}
		if album == nil {
			return forbidden(MsgAlbumNotOwned)
		}

		if _, err := own.albums.DetachPhoto(albumID, photoID); err != nil {
			return internal(MsgDetachFailed, err)
		}
		return nil
	})
}

// Destroy 删除相册及其全部照片关联，在同一事务中完成
func (s *Service) Destroy(ctx context.Context, userID, albumID uint) error {
	err := s.transaction(ctx, MsgDeleteFailed, func(own ownership) error {
		album, err := own.album(albumID, userID)
		if err != nil {
			return internal(MsgDeleteFailed, err)
		}
		if album == nil {
			return forbidden(MsgAlbumNotOwned)
		}

		if err := own.albums.ClearPhotos(albumID); err != nil {
			return internal(MsgDeleteFailed, err)
		}
		if err := own.albums.DeleteAlbum(albumID); err != nil {
			return internal(MsgDeleteFailed, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateAlbumList(ctx, userID)
	utils.LogIfDevf("[Albums] User %d deleted album %d", userID, albumID)
	return nil
}

// transaction 在事务中执行 fn，非服务错误（如提交失败）统一包装为 internal
func (s *Service) transaction(ctx context.Context, msg string, fn func(own ownership) error) error {
	err := s.db.TransactionWithContext(ctx, func(tx *gorm.DB) error {
		return fn(ownership{
			albums: s.albums.WithTx(tx),
			photos: s.photos.WithTx(tx),
		})
	})
	if err == nil {
		return nil
	}
	if _, ok := AsError(err); ok {
		return err
	}
	return internal(msg, err)
}

// invalidateAlbumList 提交成功后清除相册列表缓存
func (s *Service) invalidateAlbumList(ctx context.Context, userID uint) {
	if err := s.cache.InvalidateAlbumList(ctx, userID); err != nil {
		log.Printf("[Albums] Failed to invalidate album list cache for user %d: %v", userID, err)
	}
}
