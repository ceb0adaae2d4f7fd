package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/anoixa/photo-album/database"
	"github.com/anoixa/photo-album/database/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// SetupProvider 为每个测试创建独立的内存 SQLite 数据库并完成迁移
func SetupProvider(t *testing.T) *database.GormProvider {
	t.Helper()

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:photo_album_test_%d?mode=memory&cache=shared", seq)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	// 单连接，事务内外的查询不会看到不同的内存库
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := database.AutoMigrate(gdb); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return database.NewGormProviderFromDB(gdb, "sqlite")
}

// CreateUser 插入测试用户
func CreateUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{Username: username, Password: "not-a-hash"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

// CreateAlbum 插入属于 userID 的测试相册
func CreateAlbum(t *testing.T, db *gorm.DB, userID uint, title string) *models.Album {
	t.Helper()

	album := &models.Album{
		UserID:  userID,
		Title:   title,
		URL:     "https://example.com/" + title,
		Comment: "comment for " + title,
	}
	if err := db.Create(album).Error; err != nil {
		t.Fatalf("create album %s: %v", title, err)
	}
	return album
}

// CreatePhoto 插入测试照片，uploaderID 为 0 时不设置上传者
func CreatePhoto(t *testing.T, db *gorm.DB, uploaderID uint, title string) *models.Photo {
	t.Helper()

	photo := &models.Photo{
		Title:   title,
		URL:     "https://example.com/photos/" + title + ".jpg",
		Comment: "photo " + title,
	}
	if uploaderID != 0 {
		photo.UserID = &uploaderID
	}
	if err := db.Create(photo).Error; err != nil {
		t.Fatalf("create photo %s: %v", title, err)
	}
	return photo
}

// AttachPhoto 直接写入一条相册照片关联
func AttachPhoto(t *testing.T, db *gorm.DB, albumID, photoID uint) {
	t.Helper()

	if err := db.Create(&models.AlbumPhoto{AlbumID: albumID, PhotoID: photoID}).Error; err != nil {
		t.Fatalf("attach photo %d to album %d: %v", photoID, albumID, err)
	}
}

// CountAlbumPhotos 统计相册的关联行数
func CountAlbumPhotos(t *testing.T, db *gorm.DB, albumID uint) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&models.AlbumPhoto{}).Where("album_id = ?", albumID).Count(&count).Error; err != nil {
		t.Fatalf("count album photos: %v", err)
	}
	return count
}
