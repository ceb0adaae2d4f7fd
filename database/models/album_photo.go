package models

// AlbumPhoto 相册与照片的关联，(album_id, photo_id) 唯一
type AlbumPhoto struct {
	AlbumID uint `gorm:"primaryKey;autoIncrement:false" json:"album_id"`
	PhotoID uint `gorm:"primaryKey;autoIncrement:false;index" json:"photo_id"`
}

func (AlbumPhoto) TableName() string {
	return "albums_photos"
}
