package models

import "time"

// Photo 照片，UserID 为上传者（可为空）
type Photo struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	URL       string    `gorm:"type:varchar(2048);not null" json:"url"`
	Comment   string    `gorm:"type:varchar(1024)" json:"comment"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Albums []*Album `gorm:"many2many:albums_photos;" json:"-"`
}
