package models

import "time"

// Album 相册，UserID 为所有者，不接受客户端传入
type Album struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	URL       string    `gorm:"type:varchar(2048)" json:"url"`
	Comment   string    `gorm:"type:varchar(1024)" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Photos []*Photo `gorm:"many2many:albums_photos;" json:"photos,omitempty"`
}
