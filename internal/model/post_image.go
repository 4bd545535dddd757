package model

import (
	"time"
)

type PostImage struct {
	ID           string `gorm:"type:char(36);primaryKey"`
	PostID       string `gorm:"type:char(36);not null;index:idx_image_post_sort"`
	URL          string `gorm:"type:varchar(512);not null"`
	ThumbnailURL string `gorm:"type:varchar(512)"`
	Alt          string `gorm:"type:varchar(255)"`
	Width        int    `gorm:"not null;default:0"`
	Height       int    `gorm:"not null;default:0"`
	OriginalURL  string `gorm:"type:varchar(512)"`
	IsFeatured   bool   `gorm:"type:tinyint(1);not null;default:0"`
	SortOrder    int8   `gorm:"not null;default:0;index:idx_image_post_sort"`
	CreatedAt    time.Time
}

func (PostImage) TableName() string {
	return "post_images"
}
