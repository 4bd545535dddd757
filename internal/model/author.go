package model

import (
	"time"
)

type Author struct {
	ID          uint64 `gorm:"primaryKey"`
	Username    string `gorm:"type:varchar(50);not null;uniqueIndex:idx_author_username"` // upsert 的自然键
	DisplayName string `gorm:"type:varchar(100)"`
	Avatar      string `gorm:"type:varchar(512)"`
	ProfileURL  string `gorm:"type:varchar(512)"`
	TrustLevel  int    `gorm:"not null;default:0"` // 0-4
	BadgeCount  int    `gorm:"not null;default:0"`
	IsStaff     bool   `gorm:"type:tinyint(1);not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Author) TableName() string {
	return "authors"
}
