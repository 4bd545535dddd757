package model

import "time"

type Tag struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(50);not null;uniqueIndex:idx_tag_name"`
	Count     int    `gorm:"not null;default:0"` // 使用次数，尽力而为的计数，不保证与关联表强一致
	CreatedAt time.Time
}

func (Tag) TableName() string {
	return "tags"
}
