package model

import "time"

type Category struct {
	ID          uint64  `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_category_name"`
	Slug        string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_category_slug"`
	Color       string  `gorm:"type:varchar(16)"`
	Description *string `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
}

func (Category) TableName() string {
	return "categories"
}
