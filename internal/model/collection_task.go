package model

import (
	"time"
)

type CollectionTask struct {
	ID           string `gorm:"type:char(36);primaryKey"`
	URL          string `gorm:"type:varchar(512);not null"`
	Status       string `gorm:"type:varchar(20);not null;default:'pending';index:idx_task_status"` // pending | processing | completed | failed
	Progress     int    `gorm:"not null;default:0"` // 0-100
	Error        string `gorm:"type:varchar(512)"`
	ResultPostID string `gorm:"type:char(36)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (CollectionTask) TableName() string {
	return "collection_tasks"
}
