package model

import (
	"fmt"
	"time"
)

// ModerationRecord 审核决策的结构化记录，仅追加，不修改不删除
type ModerationRecord struct {
	ID        uint64 `gorm:"primaryKey"`
	PostID    string `gorm:"type:char(36);not null;index:idx_record_post"`
	Actor     string `gorm:"type:varchar(50);not null"`
	Action    string `gorm:"type:varchar(16);not null"` // approve | reject
	Reason    string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
}

func (ModerationRecord) TableName() string {
	return "moderation_records"
}

// NoteLine 渲染为 processing_notes 中追加的一行文本
func (r *ModerationRecord) NoteLine() string {
	actionText := "批准发布"
	if r.Action == "reject" {
		actionText = "拒绝发布"
	}
	line := fmt.Sprintf("\n%s: 管理员 %s %s", r.CreatedAt.Format(time.RFC3339), r.Actor, actionText)
	if r.Reason != "" {
		line += " - " + r.Reason
	}
	return line
}
