package model

import (
	"time"
)

type Post struct {
	ID         string `gorm:"type:char(36);primaryKey"`
	Title      string `gorm:"type:varchar(255);not null"`
	Content    string `gorm:"type:mediumtext;not null"`
	RawContent string `gorm:"type:mediumtext"`
	Excerpt    string `gorm:"type:varchar(255)"`

	// 来源信息
	SourceURL      string `gorm:"type:varchar(512)"`
	SourceID       string `gorm:"type:varchar(64)"`
	SourcePlatform string `gorm:"type:varchar(32);not null"` // linux.do | original
	PostType       string `gorm:"type:varchar(16);not null;default:'original'"` // original | collected | shared

	AuthorID   uint64  `gorm:"not null;index:idx_post_author"`
	CategoryID *uint64 `gorm:"index:idx_post_category"`

	// 可见性策略
	MinTrustLevel   int            `gorm:"not null;default:0"` // 0-4，创建后不可变更
	MatureContent   bool           `gorm:"type:tinyint(1);not null;default:0"`
	ContentWarnings WarningList    `gorm:"type:json"`

	// 审核状态
	Status          string `gorm:"type:varchar(20);not null;default:'draft';index:idx_post_status"` // draft | pending_approval | published | hidden | deleted | rejected
	Approved        bool   `gorm:"type:tinyint(1);not null;default:0"`
	Featured        bool   `gorm:"type:tinyint(1);not null;default:0"`
	ProcessingNotes string `gorm:"type:text"` // 追加式审核记录文本视图，来源为 moderation_records

	// 互动计数（由外部互动系统经 Kafka 回写，审核流程不触碰）
	Views   int     `gorm:"not null;default:0"`
	Likes   int     `gorm:"not null;default:0"`
	Replies int     `gorm:"not null;default:0"`
	Score   float64 `gorm:"not null;default:0"`

	CreatedAt        time.Time `gorm:"index:idx_post_created"`
	UpdatedAt        time.Time
	PublishedAt      *time.Time // 首次审核通过时写入，此后不再清除
	SourceCreatedAt  *time.Time
	CollectedAt      *time.Time
	CollectorVersion string `gorm:"type:varchar(16)"`

	// 关联关系
	Author   Author      `gorm:"foreignKey:AuthorID;references:ID"`
	Category *Category   `gorm:"foreignKey:CategoryID;references:ID"`
	Images   []PostImage `gorm:"foreignKey:PostID;references:ID"`
	Tags     []Tag       `gorm:"many2many:post_tags;"`
}

func (Post) TableName() string {
	return "posts"
}
