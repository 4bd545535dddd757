package repository

import (
	"Camellia/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type ModerationRecordRepo interface {
	CreateRecord(ctx context.Context, record *model.ModerationRecord) error
	ListByPost(ctx context.Context, postID string) ([]*model.ModerationRecord, error)
	CountSince(ctx context.Context, action string, since time.Time) (int64, error)
}

type moderationRecordRepoImpl struct {
	db *gorm.DB
}

func NewModerationRecordRepository(db *gorm.DB) ModerationRecordRepo {
	return &moderationRecordRepoImpl{
		db: db,
	}
}

func (s *moderationRecordRepoImpl) CreateRecord(ctx context.Context, record *model.ModerationRecord) error {
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *moderationRecordRepoImpl) ListByPost(ctx context.Context, postID string) ([]*model.ModerationRecord, error) {
	var records []*model.ModerationRecord
	err := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *moderationRecordRepoImpl) CountSince(ctx context.Context, action string, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ModerationRecord{}).
		Where("action = ? AND created_at >= ?", action, since).
		Count(&count).Error
	return count, err
}
