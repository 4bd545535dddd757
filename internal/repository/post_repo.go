package repository

import (
	"Camellia/internal/model"
	"Camellia/internal/pkg/consts"
	"context"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post, images []*model.PostImage, tags []*model.Tag) error
	GetPost(ctx context.Context, id string) (*model.Post, error)
	GetPostBySource(ctx context.Context, platform, sourceID string) (*model.Post, error)
	ListVisible(ctx context.Context, trustLevel, page, size int) ([]*model.Post, int64, error)
	ListByStatus(ctx context.Context, status string, page, size int) ([]*model.Post, int64, error)
	ListFeatured(ctx context.Context, limit int) ([]*model.Post, error)
	UpdateStatusFrom(ctx context.Context, id, fromStatus string, updates map[string]interface{}) (int64, error)
	UpdatePost(ctx context.Context, post *model.Post) error
	AddEngagement(ctx context.Context, id string, views, likes, replies int64, score float64) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s PostRepoImpl) CreatePost(ctx context.Context, post *model.Post, images []*model.PostImage, tags []*model.Tag) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		if len(images) > 0 {
			if err := tx.Create(images).Error; err != nil {
				return err
			}
		}
		if len(tags) > 0 {
			if err := tx.Model(post).Association("Tags").Append(tags); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s PostRepoImpl) GetPost(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("Author").Preload("Category").Preload("Images").Preload("Tags").
		First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s PostRepoImpl) GetPostBySource(ctx context.Context, platform, sourceID string) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Where("source_platform = ? AND source_id = ?", platform, sourceID).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListVisible 按观察者信任等级过滤已发布帖子，时间倒序分页
func (s PostRepoImpl) ListVisible(ctx context.Context, trustLevel, page, size int) ([]*model.Post, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("status = ? AND min_trust_level <= ?", consts.PostStatusPublished, trustLevel)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*model.Post
	err := query.
		Preload("Author").Preload("Category").Preload("Images").Preload("Tags").
		Order("created_at DESC, id").
		Offset((page - 1) * size).Limit(size).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (s PostRepoImpl) ListByStatus(ctx context.Context, status string, page, size int) ([]*model.Post, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Post{}).Where("status = ?", status)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*model.Post
	err := query.
		Preload("Author").Preload("Category").Preload("Images").Preload("Tags").
		Order("created_at DESC, id").
		Offset((page - 1) * size).Limit(size).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (s PostRepoImpl) ListFeatured(ctx context.Context, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Where("featured = ?", true).
		Preload("Author").Preload("Category").Preload("Images").Preload("Tags").
		Order("created_at DESC, id").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdateStatusFrom 带前置状态条件的状态更新，返回受影响行数。
// 条件不满足时返回 0 行，调用方据此判定状态冲突。
func (s PostRepoImpl) UpdateStatusFrom(ctx context.Context, id, fromStatus string, updates map[string]interface{}) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (s PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Updates(post).Error
}

// AddEngagement 互动计数增量回写，score 为覆盖式评分，负数表示不更新
func (s PostRepoImpl) AddEngagement(ctx context.Context, id string, views, likes, replies int64, score float64) error {
	updates := map[string]interface{}{
		"views":   gorm.Expr("views + ?", views),
		"likes":   gorm.Expr("likes + ?", likes),
		"replies": gorm.Expr("replies + ?", replies),
	}
	if score >= 0 {
		updates["score"] = score
	}
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (s PostRepoImpl) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
