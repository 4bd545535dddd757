package repository

import (
	"Camellia/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type CollectionTaskRepo interface {
	CreateTask(ctx context.Context, task *model.CollectionTask) error
	GetTask(ctx context.Context, id string) (*model.CollectionTask, error)
	UpdateTask(ctx context.Context, id string, updates map[string]interface{}) error
	DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type collectionTaskRepoImpl struct {
	db *gorm.DB
}

func NewCollectionTaskRepository(db *gorm.DB) CollectionTaskRepo {
	return &collectionTaskRepoImpl{
		db: db,
	}
}

func (s *collectionTaskRepoImpl) CreateTask(ctx context.Context, task *model.CollectionTask) error {
	return s.db.WithContext(ctx).Create(task).Error
}

func (s *collectionTaskRepoImpl) GetTask(ctx context.Context, id string) (*model.CollectionTask, error) {
	var task model.CollectionTask
	err := s.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *collectionTaskRepoImpl) UpdateTask(ctx context.Context, id string, updates map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&model.CollectionTask{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// DeleteFinishedBefore 清理终态的历史任务记录
func (s *collectionTaskRepoImpl) DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("status IN ? AND updated_at < ?", []string{"completed", "failed"}, cutoff).
		Delete(&model.CollectionTask{})
	return result.RowsAffected, result.Error
}
