package repository

import (
	"Camellia/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AuthorRepo interface {
	UpsertByUsername(ctx context.Context, author *model.Author) error
	GetAuthor(ctx context.Context, id uint64) (*model.Author, error)
	GetAuthorByUsername(ctx context.Context, username string) (*model.Author, error)
}

type AuthorRepoImpl struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) AuthorRepo {
	return &AuthorRepoImpl{
		db: db,
	}
}

// UpsertByUsername 以 username 为自然键写入作者档案，已存在时刷新资料字段。
// 写入后 author.ID 为库内主键。
func (s AuthorRepoImpl) UpsertByUsername(ctx context.Context, author *model.Author) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "username"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"display_name", "avatar", "profile_url", "trust_level", "badge_count", "is_staff", "updated_at",
			}),
		}).
		Create(author).Error
	if err != nil {
		return err
	}
	// MySQL 的 upsert 冲突路径不回填自增主键，显式查一次
	return s.db.WithContext(ctx).
		Select("id").
		First(author, "username = ?", author.Username).Error
}

func (s AuthorRepoImpl) GetAuthor(ctx context.Context, id uint64) (*model.Author, error) {
	var author model.Author
	err := s.db.WithContext(ctx).First(&author, id).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (s AuthorRepoImpl) GetAuthorByUsername(ctx context.Context, username string) (*model.Author, error) {
	var author model.Author
	err := s.db.WithContext(ctx).First(&author, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}
