package database

import (
	"Camellia/internal/model"
	log "log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate 同步表结构并写入基础分类数据（幂等）
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Author{},
		&model.Category{},
		&model.Tag{},
		&model.Post{},
		&model.PostImage{},
		&model.CollectionTask{},
		&model.ModerationRecord{},
	)
	if err != nil {
		return err
	}

	if err = seedCategories(db); err != nil {
		return err
	}

	log.Info("Database migration completed.")
	return nil
}

func seedCategories(db *gorm.DB) error {
	categories := []model.Category{
		{ID: 1, Name: "经验分享", Slug: "experience", Color: "#f472b6"},
		{ID: 2, Name: "妆容教程", Slug: "makeup", Color: "#a78bfa"},
		{ID: 3, Name: "穿搭展示", Slug: "outfit", Color: "#60a5fa"},
		{ID: 4, Name: "好物推荐", Slug: "recommendation", Color: "#34d399"},
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&categories).Error
}
