package database

import (
	"fmt"

	"gorm.io/gorm"

	"go-gin-blog-api/internal/feature/post"
	"go-gin-blog-api/internal/feature/user"
)

// Migration 一次结构变更，Up/Down 成对
type Migration struct {
	ID   string
	Up   func(db *gorm.DB) error
	Down func(db *gorm.DB) error
}

// All 按时间序。每步自带存在性检查，重复跑是幂等的
func All() []Migration {
	return []Migration{
		{
			ID: "m20231220_users",
			Up: func(db *gorm.DB) error {
				if db.Migrator().HasTable(&user.UserModel{}) {
					return nil
				}
				return db.Migrator().CreateTable(&user.UserModel{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&user.UserModel{})
			},
		},
		{
			ID: "m20231222_add_users_picture_url",
			Up: func(db *gorm.DB) error {
				// add-column-if-not-exists：列已在（手工加过/重复跑）就明确跳过，
				// 而不是吞掉任意 ALTER 错误
				if db.Migrator().HasColumn(&user.UserModel{}, "PictureURL") {
					return nil
				}
				return db.Migrator().AddColumn(&user.UserModel{}, "PictureURL")
			},
			Down: func(db *gorm.DB) error {
				if !db.Migrator().HasColumn(&user.UserModel{}, "PictureURL") {
					return nil
				}
				return db.Migrator().DropColumn(&user.UserModel{}, "PictureURL")
			},
		},
		{
			ID: "m20231223_posts",
			Up: func(db *gorm.DB) error {
				if db.Migrator().HasTable(&post.PostModel{}) {
					return nil
				}
				// 外键带 ON DELETE/UPDATE CASCADE，来自模型 constraint 标签
				return db.Migrator().CreateTable(&post.PostModel{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&post.PostModel{})
			},
		},
	}
}

// Migrate 顺序执行所有 Up
func Migrate(db *gorm.DB) error {
	for _, m := range All() {
		if err := m.Up(db); err != nil {
			return fmt.Errorf("migration %s: %w", m.ID, err)
		}
	}
	return nil
}

// Rollback 逆序执行所有 Down
func Rollback(db *gorm.DB) error {
	ms := All()
	for i := len(ms) - 1; i >= 0; i-- {
		if err := ms[i].Down(db); err != nil {
			return fmt.Errorf("rollback %s: %w", ms[i].ID, err)
		}
	}
	return nil
}
