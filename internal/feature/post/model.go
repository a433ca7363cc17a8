package post

import (
	"time"

	"go-gin-blog-api/internal/feature/user"
)

// PostModel posts 表。title 全局唯一；user_id 外键随 users 级联
type PostModel struct {
	ID        int32   `gorm:"primaryKey;autoIncrement"`
	Title     string  `gorm:"uniqueIndex;size:255;not null"`
	MdContent *string `gorm:"type:text"`
	UserID    int32   `gorm:"not null;index"`

	// 仅为建外键，不随 JSON 出网（领域实体只带 user_id）
	User user.UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (PostModel) TableName() string { return "posts" }
