package user

import (
	"time"
)

// UserModel users 表。注册/登录在别的服务，这里只读 pid → id
type UserModel struct {
	ID           int32   `gorm:"primaryKey;autoIncrement"`
	Pid          string  `gorm:"column:pid;uniqueIndex;size:64;not null"`
	Email        string  `gorm:"uniqueIndex;size:255;not null"`
	Name         string  `gorm:"size:64;not null"`
	PasswordHash string  `gorm:"size:100;not null"`
	PictureURL   *string `gorm:"size:255"` // 迁移后补的列，可空

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }
