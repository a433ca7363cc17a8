package domain

import (
	"context"
	"time"
)

// Post 博客文章快照。只携带 user_id，不内嵌 User（避免所有权环）
type Post struct {
	ID        int32     `json:"id"`
	Title     string    `json:"title"`
	MdContent string    `json:"md_content"`
	UserID    int32     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostParams 创建/更新入参（title 非空由 HTTP 层校验）
type PostParams struct {
	Title     string
	MdContent string
}

// PostRepository posts 表的类型化 CRUD。
// 每个方法一条逻辑语句、各自隐式事务；错误统一为领域错误：
// 标题撞唯一索引 → ErrConflict，行不存在 → ErrNotFound，其余 → ErrInternal。
type PostRepository interface {
	Insert(ctx context.Context, p PostParams, userID int32) (*Post, error)
	Load(ctx context.Context, id int32) (*Post, error)
	List(ctx context.Context) ([]Post, error)
	// Update 只覆盖 title/md_content，user_id 与 id 不变
	Update(ctx context.Context, id int32, p PostParams) (*Post, error)
	Delete(ctx context.Context, id int32) error
}
