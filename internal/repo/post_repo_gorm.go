package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-gin-blog-api/internal/domain"
	"go-gin-blog-api/internal/feature/post"
)

// PostRepo posts 表的 gorm 实现。每个方法单条语句、隐式事务
type PostRepo struct{ db *gorm.DB }

func NewPostRepo(db *gorm.DB) *PostRepo { return &PostRepo{db: db} }

var _ domain.PostRepository = (*PostRepo)(nil)

func (r *PostRepo) Insert(ctx context.Context, p domain.PostParams, userID int32) (*domain.Post, error) {
	md := p.MdContent
	m := post.PostModel{
		Title:     p.Title,
		MdContent: &md, // 空串也按“有值”落库
		UserID:    userID,
	}
	if err := r.db.WithContext(ctx).Omit("User").Create(&m).Error; err != nil {
		switch {
		case isDupKey(err):
			return nil, domain.Conflictf("title %q already in use", p.Title)
		case isFKViolation(err):
			return nil, domain.NotFoundf("user %d", userID)
		default:
			return nil, domain.Internalf(err, "insert post")
		}
	}
	return toDomain(&m), nil
}

func (r *PostRepo) Load(ctx context.Context, id int32) (*domain.Post, error) {
	var m post.PostModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NotFoundf("post %d", id)
	}
	if err != nil {
		return nil, domain.Internalf(err, "load post")
	}
	return toDomain(&m), nil
}

func (r *PostRepo) List(ctx context.Context) ([]domain.Post, error) {
	var ms []post.PostModel
	if err := r.db.WithContext(ctx).Find(&ms).Error; err != nil {
		return nil, domain.Internalf(err, "list posts")
	}
	out := make([]domain.Post, 0, len(ms))
	for i := range ms {
		out = append(out, *toDomain(&ms[i]))
	}
	return out, nil
}

func (r *PostRepo) Update(ctx context.Context, id int32, p domain.PostParams) (*domain.Post, error) {
	var m post.PostModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// load 与写之间并发删除也走这里
		return nil, domain.NotFoundf("post %d", id)
	}
	if err != nil {
		return nil, domain.Internalf(err, "load post for update")
	}

	md := p.MdContent
	m.Title = p.Title
	m.MdContent = &md
	res := r.db.WithContext(ctx).Omit("User").Save(&m)
	if res.Error != nil {
		if isDupKey(res.Error) {
			return nil, domain.Conflictf("title %q already in use", p.Title)
		}
		return nil, domain.Internalf(res.Error, "update post")
	}
	if res.RowsAffected == 0 {
		// First 和 UPDATE 之间行被并发删除：0 行命中不算成功
		return nil, domain.NotFoundf("post %d", id)
	}
	return toDomain(&m), nil
}

func (r *PostRepo) Delete(ctx context.Context, id int32) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&post.PostModel{})
	if res.Error != nil {
		return domain.Internalf(res.Error, "delete post")
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf("post %d", id)
	}
	return nil
}

func toDomain(m *post.PostModel) *domain.Post {
	md := ""
	if m.MdContent != nil {
		md = *m.MdContent
	}
	return &domain.Post{
		ID:        m.ID,
		Title:     m.Title,
		MdContent: md,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
