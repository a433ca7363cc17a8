package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"go-gin-blog-api/internal/domain"
)

// AuthorizeMutation 所有权策略：只有作者本人可以改/删自己的文章。
// 作为独立函数存在，写操作之前显式调用，不塞进数据层
func AuthorizeMutation(callerID int32, p *domain.Post) error {
	if callerID != p.UserID {
		return domain.Unauthorizedf("You do not have authorization to modify this post")
	}
	return nil
}

// PostService 编排层：解析调用者 → 读文章 → 鉴权 → 写
type PostService struct {
	posts domain.PostRepository
	users domain.UserDirectory
	log   *zap.Logger
}

func NewPostService(posts domain.PostRepository, users domain.UserDirectory, log *zap.Logger) *PostService {
	if log == nil {
		log = zap.NewNop()
	}
	return &PostService{posts: posts, users: users, log: log}
}

// resolveCaller 令牌里的 pid 对不上任何用户时按 Unauthorized 处理
// （令牌可验签但主体已不存在，不能是 500 更不能崩任务）
func (s *PostService) resolveCaller(ctx context.Context, pid string) (int32, error) {
	id, err := s.users.ResolvePID(ctx, pid)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.Warn("token pid resolves to no user", zap.String("pid", pid))
		return 0, domain.Unauthorizedf("unknown user")
	}
	return id, err
}

func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

func (s *PostService) Get(ctx context.Context, id int32) (*domain.Post, error) {
	return s.posts.Load(ctx, id)
}

func (s *PostService) Add(ctx context.Context, callerPID string, p domain.PostParams) (*domain.Post, error) {
	userID, err := s.resolveCaller(ctx, callerPID)
	if err != nil {
		return nil, err
	}
	return s.posts.Insert(ctx, p, userID)
}

func (s *PostService) Update(ctx context.Context, id int32, callerPID string, p domain.PostParams) (*domain.Post, error) {
	userID, err := s.resolveCaller(ctx, callerPID)
	if err != nil {
		return nil, err
	}
	post, err := s.posts.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeMutation(userID, post); err != nil {
		return nil, err
	}
	return s.posts.Update(ctx, id, p)
}

func (s *PostService) Remove(ctx context.Context, id int32, callerPID string) error {
	userID, err := s.resolveCaller(ctx, callerPID)
	if err != nil {
		return err
	}
	post, err := s.posts.Load(ctx, id)
	if err != nil {
		return err
	}
	if err := AuthorizeMutation(userID, post); err != nil {
		return err
	}
	return s.posts.Delete(ctx, id)
}
