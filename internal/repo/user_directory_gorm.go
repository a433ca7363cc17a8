package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"go-gin-blog-api/internal/core/cache"
	"go-gin-blog-api/internal/domain"
	"go-gin-blog-api/internal/feature/user"
)

// UserDirectory pid → 数字 id 的只读解析。只 Select 需要的列
type UserDirectory struct{ db *gorm.DB }

func NewUserDirectory(db *gorm.DB) *UserDirectory { return &UserDirectory{db: db} }

var _ domain.UserDirectory = (*UserDirectory)(nil)

func (d *UserDirectory) ResolvePID(ctx context.Context, pid string) (int32, error) {
	var m user.UserModel
	err := d.db.WithContext(ctx).Select("id").First(&m, "pid = ?", pid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, domain.NotFoundf("user pid %q", pid)
	}
	if err != nil {
		return 0, domain.Internalf(err, "resolve pid")
	}
	return m.ID, nil
}

// CachedDirectory 给目录套一层 redis。pid → id 稳定不变，
// 每次变更请求都要查一次，适合短 TTL 缓存 + singleflight 合并回源
type CachedDirectory struct {
	next domain.UserDirectory
	c    *cache.Cache
	ttl  time.Duration
}

func NewCachedDirectory(next domain.UserDirectory, c *cache.Cache, ttl time.Duration) *CachedDirectory {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedDirectory{next: next, c: c, ttl: ttl}
}

var _ domain.UserDirectory = (*CachedDirectory)(nil)

func (d *CachedDirectory) ResolvePID(ctx context.Context, pid string) (int32, error) {
	if d.c == nil {
		return d.next.ResolvePID(ctx, pid)
	}
	id, err := cache.GetOrLoadJSON[int32](d.c, ctx, "user:pid:"+pid, d.ttl,
		func(ctx context.Context) (*int32, error) {
			v, e := d.next.ResolvePID(ctx, pid)
			if e != nil {
				return nil, e // NotFound 不缓存，交给上层判定
			}
			return &v, nil
		})
	if err != nil {
		return 0, err
	}
	if id == nil {
		return 0, domain.NotFoundf("user pid %q", pid)
	}
	return *id, nil
}
