package domain

import "context"

// UserDirectory 只读用户目录：把令牌里的 pid 解析为内部数字 id。
// 纯读、幂等；查不到返回 ErrNotFound（不泄露密码等敏感列）。
type UserDirectory interface {
	ResolvePID(ctx context.Context, pid string) (int32, error)
}
