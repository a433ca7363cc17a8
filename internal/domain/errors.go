package domain

import (
	"errors"
	"fmt"
)

// 领域错误（HTTP 层统一映射，见 transport/http/response）
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrInvalid      = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// NotFoundf 带上下文包装 ErrNotFound
func NotFoundf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, a...))
}

// Unauthorizedf 带上下文包装 ErrUnauthorized（msg 会返回给客户端）
func Unauthorizedf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrUnauthorized, fmt.Sprintf(format, a...))
}

// Conflictf 带上下文包装 ErrConflict
func Conflictf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, a...))
}

// Invalidf 带上下文包装 ErrInvalid（请求体/路径参数不合法）
func Invalidf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, a...))
}

// Internalf 包装底层存储错误；原始 err 只进日志，不出网。
// 保留错误链，HTTP 层才认得出 context.DeadlineExceeded 这类底因
func Internalf(err error, msg string) error {
	return fmt.Errorf("%w: %s: %w", ErrInternal, msg, err)
}
