package response

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-gin-blog-api/internal/domain"
)

// FromError 领域错误 → 状态码的唯一投影点。
// NotFound→404，Unauthorized→401，Conflict→409，Invalid→400，超时→504，其余→500
func FromError(c *gin.Context, l *zap.Logger, err error) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		// DB 调用中途截止和中间件兜底的超时走同一个 504
		Fail(c, http.StatusGatewayTimeout, "timeout")
	case errors.Is(err, domain.ErrNotFound):
		Fail(c, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrUnauthorized):
		Fail(c, http.StatusUnauthorized, trimKind(err, domain.ErrUnauthorized))
	case errors.Is(err, domain.ErrConflict):
		Fail(c, http.StatusConflict, trimKind(err, domain.ErrConflict))
	case errors.Is(err, domain.ErrInvalid):
		Fail(c, http.StatusBadRequest, trimKind(err, domain.ErrInvalid))
	default:
		if l != nil {
			l.Error("request failed", zap.Error(err), zap.String("path", c.FullPath()))
		}
		Fail(c, http.StatusInternalServerError, "internal error")
	}
}

// trimKind 去掉 "unauthorized: " 这类前缀，只给客户端人话部分
func trimKind(err, kind error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, kind.Error()+": "); ok {
		return rest
	}
	return msg
}
