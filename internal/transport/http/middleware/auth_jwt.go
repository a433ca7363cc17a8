package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-gin-blog-api/internal/core/auth"
	resp "go-gin-blog-api/internal/transport/http/response"
)

// CtxPID 鉴权通过后调用者 pid 存放的 key
const CtxPID = "pid"

// AuthJWT 校验 Bearer 令牌并把 pid 放进上下文。缺头/坏令牌 → 401
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.AbortFail(c, http.StatusUnauthorized, "missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.AbortFail(c, http.StatusUnauthorized, "invalid token")
			return
		}
		c.Set(CtxPID, claims.PID)
		c.Next()
	}
}
