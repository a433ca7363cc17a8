package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// errBody 错误响应只带短消息，细节进日志不上网
type errBody struct {
	Error string `json:"error"`
}

// OK 200 + 实体 JSON
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Empty 200 空响应体（删除成功走这里）
func Empty(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Fail 按真实 HTTP 状态码出错
func Fail(c *gin.Context, status int, msg string) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	c.JSON(status, errBody{Error: msg})
}

// AbortFail 中间件用：出错并终止后续 handler
func AbortFail(c *gin.Context, status int, msg string) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, errBody{Error: msg})
}
