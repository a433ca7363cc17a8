package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-gin-blog-api/internal/core/auth"
	"go-gin-blog-api/internal/service"
	"go-gin-blog-api/internal/transport/http/handler"
	mdw "go-gin-blog-api/internal/transport/http/middleware"
)

// NewAPIEngine 组装引擎：通用中间件 + /health /metrics + /posts
func NewAPIEngine(l *zap.Logger, svc *service.PostService, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("")
	h := handler.NewPostHandler(svc, l)
	h.Mount(api, mdw.AuthJWT(jwter))

	return r
}
