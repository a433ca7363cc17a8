package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-gin-blog-api/internal/domain"
	"go-gin-blog-api/internal/service"
	mdw "go-gin-blog-api/internal/transport/http/middleware"
	resp "go-gin-blog-api/internal/transport/http/response"
)

// postBody title 必填非空；md_content 必须出现但允许空串，所以用指针
type postBody struct {
	Title     string  `json:"title" binding:"required"`
	MdContent *string `json:"md_content" binding:"required"`
}

func (b *postBody) params() domain.PostParams {
	return domain.PostParams{Title: b.Title, MdContent: *b.MdContent}
}

type PostHandler struct {
	svc *service.PostService
	log *zap.Logger
}

func NewPostHandler(svc *service.PostService, log *zap.Logger) *PostHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PostHandler{svc: svc, log: log}
}

// Mount 挂载 /posts：读公开，写要 Bearer 令牌
func (h *PostHandler) Mount(g *gin.RouterGroup, authed gin.HandlerFunc) {
	posts := g.Group("/posts")
	posts.GET("", h.List)
	posts.GET("/:id", h.GetOne)

	mut := posts.Group("")
	mut.Use(authed)
	mut.POST("", h.Add)
	mut.PATCH("/:id", h.Update)
	mut.DELETE("/:id", h.Remove)
}

func (h *PostHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	resp.OK(c, items)
}

func (h *PostHandler) GetOne(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	resp.OK(c, p)
}

func (h *PostHandler) Add(c *gin.Context) {
	var body postBody
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.FromError(c, h.log, domain.Invalidf("title and md_content are required"))
		return
	}
	p, err := h.svc.Add(c.Request.Context(), c.GetString(mdw.CtxPID), body.params())
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	resp.OK(c, p)
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var body postBody
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.FromError(c, h.log, domain.Invalidf("title and md_content are required"))
		return
	}
	p, err := h.svc.Update(c.Request.Context(), id, c.GetString(mdw.CtxPID), body.params())
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	resp.OK(c, p)
}

func (h *PostHandler) Remove(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Remove(c.Request.Context(), id, c.GetString(mdw.CtxPID)); err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	resp.Empty(c)
}

// pathID :id 必须是正的 32 位整数，否则 400
func (h *PostHandler) pathID(c *gin.Context) (int32, bool) {
	v, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil || v <= 0 {
		resp.FromError(c, h.log, domain.Invalidf("id must be a positive integer"))
		return 0, false
	}
	return int32(v), true
}
