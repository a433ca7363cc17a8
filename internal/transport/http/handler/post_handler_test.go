package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-gin-blog-api/internal/core/auth"
	"go-gin-blog-api/internal/domain"
	"go-gin-blog-api/internal/service"
	"go-gin-blog-api/internal/transport/http/router"
)

// =============================================================================
// In-memory fakes (repository contract, no database)
// =============================================================================

type memPosts struct {
	mu   sync.Mutex
	m    map[int32]domain.Post
	next int32
}

func newMemPosts() *memPosts { return &memPosts{m: map[int32]domain.Post{}} }

func (s *memPosts) titleTaken(title string, exclude int32) bool {
	for id, p := range s.m {
		if id != exclude && p.Title == title {
			return true
		}
	}
	return false
}

func (s *memPosts) Insert(_ context.Context, p domain.PostParams, userID int32) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.titleTaken(p.Title, 0) {
		return nil, domain.Conflictf("title %q already in use", p.Title)
	}
	s.next++
	post := domain.Post{ID: s.next, Title: p.Title, MdContent: p.MdContent, UserID: userID}
	s.m[post.ID] = post
	return &post, nil
}

func (s *memPosts) Load(_ context.Context, id int32) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.m[id]
	if !ok {
		return nil, domain.NotFoundf("post %d", id)
	}
	return &p, nil
}

func (s *memPosts) List(_ context.Context) ([]domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Post, 0, len(s.m))
	for _, p := range s.m {
		out = append(out, p)
	}
	return out, nil
}

func (s *memPosts) Update(_ context.Context, id int32, p domain.PostParams) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.m[id]
	if !ok {
		return nil, domain.NotFoundf("post %d", id)
	}
	if s.titleTaken(p.Title, id) {
		return nil, domain.Conflictf("title %q already in use", p.Title)
	}
	cur.Title = p.Title
	cur.MdContent = p.MdContent
	s.m[id] = cur
	return &cur, nil
}

func (s *memPosts) Delete(_ context.Context, id int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[id]; !ok {
		return domain.NotFoundf("post %d", id)
	}
	delete(s.m, id)
	return nil
}

type memDirectory struct{ users map[string]int32 }

func (d *memDirectory) ResolvePID(_ context.Context, pid string) (int32, error) {
	if id, ok := d.users[pid]; ok {
		return id, nil
	}
	return 0, domain.NotFoundf("user pid %q", pid)
}

// =============================================================================
// Test harness: full engine, real middleware chain, real JWT
// =============================================================================

type postJSON struct {
	ID        int32  `json:"id"`
	Title     string `json:"title"`
	MdContent string `json:"md_content"`
	UserID    int32  `json:"user_id"`
}

type harness struct {
	engine *gin.Engine
	jwter  *auth.JWTer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwter := &auth.JWTer{
		Secret: []byte("test-secret-key-at-least-32-chars-long"),
		Issuer: "blog-api-test",
		TTL:    time.Hour,
	}
	dir := &memDirectory{users: map[string]int32{"alice-pid": 1, "bob-pid": 2}}
	svc := service.NewPostService(newMemPosts(), dir, zap.NewNop())
	return &harness{
		engine: router.NewAPIEngine(zap.NewNop(), svc, jwter),
		jwter:  jwter,
	}
}

func (h *harness) token(t *testing.T, pid string) string {
	t.Helper()
	tok, err := h.jwter.Issue(pid)
	if err != nil {
		t.Fatalf("issue token for %s: %v", pid, err)
	}
	return tok
}

func (h *harness) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.engine.ServeHTTP(w, req)
	return w
}

func decodePost(t *testing.T, w *httptest.ResponseRecorder) postJSON {
	t.Helper()
	var p postJSON
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode post from %q: %v", w.Body.String(), err)
	}
	return p
}

// =============================================================================
// End-to-end scenarios
// =============================================================================

func TestCreateAndReadBack(t *testing.T) {
	h := newHarness(t)
	alice := h.token(t, "alice-pid")

	w := h.do(t, http.MethodPost, "/posts", alice, gin.H{"title": "Hello", "md_content": "# hi"})
	if w.Code != http.StatusOK {
		t.Fatalf("POST /posts status = %d, body %s", w.Code, w.Body.String())
	}
	created := decodePost(t, w)
	if created.ID != 1 || created.Title != "Hello" || created.MdContent != "# hi" || created.UserID != 1 {
		t.Errorf("created = %+v, want {1 Hello # hi 1}", created)
	}

	w = h.do(t, http.MethodGet, "/posts/1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /posts/1 status = %d", w.Code)
	}
	if got := decodePost(t, w); got != created {
		t.Errorf("GET /posts/1 = %+v, want %+v", got, created)
	}
}

func TestUnauthorizedUpdate(t *testing.T) {
	h := newHarness(t)
	alice := h.token(t, "alice-pid")
	bob := h.token(t, "bob-pid")

	h.do(t, http.MethodPost, "/posts", alice, gin.H{"title": "Hello", "md_content": "# hi"})

	w := h.do(t, http.MethodPatch, "/posts/1", bob, gin.H{"title": "pwn", "md_content": "x"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("PATCH by non-owner status = %d, want 401", w.Code)
	}

	w = h.do(t, http.MethodGet, "/posts/1", "", nil)
	if got := decodePost(t, w); got.Title != "Hello" {
		t.Errorf("post changed by unauthorized update: title = %q", got.Title)
	}
}

func TestOwnerUpdate(t *testing.T) {
	h := newHarness(t)
	alice := h.token(t, "alice-pid")

	h.do(t, http.MethodPost, "/posts", alice, gin.H{"title": "Hello", "md_content": "# hi"})

	w := h.do(t, http.MethodPatch, "/posts/1", alice, gin.H{"title": "Hello v2", "md_content": "# hi2"})
	if w.Code != http.StatusOK {
		t.Fatalf("PATCH by owner status = %d, body %s", w.Code, w.Body.String())
	}
	got := decodePost(t, w)
	if got.Title != "Hello v2" || got.MdContent != "# hi2" {
		t.Errorf("updated = %+v", got)
	}
	if got.UserID != 1 {
		t.Errorf("user_id changed on update: %d", got.UserID)
	}
}

func TestTitleConflict(t *testing.T) {
	h := newHarness(t)
	alice := h.token(t, "alice-pid")

	h.do(t, http.MethodPost, "/posts", alice, gin.H{"title": "Hello v2", "md_content": "a"})
	w := h.do(t, http.MethodPost, "/posts", alice, gin.H{"title": "Hello v2", "md_content": "y"})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate title status = %d, want 409", w.Code)
	}
}

func TestUnauthorizedThenOwnerDelete(t *testing.T) {
	h := newHarness(t)
	alice := h.token(t, "alice-pid")
	bob := h.token(t, "bob-pid")

	h.do(t, http.MethodPost, "/posts", alice, gin.H{"title": "Hello", "md_content": "# hi"})

	if w := h.do(t, http.MethodDelete, "/posts/1", bob, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("DELETE by non-owner status = %d, want 401", w.Code)
	}
	w := h.do(t, http.MethodDelete, "/posts/1", alice, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("DELETE by owner status = %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("DELETE body = %q, want empty", w.Body.String())
	}
	if w := h.do(t, http.MethodGet, "/posts/1", "", nil); w.Code != http.StatusNotFound {
		t.Errorf("GET after delete status = %d, want 404", w.Code)
	}
}

func TestMissingPost(t *testing.T) {
	h := newHarness(t)
	alice := h.token(t, "alice-pid")

	if w := h.do(t, http.MethodGet, "/posts/999", "", nil); w.Code != http.StatusNotFound {
		t.Errorf("GET missing status = %d, want 404", w.Code)
	}
	if w := h.do(t, http.MethodPatch, "/posts/999", alice, gin.H{"title": "x", "md_content": "y"}); w.Code != http.StatusNotFound {
		t.Errorf("PATCH missing status = %d, want 404", w.Code)
	}
	if w := h.do(t, http.MethodDelete, "/posts/999", alice, nil); w.Code != http.StatusNotFound {
		t.Errorf("DELETE missing status = %d, want 404", w.Code)
	}
	// 没带令牌时先撞鉴权
	if w := h.do(t, http.MethodPatch, "/posts/999", "", gin.H{"title": "x", "md_content": "y"}); w.Code != http.StatusUnauthorized {
		t.Errorf("PATCH missing without token status = %d, want 401", w.Code)
	}
	if w := h.do(t, http.MethodDelete, "/posts/999", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("DELETE missing without token status = %d, want 401", w.Code)
	}
}

// =============================================================================
// Validation and auth edges
// =============================================================================

func TestList_Public(t *testing.T) {
	h := newHarness(t)
	alice := h.token(t, "alice-pid")
	h.do(t, http.MethodPost, "/posts", alice, gin.H{"title": "One", "md_content": ""})
	h.do(t, http.MethodPost, "/posts", alice, gin.H{"title": "Two", "md_content": ""})

	w := h.do(t, http.MethodGet, "/posts", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /posts status = %d", w.Code)
	}
	var items []postJSON
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("list has %d posts, want 2", len(items))
	}
}

func TestCreate_RequiresToken(t *testing.T) {
	h := newHarness(t)

	if w := h.do(t, http.MethodPost, "/posts", "", gin.H{"title": "Hello", "md_content": ""}); w.Code != http.StatusUnauthorized {
		t.Errorf("POST without header status = %d, want 401", w.Code)
	}
	if w := h.do(t, http.MethodPost, "/posts", "garbage.token.here", gin.H{"title": "Hello", "md_content": ""}); w.Code != http.StatusUnauthorized {
		t.Errorf("POST with bad token status = %d, want 401", w.Code)
	}
}

func TestCreate_UnknownUserUnauthorized(t *testing.T) {
	h := newHarness(t)
	ghost := h.token(t, "ghost-pid") // 验签通过但目录里没有

	if w := h.do(t, http.MethodPost, "/posts", ghost, gin.H{"title": "Hello", "md_content": ""}); w.Code != http.StatusUnauthorized {
		t.Errorf("POST with unknown pid status = %d, want 401", w.Code)
	}
}

func TestBadRequestBodies(t *testing.T) {
	h := newHarness(t)
	alice := h.token(t, "alice-pid")

	tests := []struct {
		name string
		body any
	}{
		{"missing title", gin.H{"md_content": "x"}},
		{"missing md_content", gin.H{"title": "x"}},
		{"empty title", gin.H{"title": "", "md_content": "x"}},
		{"title wrong type", gin.H{"title": 7, "md_content": "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := h.do(t, http.MethodPost, "/posts", alice, tt.body); w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestBadPathID(t *testing.T) {
	h := newHarness(t)

	for _, id := range []string{"abc", "0", "-3", "99999999999999"} {
		if w := h.do(t, http.MethodGet, "/posts/"+id, "", nil); w.Code != http.StatusBadRequest {
			t.Errorf("GET /posts/%s status = %d, want 400", id, w.Code)
		}
	}
}

func TestEmptyMdContentAccepted(t *testing.T) {
	h := newHarness(t)
	alice := h.token(t, "alice-pid")

	w := h.do(t, http.MethodPost, "/posts", alice, gin.H{"title": "Empty", "md_content": ""})
	if w.Code != http.StatusOK {
		t.Fatalf("POST with empty md_content status = %d, want 200", w.Code)
	}
	if got := decodePost(t, w); got.MdContent != "" {
		t.Errorf("md_content = %q, want empty", got.MdContent)
	}
}
