package response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"go-gin-blog-api/internal/domain"
)

func project(t *testing.T, err error) (*httptest.ResponseRecorder, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/posts/1", nil)

	FromError(c, nil, err)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return w, body.Error
}

func TestFromError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", domain.NotFoundf("post 999"), http.StatusNotFound},
		{"unauthorized", domain.Unauthorizedf("You do not have authorization to modify this post"), http.StatusUnauthorized},
		{"conflict", domain.Conflictf("title %q already in use", "Hello"), http.StatusConflict},
		{"invalid", domain.Invalidf("id must be a positive integer"), http.StatusBadRequest},
		{"internal", domain.Internalf(errors.New("disk on fire"), "load post"), http.StatusInternalServerError},
		{"plain error", errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := project(t, tt.err)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestFromError_DeadlineIs504(t *testing.T) {
	// 截止时间在 DB 调用中途到期：错误会被 Internalf 包一层，底因必须仍然可辨
	wrapped := domain.Internalf(context.DeadlineExceeded, "load post")

	w, _ := project(t, wrapped)
	if w.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want 504 (same as middleware timeout)", w.Code)
	}

	w, _ = project(t, context.DeadlineExceeded)
	if w.Code != http.StatusGatewayTimeout {
		t.Errorf("bare deadline status = %d, want 504", w.Code)
	}
}

func TestFromError_MessageStripsKindPrefix(t *testing.T) {
	_, msg := project(t, domain.Unauthorizedf("You do not have authorization to modify this post"))
	if msg != "You do not have authorization to modify this post" {
		t.Errorf("message = %q, kind prefix should be stripped", msg)
	}
}

func TestFromError_InternalHidesDetails(t *testing.T) {
	_, msg := project(t, domain.Internalf(errors.New("dsn=user:hunter2@tcp(db)/blog"), "load post"))
	if msg != "internal error" {
		t.Errorf("message = %q, internals must not reach the client", msg)
	}
}
