package handler

import (
	"Pulse/config"
	"Pulse/models"
	"Pulse/pkg/jwt"
	"Pulse/types"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// stubPostService 只记录 DeletePost 的入参
type stubPostService struct {
	deleteUserID    uint64
	deletePostID    uint64
	deleteSuperuser bool
}

func (s *stubPostService) CreatePost(context.Context, uint64, string, *types.CreatePostRequest) (*models.Post, error) {
	return nil, nil
}

func (s *stubPostService) GetPost(context.Context, uint64) (*types.PostResponse, error) {
	return nil, nil
}

func (s *stubPostService) ListPosts(context.Context, int, int) ([]*types.PostResponse, error) {
	return nil, nil
}

func (s *stubPostService) ListUserPosts(context.Context, uint64, int, int) ([]*types.PostResponse, error) {
	return nil, nil
}

func (s *stubPostService) UpdatePost(context.Context, uint64, string, uint64, *types.UpdatePostRequest) (*models.Post, error) {
	return nil, nil
}

func (s *stubPostService) DeletePost(_ context.Context, userID uint64, postID uint64, isSuperuser bool) error {
	s.deleteUserID = userID
	s.deletePostID = postID
	s.deleteSuperuser = isSuperuser
	return nil
}

func newPostRouter(svc *stubPostService) (*gin.Engine, *config.Config) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Jwt: &config.Jwt{Secret: "test-secret", ExpiresTime: 3600}}
	h := &Post{Config: cfg, PostService: svc}
	r := gin.New()
	h.RegisterRouter(r)
	return r, cfg
}

func deletePostAs(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, "/v1/posts/5", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// 管理员令牌删除他人帖子, superuser 标记要一路带到服务层
func TestPostDelete_SuperuserFlagReachesService(t *testing.T) {
	svc := &stubPostService{}
	r, cfg := newPostRouter(svc)

	token, err := jwt.GenerateToken([]byte(cfg.Jwt.Secret), 99, "admin", true, "access", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := deletePostAs(t, r, token)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
	if svc.deleteUserID != 99 || svc.deletePostID != 5 {
		t.Fatalf("unexpected delete args: user=%d post=%d", svc.deleteUserID, svc.deletePostID)
	}
	if !svc.deleteSuperuser {
		t.Fatal("superuser flag from token must reach DeletePost")
	}
}

func TestPostDelete_RegularUserIsNotSuperuser(t *testing.T) {
	svc := &stubPostService{deleteSuperuser: true}
	r, cfg := newPostRouter(svc)

	token, err := jwt.GenerateToken([]byte(cfg.Jwt.Secret), 7, "alice", false, "access", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := deletePostAs(t, r, token)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
	if svc.deleteSuperuser {
		t.Fatal("regular token must not carry the superuser flag")
	}
}
