package service

import (
	"Pulse/dao"
	"Pulse/dao/cache"
	"Pulse/models"
	"Pulse/pkg/response"
	"Pulse/pkg/snowflake"
	"Pulse/types"
	"context"
	"net/http"
	"time"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	CreatePost(ctx context.Context, userID uint64, username string, req *types.CreatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, postID uint64) (*types.PostResponse, error)
	ListPosts(ctx context.Context, page, pageSize int) ([]*types.PostResponse, error)
	ListUserPosts(ctx context.Context, userID uint64, page, pageSize int) ([]*types.PostResponse, error)
	UpdatePost(ctx context.Context, userID uint64, username string, postID uint64, req *types.UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, userID uint64, postID uint64, isSuperuser bool) error
}

type PostService struct {
	PostDAO *dao.PostDAO
	LikeDAO *dao.LikeDAO
	UserDAO *dao.UserDAO
	Sync    *CacheSyncService
}

// CreatePost 创建帖子
// 主库提交成功后再同步信息流缓存, 缓存失败不影响本次请求
func (s *PostService) CreatePost(ctx context.Context, userID uint64, username string, req *types.CreatePostRequest) (*models.Post, error) {
	now := time.Now()
	post := &models.Post{
		ID:        uint64(snowflake.GenID()),
		UserID:    userID,
		Content:   req.Content,
		ImageURL:  req.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.PostDAO.Create(ctx, post); err != nil {
		return nil, err
	}

	// 事务已提交, 以下是缓存同步边界
	s.Sync.PostCreated(ctx, userID, post.ID, post.CreatedAt, cache.PostSnapshot{
		Content:        post.Content,
		ImageURL:       post.ImageURL,
		AuthorID:       userID,
		AuthorUsername: username,
	})

	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, postID uint64) (*types.PostResponse, error) {
	post, err := s.PostDAO.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, response.NewError(http.StatusNotFound, "帖子不存在")
	}

	likeCount, err := s.LikeDAO.CountByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	resp := toPostResponse(post)
	resp.LikeCount = likeCount
	return resp, nil
}

func (s *PostService) ListPosts(ctx context.Context, page, pageSize int) ([]*types.PostResponse, error) {
	limit, offset := pageToLimitOffset(page, pageSize)
	posts, err := s.PostDAO.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toPostResponses(posts), nil
}

func (s *PostService) ListUserPosts(ctx context.Context, userID uint64, page, pageSize int) ([]*types.PostResponse, error) {
	exist, err := s.UserDAO.IsExist(ctx, "id = ?", userID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NewError(http.StatusNotFound, "用户不存在")
	}

	limit, offset := pageToLimitOffset(page, pageSize)
	posts, err := s.PostDAO.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toPostResponses(posts), nil
}

// UpdatePost 编辑帖子, 仅作者本人可编辑
func (s *PostService) UpdatePost(ctx context.Context, userID uint64, username string, postID uint64, req *types.UpdatePostRequest) (*models.Post, error) {
	post, err := s.PostDAO.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, response.NewError(http.StatusNotFound, "帖子不存在")
	}
	if post.UserID != userID {
		return nil, response.NewError(http.StatusForbidden, "无权限操作")
	}

	fields := map[string]any{"updated_at": time.Now()}
	if req.Content != nil {
		fields["content"] = *req.Content
		post.Content = *req.Content
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
		post.ImageURL = *req.ImageURL
	}
	if err := s.PostDAO.Update(ctx, postID, fields); err != nil {
		return nil, err
	}

	s.Sync.PostUpdated(ctx, post.UserID, postID, cache.PostSnapshot{
		Content:        post.Content,
		ImageURL:       post.ImageURL,
		AuthorID:       post.UserID,
		AuthorUsername: username,
	})

	return post, nil
}

// DeletePost 删除帖子, 作者或管理员可删
func (s *PostService) DeletePost(ctx context.Context, userID uint64, postID uint64, isSuperuser bool) error {
	post, err := s.PostDAO.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return response.NewError(http.StatusNotFound, "帖子不存在")
	}
	if post.UserID != userID && !isSuperuser {
		return response.NewError(http.StatusForbidden, "无权限操作")
	}

	if err := s.PostDAO.Delete(ctx, postID); err != nil {
		return err
	}

	s.Sync.PostDeleted(ctx, post.UserID, postID)
	return nil
}

func toPostResponse(post *models.Post) *types.PostResponse {
	return &types.PostResponse{
		ID:        post.ID,
		UserID:    post.UserID,
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func toPostResponses(posts []*dao.PostWithCounts) []*types.PostResponse {
	resp := make([]*types.PostResponse, 0, len(posts))
	for _, p := range posts {
		item := toPostResponse(&p.Post)
		item.LikeCount = p.LikeCount
		item.CommentCount = p.CommentCount
		resp = append(resp, item)
	}
	return resp
}

func pageToLimitOffset(page, pageSize int) (int, int) {
	if page <= 0 {
		page = types.DefaultPage
	}
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}
	return pageSize, (page - 1) * pageSize
}
