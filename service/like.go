package service

import (
	"Pulse/dao"
	"Pulse/dao/cache"
	"Pulse/models"
	"Pulse/pkg/response"
	"Pulse/types"
	"context"
	"net/http"
	"time"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Create(ctx context.Context, userID uint64, req *types.CreateLikeRequest) (*models.Like, error)
	UnlikePost(ctx context.Context, userID uint64, postID uint64) error
	UnlikeComment(ctx context.Context, userID uint64, commentID uint64) error
	IsPostLiked(ctx context.Context, userID uint64, postID uint64) (bool, error)
	IsCommentLiked(ctx context.Context, userID uint64, commentID uint64) (bool, error)
}

type LikeService struct {
	LikeDAO    *dao.LikeDAO
	PostDAO    *dao.PostDAO
	CommentDAO *dao.CommentDAO
	UserDAO    *dao.UserDAO
	Sync       *CacheSyncService
}

// Create 点赞帖子或评论, 目标二选一
// 只有帖子点赞会驱动热门榜, 评论点赞是纯关系库操作
func (s *LikeService) Create(ctx context.Context, userID uint64, req *types.CreateLikeRequest) (*models.Like, error) {
	if req.PostID != nil && req.CommentID != nil {
		return nil, response.NewError(http.StatusBadRequest, "post_id 与 comment_id 只能指定一个")
	}

	switch {
	case req.PostID != nil:
		return s.likePost(ctx, userID, *req.PostID)
	case req.CommentID != nil:
		return s.likeComment(ctx, userID, *req.CommentID)
	default:
		return nil, response.NewError(http.StatusBadRequest, "必须指定 post_id 或 comment_id")
	}
}

func (s *LikeService) likePost(ctx context.Context, userID uint64, postID uint64) (*models.Like, error) {
	post, err := s.PostDAO.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, response.NewError(http.StatusNotFound, "帖子不存在")
	}

	existing, err := s.LikeDAO.GetByPostUser(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, response.NewError(http.StatusBadRequest, "已经点过赞")
	}

	like := &models.Like{
		UserID:    userID,
		PostID:    &postID,
		CreatedAt: time.Now(),
	}
	if err := s.LikeDAO.Create(ctx, like); err != nil {
		return nil, err
	}

	// 点赞已落库, 同步热门榜; 快照取作者当前资料
	author, err := s.UserDAO.FindById(ctx, post.UserID)
	username := ""
	if err == nil {
		username = author.Username
	}
	s.Sync.PostLiked(ctx, postID, cache.PostSnapshot{
		Content:        post.Content,
		ImageURL:       post.ImageURL,
		AuthorID:       post.UserID,
		AuthorUsername: username,
	})

	return like, nil
}

func (s *LikeService) likeComment(ctx context.Context, userID uint64, commentID uint64) (*models.Like, error) {
	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, response.NewError(http.StatusNotFound, "评论不存在")
	}

	existing, err := s.LikeDAO.GetByCommentUser(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, response.NewError(http.StatusBadRequest, "已经点过赞")
	}

	like := &models.Like{
		UserID:    userID,
		CommentID: &commentID,
		CreatedAt: time.Now(),
	}
	if err := s.LikeDAO.Create(ctx, like); err != nil {
		return nil, err
	}
	return like, nil
}

// UnlikePost 取消帖子点赞
func (s *LikeService) UnlikePost(ctx context.Context, userID uint64, postID uint64) error {
	like, err := s.LikeDAO.GetByPostUser(ctx, postID, userID)
	if err != nil {
		return err
	}
	if like == nil {
		return response.NewError(http.StatusNotFound, "点赞记录不存在")
	}

	if err := s.LikeDAO.DeleteByID(ctx, like.ID); err != nil {
		return err
	}

	s.Sync.PostUnliked(ctx, postID)
	return nil
}

// UnlikeComment 取消评论点赞, 不涉及缓存
func (s *LikeService) UnlikeComment(ctx context.Context, userID uint64, commentID uint64) error {
	like, err := s.LikeDAO.GetByCommentUser(ctx, commentID, userID)
	if err != nil {
		return err
	}
	if like == nil {
		return response.NewError(http.StatusNotFound, "点赞记录不存在")
	}
	return s.LikeDAO.DeleteByID(ctx, like.ID)
}

func (s *LikeService) IsPostLiked(ctx context.Context, userID uint64, postID uint64) (bool, error) {
	like, err := s.LikeDAO.GetByPostUser(ctx, postID, userID)
	if err != nil {
		return false, err
	}
	return like != nil, nil
}

func (s *LikeService) IsCommentLiked(ctx context.Context, userID uint64, commentID uint64) (bool, error) {
	like, err := s.LikeDAO.GetByCommentUser(ctx, commentID, userID)
	if err != nil {
		return false, err
	}
	return like != nil, nil
}
