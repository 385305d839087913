package service

import (
	"Pulse/dao"
	"Pulse/models"
	"Pulse/pkg/response"
	"Pulse/pkg/snowflake"
	"Pulse/types"
	"context"
	"net/http"
	"time"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	CreateComment(ctx context.Context, userID uint64, req *types.CreateCommentRequest) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uint64, page, pageSize int) ([]*models.Comment, error)
	DeleteComment(ctx context.Context, userID uint64, commentID uint64, isSuperuser bool) error
}

type CommentService struct {
	CommentDAO *dao.CommentDAO
	PostDAO    *dao.PostDAO
}

// CreateComment 发表评论
// 评论不投影到二级缓存, 纯主库操作
func (s *CommentService) CreateComment(ctx context.Context, userID uint64, req *types.CreateCommentRequest) (*models.Comment, error) {
	post, err := s.PostDAO.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, response.NewError(http.StatusNotFound, "帖子不存在")
	}

	now := time.Now()
	comment := &models.Comment{
		ID:        uint64(snowflake.GenID()),
		UserID:    userID,
		PostID:    req.PostID,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListByPost(ctx context.Context, postID uint64, page, pageSize int) ([]*models.Comment, error) {
	limit, offset := pageToLimitOffset(page, pageSize)
	return s.CommentDAO.ListByPost(ctx, postID, limit, offset)
}

// DeleteComment 删除评论, 作者或管理员可删
func (s *CommentService) DeleteComment(ctx context.Context, userID uint64, commentID uint64, isSuperuser bool) error {
	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return response.NewError(http.StatusNotFound, "评论不存在")
	}
	if comment.UserID != userID && !isSuperuser {
		return response.NewError(http.StatusForbidden, "无权限操作")
	}
	return s.CommentDAO.Delete(ctx, commentID)
}
