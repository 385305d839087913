package handler

import (
	"Pulse/config"
	"Pulse/middleware"
	"Pulse/pkg/context"
	"Pulse/pkg/response"
	"Pulse/service"
	"Pulse/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Like struct {
	Config      *config.Config
	LikeService service.ILikeService
}

func (h *Like) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/likes", authorize)
	g.POST("", context.Wrap(h.Create))
	g.DELETE("/post/:post_id", context.Wrap(h.UnlikePost))
	g.DELETE("/comment/:comment_id", context.Wrap(h.UnlikeComment))
	g.GET("/post/:post_id/liked", context.Wrap(h.PostLiked))
	g.GET("/comment/:comment_id/liked", context.Wrap(h.CommentLiked))
}

// Create 点赞帖子或评论
func (h *Like) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.CreateLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	like, err := h.LikeService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, like)
	return nil
}

// UnlikePost 取消帖子点赞
func (h *Like) UnlikePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	postID, err := paramUint64(c, "post_id")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "post_id 格式错误")
	}

	if err := h.LikeService.UnlikePost(c.Request.Context(), userID, postID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// UnlikeComment 取消评论点赞
func (h *Like) UnlikeComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	commentID, err := paramUint64(c, "comment_id")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "comment_id 格式错误")
	}

	if err := h.LikeService.UnlikeComment(c.Request.Context(), userID, commentID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// PostLiked 是否已赞帖子
func (h *Like) PostLiked(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	postID, err := paramUint64(c, "post_id")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "post_id 格式错误")
	}

	liked, err := h.LikeService.IsPostLiked(c.Request.Context(), userID, postID)
	if err != nil {
		return err
	}
	response.Success(c, types.LikedResponse{Liked: liked})
	return nil
}

// CommentLiked 是否已赞评论
func (h *Like) CommentLiked(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	commentID, err := paramUint64(c, "comment_id")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "comment_id 格式错误")
	}

	liked, err := h.LikeService.IsCommentLiked(c.Request.Context(), userID, commentID)
	if err != nil {
		return err
	}
	response.Success(c, types.LikedResponse{Liked: liked})
	return nil
}
