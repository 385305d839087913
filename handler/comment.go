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

type Comment struct {
	Config         *config.Config
	CommentService service.ICommentService
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/comments", authorize)
	g.POST("", context.Wrap(h.Create))
	g.GET("/post/:post_id", context.Wrap(h.ListByPost))
	g.DELETE("/:id", context.Wrap(h.Delete))
}

// Create 发表评论
func (h *Comment) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	comment, err := h.CommentService.CreateComment(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, comment)
	return nil
}

// ListByPost 帖子评论列表
func (h *Comment) ListByPost(c *gin.Context) error {
	postID, err := paramUint64(c, "post_id")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "post_id 格式错误")
	}

	page, pageSize := pagination(c)
	comments, err := h.CommentService.ListByPost(c.Request.Context(), postID, page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, comments)
	return nil
}

// Delete 删除评论
func (h *Comment) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	commentID, err := paramUint64(c, "id")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "id 格式错误")
	}

	if err := h.CommentService.DeleteComment(c.Request.Context(), userID, commentID, context.GetIsSuperuser(c)); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
