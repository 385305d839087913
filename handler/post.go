package handler

import (
	"Pulse/config"
	"Pulse/middleware"
	"Pulse/pkg/context"
	"Pulse/pkg/response"
	"Pulse/service"
	"Pulse/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Post struct {
	Config      *config.Config
	PostService service.IPostService
}

func (h *Post) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/posts", authorize)
	g.POST("", context.Wrap(h.Create))
	g.GET("", context.Wrap(h.List))
	g.GET("/:id", context.Wrap(h.Get))
	g.PUT("/:id", context.Wrap(h.Update))
	g.DELETE("/:id", context.Wrap(h.Delete))
	g.GET("/user/:user_id", context.Wrap(h.ListByUser))
}

// Create 发帖
func (h *Post) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	post, err := h.PostService.CreatePost(c.Request.Context(), userID, context.GetUsername(c), &req)
	if err != nil {
		return err
	}

	response.Success(c, post)
	return nil
}

// List 帖子列表
func (h *Post) List(c *gin.Context) error {
	page, pageSize := pagination(c)
	posts, err := h.PostService.ListPosts(c.Request.Context(), page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, types.ListPostsResponse{Posts: posts})
	return nil
}

// Get 帖子详情
func (h *Post) Get(c *gin.Context) error {
	postID, err := paramUint64(c, "id")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "id 格式错误")
	}

	post, err := h.PostService.GetPost(c.Request.Context(), postID)
	if err != nil {
		return err
	}
	response.Success(c, post)
	return nil
}

// Update 编辑帖子
func (h *Post) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	postID, err := paramUint64(c, "id")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "id 格式错误")
	}

	var req types.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	post, err := h.PostService.UpdatePost(c.Request.Context(), userID, context.GetUsername(c), postID, &req)
	if err != nil {
		return err
	}
	response.Success(c, post)
	return nil
}

// Delete 删除帖子
func (h *Post) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	postID, err := paramUint64(c, "id")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "id 格式错误")
	}

	if err := h.PostService.DeletePost(c.Request.Context(), userID, postID, context.GetIsSuperuser(c)); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// ListByUser 某用户的帖子
func (h *Post) ListByUser(c *gin.Context) error {
	userID, err := paramUint64(c, "user_id")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "user_id 格式错误")
	}

	page, pageSize := pagination(c)
	posts, err := h.PostService.ListUserPosts(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, types.ListPostsResponse{Posts: posts})
	return nil
}

func paramUint64(c *gin.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page <= 0 {
		page = types.DefaultPage
	}
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}
	return page, pageSize
}
