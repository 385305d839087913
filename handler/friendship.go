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

type Friendship struct {
	Config            *config.Config
	FriendshipService service.IFriendshipService
}

func (h *Friendship) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/friendships", authorize)
	g.POST("", context.Wrap(h.Request))
	g.GET("", context.Wrap(h.List))
	g.PUT("/:id/accept", context.Wrap(h.Accept))
	g.PUT("/:id/decline", context.Wrap(h.Decline))
}

// Request 发起好友请求
func (h *Friendship) Request(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.CreateFriendshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	friendship, err := h.FriendshipService.Request(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, friendship)
	return nil
}

// List 好友关系列表, 可按 status 过滤
func (h *Friendship) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	friendships, err := h.FriendshipService.List(c.Request.Context(), userID, c.Query("status"))
	if err != nil {
		return err
	}
	response.Success(c, friendships)
	return nil
}

// Accept 接受好友请求
func (h *Friendship) Accept(c *gin.Context) error {
	return h.respond(c, true)
}

// Decline 拒绝好友请求
func (h *Friendship) Decline(c *gin.Context) error {
	return h.respond(c, false)
}

func (h *Friendship) respond(c *gin.Context, accept bool) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	friendshipID, err := paramUint64(c, "id")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "id 格式错误")
	}

	if err := h.FriendshipService.Respond(c.Request.Context(), userID, friendshipID, accept); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
