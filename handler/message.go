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

type Message struct {
	Config         *config.Config
	MessageService service.IMessageService
}

func (h *Message) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/messages", authorize)
	g.POST("", context.Wrap(h.Send))
	g.GET("/conversation/:user_id", context.Wrap(h.Conversation))
	g.PUT("/conversation/:user_id/read", context.Wrap(h.MarkRead))
	g.GET("/unread", context.Wrap(h.UnreadCount))
}

// Send 发送私信
func (h *Message) Send(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	message, err := h.MessageService.Send(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, message)
	return nil
}

// Conversation 与某用户的会话记录
func (h *Message) Conversation(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	peerID, err := paramUint64(c, "user_id")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "user_id 格式错误")
	}

	page, pageSize := pagination(c)
	messages, err := h.MessageService.Conversation(c.Request.Context(), userID, peerID, page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, messages)
	return nil
}

// MarkRead 会话置为已读
func (h *Message) MarkRead(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	peerID, err := paramUint64(c, "user_id")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "user_id 格式错误")
	}

	if err := h.MessageService.MarkRead(c.Request.Context(), userID, peerID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// UnreadCount 未读消息数
func (h *Message) UnreadCount(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	count, err := h.MessageService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, types.UnreadCountResponse{Count: count})
	return nil
}
