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

var _ IMessageService = (*MessageService)(nil)

type IMessageService interface {
	Send(ctx context.Context, senderID uint64, req *types.CreateMessageRequest) (*models.Message, error)
	Conversation(ctx context.Context, userID, peerID uint64, page, pageSize int) ([]*models.Message, error)
	MarkRead(ctx context.Context, userID, peerID uint64) error
	UnreadCount(ctx context.Context, userID uint64) (int64, error)
}

// MessageService 私信, 纯主库 CRUD, 与二级缓存无交互
type MessageService struct {
	MessageDAO *dao.MessageDAO
	UserDAO    *dao.UserDAO
}

// Send 发送私信
func (s *MessageService) Send(ctx context.Context, senderID uint64, req *types.CreateMessageRequest) (*models.Message, error) {
	if req.RecipientID == senderID {
		return nil, response.NewError(http.StatusBadRequest, "不能给自己发私信")
	}

	exist, err := s.UserDAO.IsExist(ctx, "id = ?", req.RecipientID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NewError(http.StatusNotFound, "用户不存在")
	}

	message := &models.Message{
		ID:          uint64(snowflake.GenID()),
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Text:        req.Text,
		CreatedAt:   time.Now(),
	}
	if err := s.MessageDAO.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// Conversation 拉取与某个用户的会话记录
func (s *MessageService) Conversation(ctx context.Context, userID, peerID uint64, page, pageSize int) ([]*models.Message, error) {
	exist, err := s.UserDAO.IsExist(ctx, "id = ?", peerID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NewError(http.StatusNotFound, "用户不存在")
	}

	limit, offset := pageToLimitOffset(page, pageSize)
	return s.MessageDAO.ListConversation(ctx, userID, peerID, limit, offset)
}

// MarkRead 将对方发来的消息置为已读
func (s *MessageService) MarkRead(ctx context.Context, userID, peerID uint64) error {
	return s.MessageDAO.MarkRead(ctx, userID, peerID)
}

func (s *MessageService) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	return s.MessageDAO.CountUnread(ctx, userID)
}
