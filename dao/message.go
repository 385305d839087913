package dao

import (
	"Pulse/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type MessageDAO struct {
	Repo[models.Message]
}

func NewMessageDAO(db *gorm.DB) *MessageDAO {
	return &MessageDAO{Repo: NewRepo[models.Message](db)}
}

// ListConversation 查询两个用户之间的私信(按时间倒序分页)
func (d *MessageDAO) ListConversation(ctx context.Context, userID, peerID uint64, limit, offset int) ([]*models.Message, error) {
	var messages []*models.Message
	err := d.Db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, peerID, peerID, userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	return messages, err
}

// MarkRead 将对方发来的未读消息置为已读
func (d *MessageDAO) MarkRead(ctx context.Context, recipientID, senderID uint64) error {
	now := time.Now()
	return d.Db.WithContext(ctx).
		Model(&models.Message{}).
		Where("recipient_id = ? AND sender_id = ? AND is_read = 0", recipientID, senderID).
		Updates(map[string]any{"is_read": true, "read_at": &now}).Error
}

// CountUnread 未读消息数
func (d *MessageDAO) CountUnread(ctx context.Context, recipientID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Message{}).
		Where("recipient_id = ? AND is_read = 0", recipientID).
		Count(&count).Error
	return count, err
}
