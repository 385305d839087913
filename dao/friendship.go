package dao

import (
	"Pulse/models"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type FriendshipDAO struct {
	Repo[models.Friendship]
}

func NewFriendshipDAO(db *gorm.DB) *FriendshipDAO {
	return &FriendshipDAO{Repo: NewRepo[models.Friendship](db)}
}

// GetByPair 查询 user -> friend 方向的请求
func (d *FriendshipDAO) GetByPair(ctx context.Context, userID, friendID uint64) (*models.Friendship, error) {
	var item models.Friendship
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// UpdateStatus 更新请求状态
func (d *FriendshipDAO) UpdateStatus(ctx context.Context, id uint64, status string) error {
	return d.Db.WithContext(ctx).
		Model(&models.Friendship{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()}).Error
}

// ListByUser 查询与用户相关的好友关系，可按状态过滤
func (d *FriendshipDAO) ListByUser(ctx context.Context, userID uint64, status string) ([]*models.Friendship, error) {
	var items []*models.Friendship
	query := d.Db.WithContext(ctx).
		Where("user_id = ? OR friend_id = ?", userID, userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&items).Error
	return items, err
}
