package dao

import (
	"Pulse/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.Like](db)}
}

// GetByPostUser 查询指定用户对指定帖子的点赞记录
func (d *LikeDAO) GetByPostUser(ctx context.Context, postID uint64, userID uint64) (*models.Like, error) {
	var item models.Like
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND post_id = ? AND comment_id IS NULL", userID, postID).
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

// GetByCommentUser 查询指定用户对指定评论的点赞记录
func (d *LikeDAO) GetByCommentUser(ctx context.Context, commentID uint64, userID uint64) (*models.Like, error) {
	var item models.Like
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND comment_id = ? AND post_id IS NULL", userID, commentID).
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

// DeleteByID 删除点赞记录
func (d *LikeDAO) DeleteByID(ctx context.Context, id uint64) error {
	return d.Db.WithContext(ctx).Where("id = ?", id).Delete(&models.Like{}).Error
}

// CountByPost 帖子点赞总数
func (d *LikeDAO) CountByPost(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ? AND comment_id IS NULL", postID).
		Count(&count).Error
	return count, err
}
