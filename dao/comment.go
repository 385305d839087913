package dao

import (
	"Pulse/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{Repo: NewRepo[models.Comment](db)}
}

// GetByID 根据ID获取评论
func (d *CommentDAO) GetByID(ctx context.Context, commentID uint64) (*models.Comment, error) {
	var comment models.Comment
	err := d.Db.WithContext(ctx).Where("id = ?", commentID).First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPost 获取帖子评论列表(按时间倒序)
func (d *CommentDAO) ListByPost(ctx context.Context, postID uint64, limit, offset int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	return comments, err
}

// Delete 删除评论及其点赞(同一主库事务)
func (d *CommentDAO) Delete(ctx context.Context, commentID uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", commentID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", commentID).Delete(&models.Comment{}).Error
	})
}
