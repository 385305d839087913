package dao

import (
	"Pulse/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

// PostWithCounts 帖子及主库聚合的点赞/评论数
type PostWithCounts struct {
	models.Post
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
}

// GetByID 根据ID获取帖子
func (d *PostDAO) GetByID(ctx context.Context, postID uint64) (*models.Post, error) {
	var post models.Post
	err := d.Db.WithContext(ctx).Where("id = ?", postID).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List 按创建时间倒序分页查询帖子，附带点赞/评论数
func (d *PostDAO) List(ctx context.Context, limit, offset int) ([]*PostWithCounts, error) {
	var posts []*PostWithCounts
	err := d.Db.WithContext(ctx).
		Model(&models.Post{}).
		Select("posts.*, " +
			"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id AND likes.comment_id IS NULL) AS like_count, " +
			"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count").
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

// ListByUserID 查询指定用户的帖子
func (d *PostDAO) ListByUserID(ctx context.Context, userID uint64, limit, offset int) ([]*PostWithCounts, error) {
	var posts []*PostWithCounts
	err := d.Db.WithContext(ctx).
		Model(&models.Post{}).
		Select("posts.*, "+
			"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id AND likes.comment_id IS NULL) AS like_count, "+
			"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count").
		Where("posts.user_id = ?", userID).
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

// Update 更新帖子内容字段
func (d *PostDAO) Update(ctx context.Context, postID uint64, fields map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", postID).
		Updates(fields).Error
}

// Delete 删除帖子及其点赞、评论(同一主库事务)
func (d *PostDAO) Delete(ctx context.Context, postID uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", postID).Delete(&models.Post{}).Error
	})
}
