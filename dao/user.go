package dao

import (
	"Pulse/models"
	"context"

	"gorm.io/gorm"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{Repo: NewRepo[models.User](db)}
}

// FindByUsername 根据用户名查询用户
func (d *UserDAO) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return d.FindByWhere(ctx, "username = ?", username)
}

// IsUsernameExist 用户名是否已注册
func (d *UserDAO) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := d.IsExist(ctx, "username = ?", username)
	return exist
}

// IsEmailExist 邮箱是否已注册
func (d *UserDAO) IsEmailExist(ctx context.Context, email string) bool {
	exist, _ := d.IsExist(ctx, "email = ?", email)
	return exist
}

// UpdateProfile 更新资料字段
func (d *UserDAO) UpdateProfile(ctx context.Context, userID uint64, fields map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(fields).Error
}
