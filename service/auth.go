package service

import (
	"Pulse/config"
	"Pulse/dao"
	"Pulse/models"
	"Pulse/pkg/encrypt"
	"Pulse/pkg/jwt"
	"Pulse/pkg/response"
	"Pulse/pkg/snowflake"
	"Pulse/types"
	"context"
	"net/http"
	"time"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetByID(ctx context.Context, userID uint64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest) error
}

type UserService struct {
	UserDAO *dao.UserDAO
	Config  *config.Config
}

// Register 注册用户
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error) {
	if s.UserDAO.IsUsernameExist(ctx, req.Username) {
		return nil, response.NewError(http.StatusBadRequest, "用户名已存在")
	}
	if s.UserDAO.IsEmailExist(ctx, req.Email) {
		return nil, response.NewError(http.StatusBadRequest, "邮箱已注册")
	}

	hash, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:           uint64(snowflake.GenID()),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 登录, 成功返回 access token
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.UserDAO.FindByUsername(ctx, username)
	if err != nil {
		return "", response.NewError(http.StatusUnauthorized, "用户名或密码错误")
	}
	if !user.IsActive {
		return "", response.NewError(http.StatusUnauthorized, "账号已禁用")
	}
	if !encrypt.VerifyPassword(user.PasswordHash, password) {
		return "", response.NewError(http.StatusUnauthorized, "用户名或密码错误")
	}

	expire := time.Duration(s.Config.Jwt.ExpiresTime) * time.Second
	return jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, user.Username, user.IsSuperuser, "access", expire)
}

func (s *UserService) GetByID(ctx context.Context, userID uint64) (*models.User, error) {
	return s.UserDAO.FindById(ctx, userID)
}

// UpdateProfile 更新资料
func (s *UserService) UpdateProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest) error {
	fields := map[string]any{"updated_at": time.Now()}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.AvatarURL != nil {
		fields["avatar_url"] = *req.AvatarURL
	}
	return s.UserDAO.UpdateProfile(ctx, userID, fields)
}
