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

type Auth struct {
	Config      *config.Config
	UserService service.IUserService
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/auth")
	g.POST("/register", context.Wrap(h.Register))
	g.POST("/login", context.Wrap(h.Login))

	u := r.Group("/v1/users")
	u.GET("/me", authorize, context.Wrap(h.Me))
	u.PUT("/me", authorize, context.Wrap(h.UpdateProfile))
}

// Register 注册
func (h *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	user, err := h.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, types.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
	})
	return nil
}

// Login 登录
func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	token, err := h.UserService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	response.Success(c, types.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
	return nil
}

// Me 当前用户信息
func (h *Auth) Me(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	user, err := h.UserService.GetByID(c.Request.Context(), userID)
	if err != nil {
		return response.NewError(http.StatusNotFound, "用户不存在")
	}

	response.Success(c, types.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		Bio:       user.Bio,
		AvatarURL: user.AvatarURL,
	})
	return nil
}

// UpdateProfile 更新资料
func (h *Auth) UpdateProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.UserService.UpdateProfile(c.Request.Context(), userID, &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
