package service

import (
	"Pulse/dao"
	"Pulse/models"
	"Pulse/pkg/response"
	"Pulse/types"
	"context"
	"net/http"
	"time"
)

var _ IFriendshipService = (*FriendshipService)(nil)

type IFriendshipService interface {
	Request(ctx context.Context, userID uint64, req *types.CreateFriendshipRequest) (*models.Friendship, error)
	Respond(ctx context.Context, userID uint64, friendshipID uint64, accept bool) error
	List(ctx context.Context, userID uint64, status string) ([]*models.Friendship, error)
}

// FriendshipService 好友关系, 纯主库 CRUD, 与二级缓存无交互
type FriendshipService struct {
	FriendshipDAO *dao.FriendshipDAO
	UserDAO       *dao.UserDAO
}

// Request 发起好友请求
// 若对方已向自己发起过请求, 双向自动接受
func (s *FriendshipService) Request(ctx context.Context, userID uint64, req *types.CreateFriendshipRequest) (*models.Friendship, error) {
	if req.FriendID == userID {
		return nil, response.NewError(http.StatusBadRequest, "不能添加自己为好友")
	}

	exist, err := s.UserDAO.IsExist(ctx, "id = ?", req.FriendID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NewError(http.StatusNotFound, "用户不存在")
	}

	existing, err := s.FriendshipDAO.GetByPair(ctx, userID, req.FriendID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, response.NewError(http.StatusBadRequest, "好友请求已存在")
	}

	status := models.FriendshipPending
	reverse, err := s.FriendshipDAO.GetByPair(ctx, req.FriendID, userID)
	if err != nil {
		return nil, err
	}
	if reverse != nil {
		// 互发请求视为双方同意
		if err := s.FriendshipDAO.UpdateStatus(ctx, reverse.ID, models.FriendshipAccepted); err != nil {
			return nil, err
		}
		status = models.FriendshipAccepted
	}

	now := time.Now()
	friendship := &models.Friendship{
		UserID:    userID,
		FriendID:  req.FriendID,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.FriendshipDAO.Create(ctx, friendship); err != nil {
		return nil, err
	}
	return friendship, nil
}

// Respond 接受/拒绝好友请求, 只有接收方可以操作
func (s *FriendshipService) Respond(ctx context.Context, userID uint64, friendshipID uint64, accept bool) error {
	friendship, err := s.FriendshipDAO.FindById(ctx, friendshipID)
	if err != nil {
		return response.NewError(http.StatusNotFound, "好友请求不存在")
	}
	if friendship.FriendID != userID {
		return response.NewError(http.StatusForbidden, "无权限操作")
	}
	if friendship.Status != models.FriendshipPending {
		return response.NewError(http.StatusBadRequest, "请求已处理")
	}

	status := models.FriendshipDeclined
	if accept {
		status = models.FriendshipAccepted
	}
	return s.FriendshipDAO.UpdateStatus(ctx, friendshipID, status)
}

func (s *FriendshipService) List(ctx context.Context, userID uint64, status string) ([]*models.Friendship, error) {
	return s.FriendshipDAO.ListByUser(ctx, userID, status)
}
