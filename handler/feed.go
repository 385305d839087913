package handler

import (
	"Pulse/config"
	"Pulse/middleware"
	"Pulse/pkg/context"
	"Pulse/pkg/response"
	"Pulse/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Feed struct {
	Config      *config.Config
	FeedService service.IFeedService
}

func (h *Feed) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/feed", authorize)
	g.GET("", context.Wrap(h.Timeline))
	g.GET("/popular", context.Wrap(h.Popular))
}

// Timeline 当前用户的信息流(二级缓存读路径)
func (h *Feed) Timeline(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	skip, _ := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	items, err := h.FeedService.Timeline(c.Request.Context(), userID, skip, limit)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

// Popular 热门帖子榜
func (h *Feed) Popular(c *gin.Context) error {
	n, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	items, err := h.FeedService.PopularPosts(c.Request.Context(), n)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}
