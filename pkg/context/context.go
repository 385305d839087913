package context

import (
	"Pulse/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID      = "user_id"
	CtxUsername    = "username"
	CtxIsSuperuser = "is_superuser"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(http.StatusOK, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id 不存在")
	}

	uid, ok := v.(uint64)
	if !ok {
		return 0, errors.New("user_id 类型错误")
	}

	return uid, nil
}

func GetUsername(c *gin.Context) string {
	v, ok := c.Get(CtxUsername)
	if !ok {
		return ""
	}
	name, _ := v.(string)
	return name
}

func GetIsSuperuser(c *gin.Context) bool {
	v, ok := c.Get(CtxIsSuperuser)
	if !ok {
		return false
	}
	su, _ := v.(bool)
	return su
}
