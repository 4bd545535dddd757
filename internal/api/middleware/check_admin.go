package middleware

import (
	"Camellia/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// CheckAdmin 检查当前用户是否具备管理权限（名单内管理员或站点工作人员）
func CheckAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil || !(claims.IsAdmin || claims.IsStaff) {
			response.Fail(c, response.Forbidden, "权限不足：无权访问该资源")
			c.Abort()
			return
		}

		c.Next()
	}
}
